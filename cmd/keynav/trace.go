package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/keynav/internal/app"
	"github.com/dshills/keynav/internal/terminal"
)

var errNotTerminal = errors.New("trace needs an interactive terminal")

func newTraceCommand(opts *globalOptions) *cobra.Command {
	var (
		appOpts app.Options
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Drive a demo tab list and toggle group from the keyboard",
		Long: `Open a full-screen session with a tab list and a toggle group and show
how each key press is canonicalized and which widget handles it.

Keymap files from the config (or --keymap) are bound first; actions
prefixed with "lua:" run as sandboxed Lua. With --watch, edits to the
config and keymap files are reloaded live.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}

			appOpts.ConfigPath = opts.configPath
			appOpts.LogLevel = opts.logLevel
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return err
				}
				defer f.Close()
				appOpts.LogOutput = f
			}

			application, err := app.New(appOpts)
			if err != nil {
				return err
			}
			defer application.Close()

			screen, err := terminal.New()
			if err != nil {
				return err
			}
			if err := application.SetBackend(screen); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return application.Run(ctx)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&appOpts.Keymaps, "keymap", nil, "Keymap file (repeatable); replaces the configured keymaps")
	f.StringVar(&appOpts.Orientation, "orientation", "", "Navigation axis: horizontal or vertical")
	f.BoolVar(&appOpts.Watch, "watch", false, "Reload keymaps when files change")
	f.StringVar(&logFile, "log-file", "", "Append logs to this file")
	return cmd
}
