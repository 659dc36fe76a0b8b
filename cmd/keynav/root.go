package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keynav/internal/config"
	"github.com/dshills/keynav/internal/logging"
)

type globalOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "keynav",
		Short: "Keyboard combo normalization and roving focus tools",
		Long: `keynav canonicalizes keyboard combos, checks declarative keymaps and
traces roving-focus navigation in the terminal.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logLevel != "" && !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "Path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newEventCommand())
	cmd.AddCommand(newLintCommand(opts))
	cmd.AddCommand(newTraceCommand(opts))

	return cmd
}

// loadConfig reads the config file named by --config.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}
