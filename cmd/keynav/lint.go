package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keynav/internal/input/keymap/loader"
)

var errLintFailed = errors.New("lint failed")

func newLintCommand(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint [keymap-file]...",
		Short: "Check keymap files",
		Long: `Check keymap files for invalid bindings and shadowed declarations.

Declarations that canonicalize to the same combo shadow one another; only
one of them can ever fire. Shadowing is reported as a warning, or as an
error with --strict. Without arguments the keymaps from the config file
are checked.

Examples:
  keynav lint editor.toml
  keynav lint --strict keymaps/*.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				paths = cfg.KeymapPaths()
			}
			if len(paths) == 0 {
				return fmt.Errorf("no keymap files given or configured")
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := false
			for _, path := range paths {
				km, err := loader.Load(path)
				if err != nil {
					_, _ = fmt.Fprintf(errOut, "✗ %v\n", err)
					failed = true
					continue
				}
				if err := km.Validate(); err != nil {
					_, _ = fmt.Fprintf(errOut, "✗ %s:\n  %v\n", path, err)
					failed = true
					continue
				}

				shadows := km.Shadowed()
				for _, s := range shadows {
					_, _ = fmt.Fprintf(errOut, "! %s: %q all normalize to %s\n", path, s.Declared, s.Combo)
				}
				if strict && len(shadows) > 0 {
					failed = true
					continue
				}
				_, _ = fmt.Fprintf(out, "✓ %s (%s, %d bindings)\n", path, km.Name, len(km.Bindings))
			}

			if failed {
				return errLintFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat shadowed declarations as errors")
	return cmd
}
