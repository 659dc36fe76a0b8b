package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keynav/internal/input/key"
)

func newNormalizeCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "normalize <combo>...",
		Short: "Print the canonical form of declared combos",
		Long: `Print the canonical form of each declared combo, one per line.

Examples:
  keynav normalize Shift+Control+K      # control+shift+k
  keynav normalize "Ctrl++" cmd+plus    # control++ and meta++
  keynav normalize --strict ctrl+shift  # error: no base key`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range args {
				if strict {
					combo, err := key.ParseStrict(spec)
					if err != nil {
						return fmt.Errorf("%q: %w", spec, err)
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), combo.String())
					continue
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), key.NormalizeDeclared(spec))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject empty and modifier-only chords")
	return cmd
}
