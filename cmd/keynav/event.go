package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/input/keymap/loader"
)

func newEventCommand() *cobra.Command {
	var (
		ev         key.Event
		keymapPath string
	)

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Canonicalize a raw key event",
		Long: `Canonicalize a raw key event the way the dispatcher does.

--key is the logical key value and --code the physical key code, as a
browser reports them. With --keymap, also report which action the event
would trigger.

Examples:
  keynav event --key '?' --code Slash --shift   # shift+/
  keynav event --key 1 --code Numpad1           # 1
  keynav event --key k --code KeyK --ctrl --keymap editor.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ev.HasKeySignal() {
				return fmt.Errorf("one of --key or --code is required")
			}
			out := cmd.OutOrStdout()
			if ev.IsComposing() {
				_, _ = fmt.Fprintln(out, "composing: ignored")
				return nil
			}
			combo := ev.Combo().String()
			_, _ = fmt.Fprintln(out, combo)

			if keymapPath == "" {
				return nil
			}
			action, err := resolveAction(keymapPath, &ev)
			if err != nil {
				return err
			}
			if action == "" {
				_, _ = fmt.Fprintln(out, "unbound")
				return nil
			}
			_, _ = fmt.Fprintf(out, "action: %s\n", action)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ev.Key, "key", "", "Logical key value (e.g. \"k\", \"?\", \"ArrowUp\")")
	f.StringVar(&ev.Code, "code", "", "Physical key code (e.g. \"KeyK\", \"Slash\", \"Numpad1\")")
	f.BoolVar(&ev.Ctrl, "ctrl", false, "Control held")
	f.BoolVar(&ev.Meta, "meta", false, "Meta held")
	f.BoolVar(&ev.Shift, "shift", false, "Shift held")
	f.BoolVar(&ev.Alt, "alt", false, "Alt held")
	f.BoolVar(&ev.Composing, "composing", false, "An input method composition is in progress")
	f.StringVar(&keymapPath, "keymap", "", "Keymap file to resolve the action from")
	return cmd
}

// resolveAction dispatches ev against the keymap with handlers that only
// record the action name.
func resolveAction(path string, ev *key.Event) (string, error) {
	km, err := loader.Load(path)
	if err != nil {
		return "", err
	}

	var fired string
	actions := make(map[string]keymap.Handler, len(km.Bindings))
	for _, b := range km.Bindings {
		actions[b.Action] = func(*key.Event) error {
			fired = b.Action
			return nil
		}
	}

	bound, err := km.Bind(actions)
	if err != nil {
		return "", err
	}
	if _, err := keymap.HandleKeyPress(ev, bound); err != nil {
		return "", err
	}
	return fired, nil
}
