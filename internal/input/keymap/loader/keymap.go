package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
)

var (
	// ErrUnknownAction is returned by Bind when a binding names an action
	// that has no handler.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidBinding is returned by Validate.
	ErrInvalidBinding = errors.New("invalid binding")
)

// Binding pairs a declared key combo with an action name.
type Binding struct {
	Keys        string `toml:"keys" yaml:"keys"`
	Action      string `toml:"action" yaml:"action"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// Keymap is a named list of bindings as read from a file.
type Keymap struct {
	Name     string    `toml:"name" yaml:"name"`
	Bindings []Binding `toml:"bindings" yaml:"bindings"`

	// Source is the file the keymap was read from.
	Source string `toml:"-" yaml:"-"`
}

// Validate checks that every binding has an action and keys that
// canonicalize to a combo.
func (k *Keymap) Validate() error {
	var errs []error
	for i, b := range k.Bindings {
		if strings.TrimSpace(b.Action) == "" {
			errs = append(errs, fmt.Errorf("%w: binding %d (%q) has no action", ErrInvalidBinding, i, b.Keys))
		}
		if _, err := key.ParseStrict(b.Keys); err != nil {
			errs = append(errs, fmt.Errorf("%w: binding %d: %w", ErrInvalidBinding, i, err))
		}
	}
	return errors.Join(errs...)
}

// Declared returns the declared keys of every binding in file order.
func (k *Keymap) Declared() []string {
	out := make([]string, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		out = append(out, b.Keys)
	}
	return out
}

// Shadowed reports declarations that collapse to the same combo.
func (k *Keymap) Shadowed() []keymap.Shadow {
	return keymap.FindShadows(k.Declared())
}

// Resolver builds a handler for an action that carries a prefix, such
// as "lua:". It receives the action with the prefix removed.
type Resolver func(body string) (keymap.Handler, error)

type bindConfig struct {
	resolvers map[string]Resolver
}

// BindOption configures Bind.
type BindOption func(*bindConfig)

// WithResolver resolves actions starting with prefix through r instead
// of the actions table.
func WithResolver(prefix string, r Resolver) BindOption {
	return func(c *bindConfig) {
		c.resolvers[prefix] = r
	}
}

// Bind builds a key map from the bindings, looking each action up in
// actions. Later bindings replace earlier ones with the same declared
// keys. The result is keyed by declared combo; the dispatcher
// canonicalizes it.
func (k *Keymap) Bind(actions map[string]keymap.Handler, opts ...BindOption) (keymap.KeyMap, error) {
	cfg := bindConfig{resolvers: make(map[string]Resolver)}
	for _, opt := range opts {
		opt(&cfg)
	}

	km := make(keymap.KeyMap, len(k.Bindings))
	for _, b := range k.Bindings {
		h, err := cfg.resolve(b.Action, actions)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		km[b.Keys] = h
	}
	return km, nil
}

func (c *bindConfig) resolve(action string, actions map[string]keymap.Handler) (keymap.Handler, error) {
	for prefix, r := range c.resolvers {
		if body, ok := strings.CutPrefix(action, prefix); ok {
			return r(body)
		}
	}
	h, ok := actions[action]
	if !ok || h == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return h, nil
}
