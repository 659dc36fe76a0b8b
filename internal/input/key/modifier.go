package key

import "strings"

// Modifier represents keyboard modifier keys as a set.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
)

// canonicalOrder is the order modifiers appear in a canonical combo.
var canonicalOrder = [...]Modifier{ModCtrl, ModMeta, ModShift, ModAlt}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Each calls fn for every modifier in m, in canonical order.
func (m Modifier) Each(fn func(Modifier)) {
	for _, mod := range canonicalOrder {
		if m.Has(mod) {
			fn(mod)
		}
	}
}

// Name returns the canonical token for a single modifier
// ("control", "meta", "shift", "alt"). Sets and ModNone return "".
func (m Modifier) Name() string {
	switch m {
	case ModCtrl:
		return TokenControl
	case ModMeta:
		return TokenMeta
	case ModShift:
		return TokenShift
	case ModAlt:
		return TokenAlt
	default:
		return ""
	}
}

// Names returns the canonical tokens of every modifier in m, in canonical order.
func (m Modifier) Names() []string {
	names := make([]string, 0, 4)
	m.Each(func(mod Modifier) {
		names = append(names, mod.Name())
	})
	return names
}

// String returns the canonical form, e.g. "control+shift".
func (m Modifier) String() string {
	return strings.Join(m.Names(), "+")
}

// ModifierFromToken returns the Modifier for a canonical token.
// The token must already be resolved through Alias.
func ModifierFromToken(token string) (Modifier, bool) {
	switch token {
	case TokenControl:
		return ModCtrl, true
	case TokenMeta:
		return ModMeta, true
	case TokenShift:
		return ModShift, true
	case TokenAlt:
		return ModAlt, true
	default:
		return ModNone, false
	}
}

// Modifiers builds a Modifier set from the four independent flags a
// host input event reports.
func Modifiers(ctrl, meta, shift, alt bool) Modifier {
	var m Modifier
	if ctrl {
		m = m.With(ModCtrl)
	}
	if meta {
		m = m.With(ModMeta)
	}
	if shift {
		m = m.With(ModShift)
	}
	if alt {
		m = m.With(ModAlt)
	}
	return m
}
