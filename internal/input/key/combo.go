package key

import "strings"

// Separator joins combo tokens.
const Separator = "+"

// Combo is the structured form of a canonical key combination: a set of
// modifiers plus one base token. A bare modifier press is represented by
// an empty modifier set and the modifier's name as Base.
type Combo struct {
	Mods Modifier
	Base string
}

// IsZero reports whether the combo carries no key at all.
func (c Combo) IsZero() bool {
	return c.Mods == ModNone && c.Base == ""
}

// IsBareModifier reports whether the combo is a lone modifier press.
func (c Combo) IsBareModifier() bool {
	_, ok := ModifierFromToken(c.Base)
	return ok && c.Mods == ModNone
}

// String serializes the combo, modifiers first in the order
// control, meta, shift, alt.
func (c Combo) String() string {
	if c.Base == "" {
		return c.Mods.String()
	}
	if c.Mods == ModNone {
		return c.Base
	}
	var b strings.Builder
	c.Mods.Each(func(mod Modifier) {
		b.WriteString(mod.Name())
		b.WriteString(Separator)
	})
	b.WriteString(c.Base)
	return b.String()
}

// Tokens returns the combo as a token sequence.
func (c Combo) Tokens() []Token {
	tokens := make([]Token, 0, 5)
	c.Mods.Each(func(mod Modifier) {
		tokens = append(tokens, ModifierToken(mod))
	})
	if c.Base != "" {
		if mod, ok := ModifierFromToken(c.Base); ok {
			tokens = append(tokens, ModifierToken(mod))
		} else {
			tokens = append(tokens, BaseToken(c.Base))
		}
	}
	return tokens
}

// comboFromBase applies the bare-modifier rule: a base token that is
// itself a modifier never combines with other modifiers.
func comboFromBase(mods Modifier, base string) Combo {
	if _, ok := ModifierFromToken(base); ok {
		return Combo{Base: base}
	}
	return Combo{Mods: mods, Base: base}
}
