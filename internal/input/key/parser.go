package key

import (
	"errors"
	"strings"
)

// ErrEmptySpec is returned by ParseStrict for an empty declaration.
var ErrEmptySpec = errors.New("empty key specification")

// ErrNoBaseKey is returned by ParseStrict when a declaration has more than
// one modifier and no base key ("control+shift").
var ErrNoBaseKey = errors.New("key specification has no base key")

// ErrStraySeparator is returned by ParseStrict when a declaration with a
// base key also has an empty segment ("a+", "control+a+").
var ErrStraySeparator = errors.New("key specification has a stray separator")

// ErrBlankKey is returned by ParseStrict for a segment made only of
// several spaces. A single space names the space key.
var ErrBlankKey = errors.New("key specification has a blank segment")

// ParseCombo parses an author-declared combination such as
// "Shift+Control+K", "ctrl+plus" or "control+" into its canonical form.
//
// Segments are split on "+" and resolved through Alias. Modifier order and
// duplicates are discarded. A literal "+" base key is recognized when the
// declaration is exactly "+", ends in a separator after a modifier
// ("control+"), or contains an empty segment ("control++").
// A declaration of only modifiers keeps the last one as the base key.
// Segments of more than one space are ignored.
func ParseCombo(s string) Combo {
	if s == "" {
		return Combo{}
	}
	if s == Separator {
		return Combo{Base: TokenPlus}
	}

	var (
		mods    Modifier
		base    string
		hasBase bool
		lastMod Modifier
		sawPlus bool
	)
	for _, seg := range strings.Split(s, Separator) {
		if seg == "" {
			// An empty segment is what a literal "+" leaves behind.
			sawPlus = true
			continue
		}
		if isBlank(seg) {
			continue
		}
		tok := Classify(seg)
		if tok.IsModifier() {
			mods = mods.With(tok.Modifier())
			lastMod = tok.Modifier()
			continue
		}
		base = tok.Base()
		hasBase = true
	}

	switch {
	case hasBase:
		return comboFromBase(mods, base)
	case sawPlus:
		return Combo{Mods: mods, Base: TokenPlus}
	case lastMod != ModNone:
		// Only modifiers: the last one is the key being pressed.
		return comboFromBase(mods.Without(lastMod), lastMod.Name())
	default:
		return Combo{}
	}
}

// NormalizeDeclared returns the canonical string for a declared combo.
func NormalizeDeclared(s string) string {
	return ParseCombo(s).String()
}

// ParseStrict is ParseCombo for configuration input: it rejects empty
// declarations, modifier-only chords that can never be pressed, and
// separators or blank segments that ParseCombo would drop.
func ParseStrict(s string) (Combo, error) {
	if strings.TrimSpace(s) == "" {
		return Combo{}, ErrEmptySpec
	}
	combo := ParseCombo(s)
	if combo.IsZero() {
		return Combo{}, ErrEmptySpec
	}
	var (
		declared Modifier
		hasBase  bool
		hasEmpty bool
	)
	for _, seg := range strings.Split(s, Separator) {
		switch {
		case seg == "":
			hasEmpty = true
		case isBlank(seg):
			return Combo{}, ErrBlankKey
		default:
			if tok := Classify(seg); tok.IsModifier() {
				declared = declared.With(tok.Modifier())
			} else {
				hasBase = true
			}
		}
	}
	if hasBase && hasEmpty {
		return Combo{}, ErrStraySeparator
	}
	if combo.IsBareModifier() && len(declared.Names()) > 1 {
		return Combo{}, ErrNoBaseKey
	}
	return combo, nil
}

func isBlank(seg string) bool {
	return seg != " " && strings.TrimSpace(seg) == ""
}

// MustParse parses a declaration and panics if it is invalid.
// Use only for known-valid declarations in initialization code.
func MustParse(s string) Combo {
	combo, err := ParseStrict(s)
	if err != nil {
		panic("invalid key combo: " + s + ": " + err.Error())
	}
	return combo
}
