package key

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical tokens for keys that have alternate spellings.
const (
	TokenControl = "control"
	TokenMeta    = "meta"
	TokenShift   = "shift"
	TokenAlt     = "alt"

	TokenSpace      = "space"
	TokenEscape     = "escape"
	TokenDelete     = "delete"
	TokenEnter      = "enter"
	TokenArrowUp    = "arrowup"
	TokenArrowDown  = "arrowdown"
	TokenArrowLeft  = "arrowleft"
	TokenArrowRight = "arrowright"
	TokenHome       = "home"
	TokenEnd        = "end"
	TokenTab        = "tab"
	TokenPlus       = "+"
)

// aliasMap maps alternate spellings (lowercase) to canonical tokens.
var aliasMap = map[string]string{
	" ":        TokenSpace,
	"spacebar": TokenSpace,
	"space":    TokenSpace,
	"esc":      TokenEscape,
	"escape":   TokenEscape,
	"del":      TokenDelete,
	"delete":   TokenDelete,
	"return":   TokenEnter,
	"enter":    TokenEnter,
	"cr":       TokenEnter,
	"ctrl":     TokenControl,
	"control":  TokenControl,
	"cmd":      TokenMeta,
	"command":  TokenMeta,
	"super":    TokenMeta,
	"win":      TokenMeta,
	"os":       TokenMeta,
	"meta":     TokenMeta,
	"opt":      TokenAlt,
	"option":   TokenAlt,
	"alt":      TokenAlt,
	"shift":    TokenShift,
	"up":       TokenArrowUp,
	"arrowup":  TokenArrowUp,
	"down":     TokenArrowDown,
	"left":     TokenArrowLeft,
	"right":    TokenArrowRight,
	"plus":     TokenPlus,

	"arrowdown":  TokenArrowDown,
	"arrowleft":  TokenArrowLeft,
	"arrowright": TokenArrowRight,
}

var lower = cases.Lower(language.Und)

// Alias maps a raw key name to its canonical token, case-insensitively.
// Unrecognized keys are returned lower-cased. Empty input returns "".
func Alias(raw string) string {
	if raw == "" {
		return ""
	}
	// A lone space is a key, not padding.
	if raw != " " {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			raw = trimmed
		}
	}
	folded := lower.String(raw)
	if token, ok := aliasMap[folded]; ok {
		return token
	}
	return folded
}

// TokenKind distinguishes the two kinds of combo token.
type TokenKind uint8

const (
	// KindBase is a non-modifier key such as "k", "enter" or "/".
	KindBase TokenKind = iota

	// KindModifier is one of control, meta, shift or alt.
	KindModifier
)

// Token is a single resolved combo segment: either a Modifier or a base key.
type Token struct {
	kind TokenKind
	mod  Modifier
	base string
}

// Classify resolves raw through Alias and tags the result.
func Classify(raw string) Token {
	name := Alias(raw)
	if mod, ok := ModifierFromToken(name); ok {
		return Token{kind: KindModifier, mod: mod}
	}
	return Token{kind: KindBase, base: name}
}

// ModifierToken returns a modifier token.
func ModifierToken(mod Modifier) Token {
	return Token{kind: KindModifier, mod: mod}
}

// BaseToken returns a base-key token. The name is used as given.
func BaseToken(name string) Token {
	return Token{kind: KindBase, base: name}
}

// Kind returns the token kind.
func (t Token) Kind() TokenKind {
	return t.kind
}

// IsModifier reports whether the token is a modifier.
func (t Token) IsModifier() bool {
	return t.kind == KindModifier
}

// Modifier returns the modifier for modifier tokens and ModNone otherwise.
func (t Token) Modifier() Modifier {
	return t.mod
}

// Base returns the base key name for base tokens and "" otherwise.
func (t Token) Base() string {
	return t.base
}

// String returns the canonical text of the token.
func (t Token) String() string {
	if t.kind == KindModifier {
		return t.mod.Name()
	}
	return t.base
}
