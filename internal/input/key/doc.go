// Package key canonicalizes keyboard input.
//
// Hosts report a key press as several loosely related signals: a logical
// key that depends on layout and Shift state, a physical key code, four
// modifier flags and sometimes an input-method composition flag. This
// package reduces those signals, and author-declared combination strings,
// to one canonical form so they can be compared directly.
//
// # Canonical Combos
//
// A canonical combo lists active modifiers in the fixed order
// control, meta, shift, alt, followed by one lower-case base token,
// joined by "+":
//
//	"a"                  plain key
//	"control+shift+k"    regardless of press or declaration order
//	"shift+/"            Shift on the "/" key, not "?"
//	"1"                  numeric-pad 1
//	"shift"              a bare Shift press
//
// Internally combos are Combo values (a Modifier set and a base token) and
// are only serialized with Combo.String at lookup boundaries.
//
// # Declarations
//
// ParseCombo accepts any modifier order and the aliases known to Alias:
//
//	"Shift+Control+K", "ctrl+shift+k", "Cmd+Esc", "control+plus", "control+"
package key
