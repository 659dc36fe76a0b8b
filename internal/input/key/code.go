package key

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Physical key codes follow the UI Events KeyboardEvent.code naming
// ("KeyA", "Digit1", "Slash", "Numpad1"). They identify a key position,
// not the character the active layout produces.

// punctuationCodes maps punctuation key codes to their unshifted US glyph.
var punctuationCodes = map[string]string{
	"Minus":         "-",
	"Equal":         "=",
	"BracketLeft":   "[",
	"BracketRight":  "]",
	"Backslash":     "\\",
	"IntlBackslash": "\\",
	"Semicolon":     ";",
	"Quote":         "'",
	"Backquote":     "`",
	"Comma":         ",",
	"Period":        ".",
	"Slash":         "/",
}

// numpadCodes maps numeric-pad key codes to their main-keyboard token.
var numpadCodes = map[string]string{
	"Numpad0":        "0",
	"Numpad1":        "1",
	"Numpad2":        "2",
	"Numpad3":        "3",
	"Numpad4":        "4",
	"Numpad5":        "5",
	"Numpad6":        "6",
	"Numpad7":        "7",
	"Numpad8":        "8",
	"Numpad9":        "9",
	"NumpadAdd":      "+",
	"NumpadSubtract": "-",
	"NumpadMultiply": "*",
	"NumpadDivide":   "/",
	"NumpadDecimal":  ".",
	"NumpadComma":    ",",
	"NumpadEqual":    "=",
	"NumpadEnter":    TokenEnter,
}

// IsNumpadCode reports whether code identifies a numeric-pad key.
func IsNumpadCode(code string) bool {
	_, ok := numpadCodes[code]
	return ok
}

// IsDigitCode reports whether code identifies a main-keyboard digit key.
func IsDigitCode(code string) bool {
	return len(code) == len("Digit0") && strings.HasPrefix(code, "Digit") &&
		code[5] >= '0' && code[5] <= '9'
}

// IsPunctuationCode reports whether code identifies a punctuation key.
func IsPunctuationCode(code string) bool {
	_, ok := punctuationCodes[code]
	return ok
}

// isLetterCode reports whether code is "KeyA" through "KeyZ".
func isLetterCode(code string) bool {
	return len(code) == len("KeyA") && strings.HasPrefix(code, "Key") &&
		code[3] >= 'A' && code[3] <= 'Z'
}

// IsRecoverableShiftedSymbol reports whether key is a single character
// produced by a digit or punctuation key. Under Shift such keys report a
// glyph that differs from the key itself ("?" for the "/" key), so the
// unshifted glyph can be recovered from the physical code.
func IsRecoverableShiftedSymbol(key, code string) bool {
	if key == "" || uniseg.GraphemeClusterCount(key) != 1 {
		return false
	}
	return IsDigitCode(code) || IsPunctuationCode(code)
}

// FromPhysicalCode maps a physical key code to its unshifted token.
// Numeric-pad keys fold to their main-keyboard equivalents.
func FromPhysicalCode(code string) (string, bool) {
	switch {
	case isLetterCode(code):
		return strings.ToLower(code[3:]), true
	case IsDigitCode(code):
		return code[5:], true
	}
	if glyph, ok := punctuationCodes[code]; ok {
		return glyph, true
	}
	if token, ok := numpadCodes[code]; ok {
		return token, true
	}
	return "", false
}

// usLayout maps printable US-layout characters to the physical code that
// produces them and whether Shift is needed. Hosts that report only
// characters (terminals) use it to infer a code.
var usLayout = func() map[rune]physical {
	m := make(map[rune]physical, 96)
	for c := 'a'; c <= 'z'; c++ {
		code := "Key" + strings.ToUpper(string(c))
		m[c] = physical{code: code}
		m[c-'a'+'A'] = physical{code: code, shift: true}
	}
	for c := '0'; c <= '9'; c++ {
		m[c] = physical{code: "Digit" + string(c)}
	}
	for i, c := range ")!@#$%^&*(" {
		m[c] = physical{code: "Digit" + string(rune('0'+i)), shift: true}
	}
	shifted := map[string]rune{
		"Minus": '_', "Equal": '+', "BracketLeft": '{', "BracketRight": '}',
		"Backslash": '|', "Semicolon": ':', "Quote": '"', "Backquote": '~',
		"Comma": '<', "Period": '>', "Slash": '?',
	}
	for code, glyph := range punctuationCodes {
		if code == "IntlBackslash" {
			continue
		}
		m[[]rune(glyph)[0]] = physical{code: code}
		m[shifted[code]] = physical{code: code, shift: true}
	}
	m[' '] = physical{code: "Space"}
	return m
}()

type physical struct {
	code  string
	shift bool
}

// CodeForRune infers the US-layout physical code for r and whether the
// character requires Shift. Unknown characters return ("", false).
func CodeForRune(r rune) (code string, shift bool) {
	p, ok := usLayout[r]
	if !ok {
		return "", false
	}
	return p.code, p.shift
}
