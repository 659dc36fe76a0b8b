package key

// Canonicalize resolves a raw key, physical code and modifier set into a
// Combo. The base token is chosen in this order:
//
//  1. a numeric-pad code folds to its main-keyboard token;
//  2. with Shift active, a single-character key on a digit or punctuation
//     key is replaced by the unshifted glyph of the physical key;
//  3. otherwise the key is resolved through Alias.
//
// A base token that is itself a modifier is returned bare.
func Canonicalize(key, code string, mods Modifier) Combo {
	base := baseToken(key, code, mods)
	if base == "" {
		return Combo{}
	}
	return comboFromBase(mods, base)
}

func baseToken(key, code string, mods Modifier) string {
	if IsNumpadCode(code) {
		token, _ := FromPhysicalCode(code)
		return token
	}
	if mods.HasShift() && IsRecoverableShiftedSymbol(key, code) {
		if token, ok := FromPhysicalCode(code); ok {
			return token
		}
	}
	if key == "" {
		// No logical key; fall back to the physical one.
		token, _ := FromPhysicalCode(code)
		return token
	}
	return Alias(key)
}

// NormalizeKey returns the canonical combo string for a raw key press.
func NormalizeKey(key, code string, mods Modifier) string {
	return Canonicalize(key, code, mods).String()
}
