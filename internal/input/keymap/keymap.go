package keymap

import (
	"sort"

	"github.com/dshills/keynav/internal/input/key"
)

// Handler is invoked with the original event when its combo is pressed.
type Handler func(ev *key.Event) error

// KeyMap maps declared or canonical combos to handlers.
type KeyMap map[string]Handler

// NormalizeKeyMap returns a copy of km keyed by canonical combo.
//
// Declarations that collapse to the same combo shadow one another; the
// declaration that sorts last wins, so the result does not depend on map
// iteration order. Normalizing an already normalized map returns an
// identical map. Empty declarations are dropped.
func NormalizeKeyMap(km KeyMap) KeyMap {
	out := make(KeyMap, len(km))
	for _, declared := range sortedKeys(km) {
		combo := key.NormalizeDeclared(declared)
		if combo == "" {
			continue
		}
		out[combo] = km[declared]
	}
	return out
}

// Shadow describes declarations that normalize to the same combo.
type Shadow struct {
	// Combo is the canonical combo.
	Combo string

	// Declared lists the colliding declarations in sorted order.
	// The last one is the one NormalizeKeyMap keeps.
	Declared []string
}

// Shadowed reports every combo that more than one declaration of km
// normalizes to. Shadowing is allowed; this exists for linting.
func Shadowed(km KeyMap) []Shadow {
	return FindShadows(sortedKeys(km))
}

// FindShadows groups declarations by canonical combo and returns the
// groups with more than one member, sorted by combo.
func FindShadows(declared []string) []Shadow {
	groups := make(map[string][]string)
	for _, d := range declared {
		combo := key.NormalizeDeclared(d)
		if combo == "" {
			continue
		}
		groups[combo] = append(groups[combo], d)
	}

	var shadows []Shadow
	for combo, decls := range groups {
		if len(decls) < 2 {
			continue
		}
		sort.Strings(decls)
		shadows = append(shadows, Shadow{Combo: combo, Declared: decls})
	}
	sort.Slice(shadows, func(i, j int) bool {
		return shadows[i].Combo < shadows[j].Combo
	})
	return shadows
}

// Combos returns the canonical combos of km, sorted.
func Combos(km KeyMap) []string {
	return sortedKeys(NormalizeKeyMap(km))
}

func sortedKeys(km KeyMap) []string {
	keys := make([]string, 0, len(km))
	for k := range km {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
