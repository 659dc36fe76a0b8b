package key

import (
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWith(t *testing.T) {
	mod := ModNone
	mod = mod.With(ModCtrl)
	if !mod.HasCtrl() {
		t.Error("With(ModCtrl) should set Ctrl")
	}

	mod = mod.With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With(ModAlt) should keep Ctrl and add Alt")
	}
}

func TestModifierWithout(t *testing.T) {
	mod := ModCtrl | ModAlt | ModShift
	mod = mod.Without(ModAlt)
	if mod.HasAlt() {
		t.Error("Without(ModAlt) should remove Alt")
	}
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Error("Without(ModAlt) should keep Ctrl and Shift")
	}
}

func TestModifierStringCanonicalOrder(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "control"},
		{ModAlt, "alt"},
		{ModShift, "shift"},
		{ModMeta, "meta"},
		{ModAlt | ModCtrl, "control+alt"},
		{ModShift | ModCtrl, "control+shift"},
		{ModAlt | ModShift | ModMeta | ModCtrl, "control+meta+shift+alt"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifiersFromFlags(t *testing.T) {
	if got := Modifiers(true, false, true, false); got != ModCtrl|ModShift {
		t.Errorf("Modifiers(ctrl, shift) = %v, want control+shift", got)
	}
	if got := Modifiers(false, false, false, false); !got.IsEmpty() {
		t.Errorf("Modifiers() = %v, want empty", got)
	}
}

func TestModifierFromToken(t *testing.T) {
	for _, name := range []string{"control", "meta", "shift", "alt"} {
		mod, ok := ModifierFromToken(name)
		if !ok {
			t.Errorf("ModifierFromToken(%q) not recognized", name)
			continue
		}
		if mod.Name() != name {
			t.Errorf("ModifierFromToken(%q).Name() = %q", name, mod.Name())
		}
	}
	if _, ok := ModifierFromToken("ctrl"); ok {
		t.Error("ModifierFromToken should only accept canonical tokens")
	}
}
