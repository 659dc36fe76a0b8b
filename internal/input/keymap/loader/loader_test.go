package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
)

const tomlKeymap = `
name = "editor"

[[bindings]]
keys = "Shift+Control+K"
action = "line.delete"
description = "Delete line"

[[bindings]]
keys = "ctrl+s"
action = "file.save"
`

const yamlKeymap = `
name: editor
bindings:
  - keys: Shift+Control+K
    action: line.delete
  - keys: ctrl+s
    action: file.save
`

const jsonKeymap = `{
  "name": "editor",
  "bindings": [
    {"keys": "Shift+Control+K", "action": "line.delete"},
    {"keys": "ctrl+s", "action": "file.save"}
  ]
}`

const jsonArrayKeymap = `[
  {"key": "shift+ctrl+k", "command": "line.delete"},
  {"key": "Control+S", "command": "file.save", "when": "editorFocus"}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
		name    string
	}{
		{"editor.toml", tomlKeymap, "editor"},
		{"editor.yaml", yamlKeymap, "editor"},
		{"editor.yml", yamlKeymap, "editor"},
		{"editor.json", jsonKeymap, "editor"},
		{"vscode.json", jsonArrayKeymap, "vscode"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			km, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, tt.name, km.Name)
			assert.Equal(t, path, km.Source)
			require.Len(t, km.Bindings, 2)
			assert.Equal(t, "line.delete", km.Bindings[0].Action)
			assert.Equal(t, "file.save", km.Bindings[1].Action)
			assert.Equal(t, "control+shift+k", key.NormalizeDeclared(km.Bindings[0].Keys))
			assert.Equal(t, "control+s", key.NormalizeDeclared(km.Bindings[1].Keys))
			assert.NoError(t, km.Validate())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "keys.ini", "x"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := map[string]string{
		"bad.toml": "name = \n[[bindings]",
		"bad.yaml": "bindings: [unclosed",
		"bad.json": `{"bindings": [`,
		"str.json": `"just a string"`,
	}
	for file, content := range bad {
		_, err := Load(writeFile(t, file, content))
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "%s: %v", file, err)
		assert.Contains(t, perr.Error(), file)
	}
}

func TestTOMLParseErrorPosition(t *testing.T) {
	_, err := Parse(FormatTOML, "inline", []byte("name = \"x\"\nbindings = [[\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Positive(t, perr.Line)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("a/B.TOML"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("c.json"))
	assert.Equal(t, FormatUnknown, FormatFromPath("d"))
	assert.Equal(t, "json", FormatJSON.String())
}

func TestValidate(t *testing.T) {
	km := &Keymap{Bindings: []Binding{
		{Keys: "ctrl+k", Action: "ok"},
		{Keys: "", Action: "empty.keys"},
		{Keys: "ctrl+shift", Action: "no.base"},
		{Keys: "ctrl+j", Action: " "},
		{Keys: "ctrl+a+", Action: "stray.plus"},
	}}
	err := km.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBinding)
	assert.ErrorIs(t, err, key.ErrEmptySpec)
	assert.ErrorIs(t, err, key.ErrNoBaseKey)
	assert.ErrorIs(t, err, key.ErrStraySeparator)
	assert.Contains(t, err.Error(), "binding 3")
}

func TestShadowed(t *testing.T) {
	km := &Keymap{Bindings: []Binding{
		{Keys: "Shift+Control+K", Action: "a"},
		{Keys: "control+shift+k", Action: "b"},
		{Keys: "ctrl+j", Action: "c"},
	}}
	shadows := km.Shadowed()
	require.Len(t, shadows, 1)
	assert.Equal(t, "control+shift+k", shadows[0].Combo)
	assert.Len(t, shadows[0].Declared, 2)
}

func TestBind(t *testing.T) {
	km, err := Parse(FormatTOML, "inline", []byte(tomlKeymap))
	require.NoError(t, err)

	var calls []string
	actions := map[string]keymap.Handler{
		"line.delete": func(*key.Event) error { calls = append(calls, "delete"); return nil },
		"file.save":   func(*key.Event) error { calls = append(calls, "save"); return nil },
	}
	bound, err := km.Bind(actions)
	require.NoError(t, err)

	ev := key.NewEvent("K", "KeyK", key.ModCtrl|key.ModShift)
	handled, err := keymap.HandleKeyPress(ev, bound)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, ev.DefaultPrevented())

	handled, err = keymap.HandleKeyPress(key.NewEvent("s", "KeyS", key.ModCtrl), bound)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []string{"delete", "save"}, calls)

	_, err = km.Bind(map[string]keymap.Handler{"line.delete": actions["line.delete"]})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestBindResolver(t *testing.T) {
	km := &Keymap{Bindings: []Binding{
		{Keys: "ctrl+l", Action: "lua:emit('hi')"},
		{Keys: "ctrl+b", Action: "lua:"},
	}}

	var bodies []string
	resolver := func(body string) (keymap.Handler, error) {
		if body == "" {
			return nil, errors.New("empty chunk")
		}
		bodies = append(bodies, body)
		return func(*key.Event) error { return nil }, nil
	}

	_, err := km.Bind(nil, WithResolver("lua:", resolver))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ctrl+b")

	km.Bindings = km.Bindings[:1]
	bound, err := km.Bind(nil, WithResolver("lua:", resolver))
	require.NoError(t, err)
	assert.Len(t, bound, 1)
	assert.Equal(t, []string{"emit('hi')"}, bodies)
}

func TestSaveFileRoundTrip(t *testing.T) {
	km := &Keymap{Name: "saved", Bindings: []Binding{
		{Keys: "ctrl+k", Action: "line.delete", Description: "Delete line"},
		{Keys: "alt+arrowup", Action: "line.up"},
	}}
	path := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, km.SaveFile(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, km.Name, loaded.Name)
	assert.Equal(t, km.Bindings, loaded.Bindings)
}

func TestLoadAll(t *testing.T) {
	a := writeFile(t, "a.toml", tomlKeymap)
	b := writeFile(t, "b.json", jsonArrayKeymap)

	kms, err := LoadAll([]string{a, b})
	require.NoError(t, err)
	require.Len(t, kms, 2)
	assert.Equal(t, "b", kms[1].Name)

	_, err = LoadAll([]string{a, "missing.toml"})
	assert.Error(t, err)
}
