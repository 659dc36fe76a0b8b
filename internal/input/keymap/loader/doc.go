// Package loader reads declarative keymaps from TOML, YAML and JSON files
// and binds them to handlers.
//
// A keymap file names each binding's keys and an action:
//
//	name = "editor"
//
//	[[bindings]]
//	keys = "Shift+Control+K"
//	action = "line.delete"
//
// JSON files may instead be an array of {"key", "command"} objects, the
// shape editors commonly export. Keys may be written in any modifier order
// and case; they are canonicalized when bound.
package loader
