// Package config loads keynav settings.
//
// Settings are layered, lowest priority first:
//
//  1. built-in defaults
//  2. keynav.toml
//  3. KEYNAV_* environment variables
//
// Example file:
//
//	keymaps = ["keymaps/editor.toml"]
//
//	[log]
//	level = "debug"
//
//	[navigation]
//	orientation = "vertical"
//
//	[script]
//	timeout = "500ms"
//
// Relative keymap paths resolve against the directory of the config file.
// Watcher reports edits to the config and keymap files so hosts can reload.
package config
