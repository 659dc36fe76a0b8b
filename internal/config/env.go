package config

import (
	"path/filepath"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KEYNAV_"

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel      = EnvPrefix + "LOG_LEVEL"
	EnvOrientation   = EnvPrefix + "ORIENTATION"
	EnvKeymap        = EnvPrefix + "KEYMAP"
	EnvScriptTimeout = EnvPrefix + "SCRIPT_TIMEOUT"
)

// LookupFunc reads an environment variable.
type LookupFunc func(name string) (string, bool)

// ApplyEnv overrides settings from the environment. KEYNAV_KEYMAP holds
// one or more paths separated by the OS list separator and replaces the
// configured keymaps. Empty values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookupNonEmpty(lookup, EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(lookup, EnvOrientation); ok {
		c.Navigation.Orientation = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(lookup, EnvScriptTimeout); ok {
		c.Script.Timeout = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvKeymap); ok {
		c.Keymaps = filepath.SplitList(v)
	}
}

func lookupNonEmpty(lookup LookupFunc, name string) (string, bool) {
	v, ok := lookup(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
