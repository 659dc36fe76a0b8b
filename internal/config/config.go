package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keynav/internal/logging"
	"github.com/dshills/keynav/internal/roving"
)

// DefaultFileName is the config file looked up when none is given.
const DefaultFileName = "keynav.toml"

// Config holds all keynav settings.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Navigation NavigationConfig `toml:"navigation"`
	Script     ScriptConfig     `toml:"script"`

	// Keymaps are keymap file paths, loaded in order.
	Keymaps []string `toml:"keymaps"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// NavigationConfig configures roving controllers created by the CLI.
type NavigationConfig struct {
	Orientation string `toml:"orientation"`
}

// ScriptConfig configures Lua actions.
type ScriptConfig struct {
	Timeout string `toml:"timeout"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Level: "info"},
		Navigation: NavigationConfig{Orientation: roving.Horizontal.String()},
		Script:     ScriptConfig{Timeout: "1s"},
	}
}

// Load reads path over the defaults and applies the environment. A
// missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(path, data); err != nil {
			return nil, err
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults without consulting the
// environment.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	if err := toml.Unmarshal(data, c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, &ValidationError{Path: "log.level", Value: c.Log.Level, Err: errors.New("want debug, info, warn or error")})
	}
	if _, err := roving.ParseOrientation(c.Navigation.Orientation); err != nil {
		errs = append(errs, &ValidationError{Path: "navigation.orientation", Value: c.Navigation.Orientation, Err: err})
	}
	if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d <= 0 {
		if err == nil {
			err = errors.New("must be positive")
		}
		errs = append(errs, &ValidationError{Path: "script.timeout", Value: c.Script.Timeout, Err: err})
	}
	for i, p := range c.Keymaps {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, &ValidationError{Path: fmt.Sprintf("keymaps[%d]", i), Value: `""`, Err: errors.New("empty path")})
		}
	}
	return errors.Join(errs...)
}

// Orientation returns the navigation orientation, horizontal when the
// setting is invalid.
func (c *Config) Orientation() roving.Orientation {
	o, _ := roving.ParseOrientation(c.Navigation.Orientation)
	return o
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}

// ScriptTimeout returns the Lua action time limit.
func (c *Config) ScriptTimeout() time.Duration {
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// KeymapPaths returns the keymap paths with relative entries resolved
// against the config file's directory.
func (c *Config) KeymapPaths() []string {
	base := "."
	if c.Path != "" {
		base = filepath.Dir(c.Path)
	}
	out := make([]string, 0, len(c.Keymaps))
	for _, p := range c.Keymaps {
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		out = append(out, p)
	}
	return out
}
