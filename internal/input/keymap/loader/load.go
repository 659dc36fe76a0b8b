package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a keymap file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
	FormatJSON
)

// ErrUnknownFormat is returned for files with an unrecognized extension.
var ErrUnknownFormat = errors.New("unknown keymap format")

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// ParseError reports a keymap file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a keymap file, choosing the decoder by extension. A keymap
// without a name is named after the file.
func Load(path string) (*Keymap, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	km, err := Parse(format, path, data)
	if err != nil {
		return nil, err
	}
	if km.Name == "" {
		km.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return km, nil
}

// LoadAll reads every keymap in paths, stopping at the first error.
func LoadAll(paths []string) ([]*Keymap, error) {
	out := make([]*Keymap, 0, len(paths))
	for _, p := range paths {
		km, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, km)
	}
	return out, nil
}

// Parse decodes keymap data in the given format. source names the data
// in errors.
func Parse(format Format, source string, data []byte) (*Keymap, error) {
	var (
		km  *Keymap
		err error
	)
	switch format {
	case FormatTOML:
		km, err = parseTOML(source, data)
	case FormatYAML:
		km, err = parseYAML(source, data)
	case FormatJSON:
		km, err = parseJSON(source, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, source)
	}
	if err != nil {
		return nil, err
	}
	km.Source = source
	return km, nil
}

func parseTOML(source string, data []byte) (*Keymap, error) {
	var km Keymap
	if err := toml.Unmarshal(data, &km); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return &km, nil
}

func parseYAML(source string, data []byte) (*Keymap, error) {
	var km Keymap
	if err := yaml.Unmarshal(data, &km); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return &km, nil
}
