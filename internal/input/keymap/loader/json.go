package loader

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// parseJSON accepts either a keymap object or an array of
// {"key", "command"} entries.
func parseJSON(source string, data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}

	root := gjson.ParseBytes(data)
	km := &Keymap{}
	switch {
	case root.IsArray():
		root.ForEach(func(_, entry gjson.Result) bool {
			km.Bindings = append(km.Bindings, Binding{
				Keys:        entry.Get("key").String(),
				Action:      entry.Get("command").String(),
				Description: entry.Get("description").String(),
			})
			return true
		})
	case root.IsObject():
		km.Name = root.Get("name").String()
		root.Get("bindings").ForEach(func(_, entry gjson.Result) bool {
			km.Bindings = append(km.Bindings, Binding{
				Keys:        entry.Get("keys").String(),
				Action:      entry.Get("action").String(),
				Description: entry.Get("description").String(),
			})
			return true
		})
	default:
		err := fmt.Errorf("%w: expected object or array, got %s", errInvalidJSON, root.Type)
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return km, nil
}

// MarshalJSON encodes the keymap in the object form.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	doc := []byte(`{"bindings":[]}`)
	var err error
	if k.Name != "" {
		if doc, err = sjson.SetBytes(doc, "name", k.Name); err != nil {
			return nil, err
		}
	}
	for i, b := range k.Bindings {
		base := "bindings." + strconv.Itoa(i)
		if doc, err = sjson.SetBytes(doc, base+".keys", b.Keys); err != nil {
			return nil, err
		}
		if doc, err = sjson.SetBytes(doc, base+".action", b.Action); err != nil {
			return nil, err
		}
		if b.Description != "" {
			if doc, err = sjson.SetBytes(doc, base+".description", b.Description); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// SaveFile writes the keymap as JSON.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
