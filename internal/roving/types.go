package roving

import (
	"errors"
	"fmt"
	"strings"
)

// Orientation selects which arrow keys move between items.
type Orientation int

const (
	// Horizontal navigates with ArrowLeft and ArrowRight.
	Horizontal Orientation = iota
	// Vertical navigates with ArrowUp and ArrowDown.
	Vertical
)

// ErrInvalidOrientation is returned by ParseOrientation.
var ErrInvalidOrientation = errors.New("invalid orientation")

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "horizontal" or "vertical", case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// Item is one navigable member of a composite widget.
type Item struct {
	// ID identifies both the item and its focusable element.
	ID string

	// ContentID is the element that Enter and Space move focus into,
	// such as a tab's panel. Empty when the item has no content region.
	ContentID string
}

// Registry reports the live items of one widget instance.
type Registry interface {
	// Items returns the current items in navigation order.
	Items() []Item

	// Contains reports whether the element lies inside the widget's root.
	Contains(elementID string) bool
}

// Element describes the element that currently holds focus.
type Element struct {
	ID string

	// Navigable is set for elements that are roving items of some widget.
	Navigable bool
}

// FocusTarget is the host's focus resource.
type FocusTarget interface {
	// Focus moves focus to the element. It returns false, and changes
	// nothing, when the element no longer exists.
	Focus(elementID string) bool

	// Active returns the focused element, if any.
	Active() (Element, bool)
}
