// Package togglegroup is a toggle-button group built on the roving
// controller. Items have no content region, so Enter and Space are left
// to the group, which uses them to press the focused item.
package togglegroup

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/keynav/internal/focus"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/logging"
	"github.com/dshills/keynav/internal/roving"
)

// Type selects how many items can be pressed at once.
type Type int

const (
	// Single allows at most one pressed item.
	Single Type = iota
	// Multiple allows any number of pressed items.
	Multiple
)

// String returns "single" or "multiple".
func (t Type) String() string {
	if t == Multiple {
		return "multiple"
	}
	return "single"
}

var (
	// ErrDuplicateItem is returned when an item id is already in the group.
	ErrDuplicateItem = errors.New("duplicate toggle item")

	// ErrUnmounted is returned when the group has been unmounted.
	ErrUnmounted = errors.New("toggle group unmounted")
)

// Group is a toggle-group widget instance.
type Group struct {
	tree    *focus.Tree
	rootID  string
	typ     Type
	order   []string
	pressed map[string]bool

	ctrl   *roving.Controller
	logger *logging.Logger
}

type settings struct {
	rootID   string
	typ      Type
	ctrlOpts []roving.Option
	logger   *logging.Logger
}

// Option configures a Group.
type Option func(*settings)

// WithRootID sets the id of the group root element.
func WithRootID(id string) Option {
	return func(s *settings) { s.rootID = id }
}

// WithType sets single or multiple selection. The default is Single.
func WithType(t Type) Option {
	return func(s *settings) { s.typ = t }
}

// WithOrientation sets the navigation axis.
func WithOrientation(o roving.Orientation) Option {
	return func(s *settings) { s.ctrlOpts = append(s.ctrlOpts, roving.WithOrientation(o)) }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New creates an empty group rooted in tree.
func New(tree *focus.Tree, opts ...Option) (*Group, error) {
	s := settings{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	rootID, err := tree.Add(s.rootID, "", false)
	if err != nil {
		return nil, fmt.Errorf("togglegroup root: %w", err)
	}

	g := &Group{
		tree:    tree,
		rootID:  rootID,
		typ:     s.typ,
		pressed: make(map[string]bool),
		logger:  s.logger.WithComponent("togglegroup").WithField("root", rootID),
	}
	ctrlOpts := append([]roving.Option{roving.WithLogger(s.logger)}, s.ctrlOpts...)
	g.ctrl = roving.New(g, tree, ctrlOpts...)
	return g, nil
}

// RootID returns the group root element id.
func (g *Group) RootID() string {
	return g.rootID
}

// Type returns the selection type.
func (g *Group) Type() Type {
	return g.typ
}

// AddItem appends an item and returns its id, generating one when id
// is empty.
func (g *Group) AddItem(id string) (string, error) {
	if !g.ctrl.Mounted() {
		return "", ErrUnmounted
	}
	if id == "" {
		id = uuid.NewString()
	}
	if g.indexOf(id) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrDuplicateItem, id)
	}
	if _, err := g.tree.Add(id, g.rootID, true); err != nil {
		return "", fmt.Errorf("add item: %w", err)
	}
	g.order = append(g.order, id)
	g.ctrl.Sync()
	return id, nil
}

// RemoveItem removes an item and forgets its pressed state.
func (g *Group) RemoveItem(id string) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.order = append(g.order[:i], g.order[i+1:]...)
	delete(g.pressed, id)
	g.tree.Remove(id)
	return true
}

// Items implements roving.Registry.
func (g *Group) Items() []roving.Item {
	items := make([]roving.Item, 0, len(g.order))
	for _, id := range g.order {
		if g.tree.Has(id) {
			items = append(items, roving.Item{ID: id})
		}
	}
	return items
}

// Contains implements roving.Registry.
func (g *Group) Contains(elementID string) bool {
	return g.tree.Contains(g.rootID, elementID)
}

// Pressed reports whether an item is pressed.
func (g *Group) Pressed(id string) bool {
	return g.pressed[id]
}

// Toggle flips an item's pressed state. In a Single group pressing an
// item releases the others. It returns false for unknown items.
func (g *Group) Toggle(id string) bool {
	if !g.ctrl.Mounted() || g.indexOf(id) < 0 {
		return false
	}
	next := !g.pressed[id]
	if next && g.typ == Single {
		clear(g.pressed)
	}
	if next {
		g.pressed[id] = true
	} else {
		delete(g.pressed, id)
	}
	g.logger.Debug("toggle %q pressed=%t", id, next)
	return true
}

// Value returns the pressed items in group order.
func (g *Group) Value() []string {
	var out []string
	for _, id := range g.order {
		if g.pressed[id] {
			out = append(out, id)
		}
	}
	return out
}

// ActiveID returns the item that holds the tab stop.
func (g *Group) ActiveID() (string, bool) {
	return g.ctrl.ActiveID()
}

// TabIndex returns the tab stop value for an item.
func (g *Group) TabIndex(id string) int {
	return g.ctrl.TabIndex(id)
}

// SelectItem activates and focuses an item without toggling it.
func (g *Group) SelectItem(id string) bool {
	return g.ctrl.SelectItem(id)
}

// HandleKeyDown routes a key press to navigation, then to activation.
// Enter and Space press the focused item when it belongs to the group.
func (g *Group) HandleKeyDown(ev *key.Event) (bool, error) {
	handled, err := g.ctrl.HandleKeyDown(ev)
	if handled || err != nil {
		return handled, err
	}
	if !g.ctrl.Mounted() {
		return false, nil
	}

	focused, ok := g.tree.Active()
	if !ok || g.indexOf(focused.ID) < 0 {
		return false, nil
	}
	activate := func(*key.Event) error {
		g.Toggle(focused.ID)
		return nil
	}
	return keymap.HandleKeyPress(ev, keymap.KeyMap{
		key.TokenEnter: activate,
		key.TokenSpace: activate,
	})
}

// Orientation returns the navigation axis.
func (g *Group) Orientation() roving.Orientation {
	return g.ctrl.Orientation()
}

// SetOrientation changes the navigation axis.
func (g *Group) SetOrientation(o roving.Orientation) {
	g.ctrl.SetOrientation(o)
}

// Unmount detaches the group.
func (g *Group) Unmount() {
	g.ctrl.Unmount()
}

func (g *Group) indexOf(id string) int {
	for i, v := range g.order {
		if v == id {
			return i
		}
	}
	return -1
}
