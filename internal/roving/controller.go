package roving

import (
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/input/keymap"
	"github.com/dshills/keynav/internal/logging"
)

// ChangeFunc is called after the active item changes.
type ChangeFunc func(from, to string)

// Controller implements the roving tabindex pattern for one composite
// widget: exactly one item is active and reachable with Tab, and arrow
// keys move which item that is.
//
// A Controller is driven from the host's event loop and is not safe for
// concurrent use. While it handles a key it is the only writer of focus.
type Controller struct {
	registry Registry
	target   FocusTarget

	activeID    string
	hasActive   bool
	orientation Orientation
	mounted     bool

	dispatcher *keymap.Dispatcher
	logger     *logging.Logger
	onChange   ChangeFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultID starts the controller with id active instead of the
// first discovered item.
func WithDefaultID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.activeID = id
			c.hasActive = true
		}
	}
}

// WithOrientation sets the initial orientation. The default is Horizontal.
func WithOrientation(o Orientation) Option {
	return func(c *Controller) {
		c.orientation = o
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l.WithComponent("roving")
		}
	}
}

// WithDispatcher sets the dispatcher used for the internal key map.
func WithDispatcher(d *keymap.Dispatcher) Option {
	return func(c *Controller) {
		if d != nil {
			c.dispatcher = d
		}
	}
}

// WithOnChange registers a callback for active item changes.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// New creates a mounted controller over a widget's registry and the
// host's focus target.
func New(registry Registry, target FocusTarget, opts ...Option) *Controller {
	c := &Controller{
		registry:   registry,
		target:     target,
		mounted:    true,
		dispatcher: keymap.NewDispatcher(),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActiveID returns the active item id. ok is false until an item has
// been discovered or selected.
func (c *Controller) ActiveID() (id string, ok bool) {
	return c.activeID, c.hasActive
}

// Orientation returns the current orientation.
func (c *Controller) Orientation() Orientation {
	return c.orientation
}

// SetOrientation changes which arrow keys navigate.
func (c *Controller) SetOrientation(o Orientation) {
	c.orientation = o
}

// Mounted reports whether the controller still accepts input.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// Unmount detaches the controller. Every later call is a no-op.
func (c *Controller) Unmount() {
	c.mounted = false
}

// TabIndex returns 0 for the active item and -1 for every other item,
// the values a host assigns so only the active item is reachable with Tab.
func (c *Controller) TabIndex(id string) int {
	if c.hasActive && id == c.activeID {
		return 0
	}
	return -1
}

// Sync discovers the current items and, when nothing is active yet,
// makes the first one active. Hosts call it after each render.
func (c *Controller) Sync() {
	if !c.mounted {
		return
	}
	c.adoptFirst(c.registry.Items())
}

// SelectItem makes id active and focuses it, as on a pointer click.
// It returns false when id is not a live item or cannot be focused.
func (c *Controller) SelectItem(id string) bool {
	if !c.mounted {
		return false
	}
	if _, ok := indexOf(c.registry.Items(), id); !ok {
		c.logger.Debug("select %q ignored: not a live item", id)
		return false
	}
	return c.focusItem(id)
}

// HandleKeyDown handles a key event delivered while focus is within the
// widget. It reports whether the event was consumed; consumed events have
// had their default action prevented.
//
// The event is ignored unless the focused element is a navigable item of
// this widget inside its root and the active item still exists. Focus on
// a nested widget's items is left to that widget.
func (c *Controller) HandleKeyDown(ev *key.Event) (bool, error) {
	if !c.mounted {
		return false, nil
	}

	items := c.registry.Items()

	focused, ok := c.target.Active()
	if !ok || !focused.Navigable {
		return false, nil
	}
	if _, ok := indexOf(items, focused.ID); !ok {
		c.logger.Debug("focus %q is not an item of this widget", focused.ID)
		return false, nil
	}
	if !c.registry.Contains(focused.ID) {
		c.logger.Debug("focus %q is outside this widget", focused.ID)
		return false, nil
	}

	c.adoptFirst(items)
	if !c.hasActive {
		return false, nil
	}
	idx, ok := indexOf(items, c.activeID)
	if !ok {
		c.logger.Debug("active item %q is gone", c.activeID)
		return false, nil
	}

	return c.dispatcher.Dispatch(ev, c.keyMap(items, idx))
}

// keyMap builds the navigation bindings for the current orientation and
// active item. Keys the orientation excludes are left unbound so their
// default action survives.
func (c *Controller) keyMap(items []Item, idx int) keymap.KeyMap {
	n := len(items)
	moveTo := func(i int) keymap.Handler {
		return func(*key.Event) error {
			c.focusItem(items[i].ID)
			return nil
		}
	}

	next, prev := key.TokenArrowRight, key.TokenArrowLeft
	if c.orientation == Vertical {
		next, prev = key.TokenArrowDown, key.TokenArrowUp
	}

	km := keymap.KeyMap{
		next:          moveTo((idx + 1) % n),
		prev:          moveTo((idx - 1 + n) % n),
		key.TokenHome: moveTo(0),
		key.TokenEnd:  moveTo(n - 1),
	}

	if content := items[idx].ContentID; content != "" {
		enterContent := func(*key.Event) error {
			if !c.target.Focus(content) {
				c.logger.Debug("content %q is gone", content)
			}
			return nil
		}
		km[key.TokenEnter] = enterContent
		km[key.TokenSpace] = enterContent
	}
	return km
}

// focusItem is the only place that moves focus to an item and records it
// as active. Both happen or neither does.
func (c *Controller) focusItem(id string) bool {
	if !c.target.Focus(id) {
		c.logger.Debug("focus %q failed: element is gone", id)
		return false
	}
	from := c.activeID
	c.activeID = id
	c.hasActive = true
	if from != id {
		c.logger.Debug("active %q -> %q", from, id)
		if c.onChange != nil {
			c.onChange(from, id)
		}
	}
	return true
}

func (c *Controller) adoptFirst(items []Item) {
	if c.hasActive || len(items) == 0 {
		return
	}
	c.activeID = items[0].ID
	c.hasActive = true
	c.logger.Debug("initial active item %q", c.activeID)
}

func indexOf(items []Item, id string) (int, bool) {
	for i, it := range items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}
