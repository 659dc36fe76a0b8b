// Package tablist is a tab-list widget built on the roving controller.
//
// Tabs are navigable elements under the list root. Each tab owns a panel
// that lives outside the root, so Enter and Space move focus out of the
// list and into the panel's content.
package tablist

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/keynav/internal/focus"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/logging"
	"github.com/dshills/keynav/internal/roving"
)

var (
	// ErrDuplicateTab is returned when a tab id is already in the list.
	ErrDuplicateTab = errors.New("duplicate tab")

	// ErrUnmounted is returned when the list has been unmounted.
	ErrUnmounted = errors.New("tab list unmounted")
)

// Tab is one tab and its panel.
type Tab struct {
	// ID is the tab element. Generated when empty.
	ID string

	// PanelID is the panel element. Generated when empty.
	PanelID string

	// Label is display text.
	Label string
}

// TabList is a tab-list widget instance.
type TabList struct {
	tree   *focus.Tree
	rootID string
	tabs   []Tab

	ctrl   *roving.Controller
	logger *logging.Logger
}

type settings struct {
	rootID   string
	ctrlOpts []roving.Option
	logger   *logging.Logger
}

// Option configures a TabList.
type Option func(*settings)

// WithRootID sets the id of the list root element.
func WithRootID(id string) Option {
	return func(s *settings) { s.rootID = id }
}

// WithDefaultTab starts with the given tab active.
func WithDefaultTab(id string) Option {
	return func(s *settings) { s.ctrlOpts = append(s.ctrlOpts, roving.WithDefaultID(id)) }
}

// WithOrientation sets the navigation axis. Tab lists default to horizontal.
func WithOrientation(o roving.Orientation) Option {
	return func(s *settings) { s.ctrlOpts = append(s.ctrlOpts, roving.WithOrientation(o)) }
}

// WithOnChange is called whenever the active tab changes.
func WithOnChange(fn roving.ChangeFunc) Option {
	return func(s *settings) { s.ctrlOpts = append(s.ctrlOpts, roving.WithOnChange(fn)) }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New creates an empty tab list rooted in tree.
func New(tree *focus.Tree, opts ...Option) (*TabList, error) {
	s := settings{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	rootID, err := tree.Add(s.rootID, "", false)
	if err != nil {
		return nil, fmt.Errorf("tablist root: %w", err)
	}

	tl := &TabList{
		tree:   tree,
		rootID: rootID,
		logger: s.logger.WithComponent("tablist").WithField("root", rootID),
	}
	ctrlOpts := append([]roving.Option{roving.WithLogger(s.logger)}, s.ctrlOpts...)
	tl.ctrl = roving.New(tl, tree, ctrlOpts...)
	return tl, nil
}

// RootID returns the list root element id.
func (tl *TabList) RootID() string {
	return tl.rootID
}

// AddTab appends a tab and its panel. It returns the tab with any
// generated ids filled in.
func (tl *TabList) AddTab(tab Tab) (Tab, error) {
	if !tl.ctrl.Mounted() {
		return Tab{}, ErrUnmounted
	}
	if tab.ID == "" {
		tab.ID = uuid.NewString()
	}
	if tab.PanelID == "" {
		tab.PanelID = tab.ID + "-panel"
	}
	if tl.indexOf(tab.ID) >= 0 {
		return Tab{}, fmt.Errorf("%w: %q", ErrDuplicateTab, tab.ID)
	}

	if _, err := tl.tree.Add(tab.ID, tl.rootID, true); err != nil {
		return Tab{}, fmt.Errorf("add tab: %w", err)
	}
	if _, err := tl.tree.Add(tab.PanelID, "", false); err != nil {
		tl.tree.Remove(tab.ID)
		return Tab{}, fmt.Errorf("add panel: %w", err)
	}

	tl.tabs = append(tl.tabs, tab)
	tl.ctrl.Sync()
	tl.logger.Debug("added tab %q", tab.ID)
	return tab, nil
}

// RemoveTab removes a tab and its panel. The active id is left alone; a
// removed active tab makes navigation a no-op until another tab is
// selected.
func (tl *TabList) RemoveTab(id string) bool {
	i := tl.indexOf(id)
	if i < 0 {
		return false
	}
	tab := tl.tabs[i]
	tl.tabs = append(tl.tabs[:i], tl.tabs[i+1:]...)
	tl.tree.Remove(tab.ID)
	tl.tree.Remove(tab.PanelID)
	tl.logger.Debug("removed tab %q", id)
	return true
}

// Tabs returns the tabs in order.
func (tl *TabList) Tabs() []Tab {
	out := make([]Tab, len(tl.tabs))
	copy(out, tl.tabs)
	return out
}

// Items implements roving.Registry.
func (tl *TabList) Items() []roving.Item {
	items := make([]roving.Item, 0, len(tl.tabs))
	for _, tab := range tl.tabs {
		if !tl.tree.Has(tab.ID) {
			continue
		}
		items = append(items, roving.Item{ID: tab.ID, ContentID: tab.PanelID})
	}
	return items
}

// Contains implements roving.Registry.
func (tl *TabList) Contains(elementID string) bool {
	return tl.tree.Contains(tl.rootID, elementID)
}

// ActiveID returns the active tab.
func (tl *TabList) ActiveID() (string, bool) {
	return tl.ctrl.ActiveID()
}

// ActivePanel returns the panel of the active tab.
func (tl *TabList) ActivePanel() (string, bool) {
	id, ok := tl.ctrl.ActiveID()
	if !ok {
		return "", false
	}
	if i := tl.indexOf(id); i >= 0 {
		return tl.tabs[i].PanelID, true
	}
	return "", false
}

// TabIndex returns the tab stop value for a tab.
func (tl *TabList) TabIndex(id string) int {
	return tl.ctrl.TabIndex(id)
}

// SelectItem activates and focuses a tab, as on a click.
func (tl *TabList) SelectItem(id string) bool {
	return tl.ctrl.SelectItem(id)
}

// HandleKeyDown routes a key press to the list's navigation.
func (tl *TabList) HandleKeyDown(ev *key.Event) (bool, error) {
	return tl.ctrl.HandleKeyDown(ev)
}

// Orientation returns the navigation axis.
func (tl *TabList) Orientation() roving.Orientation {
	return tl.ctrl.Orientation()
}

// SetOrientation changes the navigation axis.
func (tl *TabList) SetOrientation(o roving.Orientation) {
	tl.ctrl.SetOrientation(o)
}

// Sync rediscovers tabs after the host changed the tree directly.
func (tl *TabList) Sync() {
	tl.ctrl.Sync()
}

// Unmount detaches the list. The elements stay in the tree.
func (tl *TabList) Unmount() {
	tl.ctrl.Unmount()
}

func (tl *TabList) indexOf(id string) int {
	for i, tab := range tl.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}
