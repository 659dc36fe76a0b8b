package roving_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keynav/internal/focus"
	"github.com/dshills/keynav/internal/input/key"
	"github.com/dshills/keynav/internal/roving"
)

// widget is a minimal Registry over a focus.Tree.
type widget struct {
	tree  *focus.Tree
	root  string
	items []roving.Item
}

func newWidget(t *testing.T, tree *focus.Tree, root string, ids ...string) *widget {
	t.Helper()
	_, err := tree.Add(root, "", false)
	require.NoError(t, err)
	w := &widget{tree: tree, root: root}
	for _, id := range ids {
		_, err := tree.Add(id, root, true)
		require.NoError(t, err)
		panel := id + "-panel"
		_, err = tree.Add(panel, "", false)
		require.NoError(t, err)
		w.items = append(w.items, roving.Item{ID: id, ContentID: panel})
	}
	return w
}

func (w *widget) Items() []roving.Item {
	live := make([]roving.Item, 0, len(w.items))
	for _, it := range w.items {
		if w.tree.Has(it.ID) {
			live = append(live, it)
		}
	}
	return live
}

func (w *widget) Contains(id string) bool {
	return w.tree.Contains(w.root, id)
}

func press(name, code string) *key.Event {
	return &key.Event{Key: name, Code: code}
}

func setup(t *testing.T, opts ...roving.Option) (*focus.Tree, *widget, *roving.Controller) {
	t.Helper()
	tree := focus.NewTree()
	w := newWidget(t, tree, "list", "a", "b", "c")
	c := roving.New(w, tree, opts...)
	c.Sync()
	require.True(t, tree.Focus("a"))
	return tree, w, c
}

func activeID(t *testing.T, c *roving.Controller) string {
	t.Helper()
	id, ok := c.ActiveID()
	require.True(t, ok)
	return id
}

func TestArrowRightWrapsAround(t *testing.T) {
	tree, _, c := setup(t)
	require.Equal(t, "a", activeID(t, c))

	var visited []string
	for i := 0; i < 4; i++ {
		ev := press("ArrowRight", "ArrowRight")
		handled, err := c.HandleKeyDown(ev)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.True(t, ev.DefaultPrevented())
		visited = append(visited, activeID(t, c))
		assert.True(t, tree.IsFocused(activeID(t, c)))
	}
	assert.Equal(t, []string{"b", "c", "a", "b"}, visited)
}

func TestArrowLeftWrapsAround(t *testing.T) {
	_, _, c := setup(t)

	var visited []string
	for i := 0; i < 3; i++ {
		_, err := c.HandleKeyDown(press("ArrowLeft", "ArrowLeft"))
		require.NoError(t, err)
		visited = append(visited, activeID(t, c))
	}
	assert.Equal(t, []string{"c", "b", "a"}, visited)
}

func TestHorizontalIgnoresVerticalArrows(t *testing.T) {
	_, _, c := setup(t)

	for _, name := range []string{"ArrowDown", "ArrowUp"} {
		ev := press(name, name)
		handled, err := c.HandleKeyDown(ev)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.False(t, ev.DefaultPrevented(), "%s should keep its default action", name)
		assert.Equal(t, "a", activeID(t, c))
	}
}

func TestVerticalOrientation(t *testing.T) {
	_, _, c := setup(t, roving.WithOrientation(roving.Vertical))

	_, _ = c.HandleKeyDown(press("ArrowRight", "ArrowRight"))
	assert.Equal(t, "a", activeID(t, c))

	_, _ = c.HandleKeyDown(press("ArrowDown", "ArrowDown"))
	assert.Equal(t, "b", activeID(t, c))

	_, _ = c.HandleKeyDown(press("ArrowUp", "ArrowUp"))
	_, _ = c.HandleKeyDown(press("ArrowUp", "ArrowUp"))
	assert.Equal(t, "c", activeID(t, c))

	c.SetOrientation(roving.Horizontal)
	_, _ = c.HandleKeyDown(press("ArrowRight", "ArrowRight"))
	assert.Equal(t, "a", activeID(t, c))
}

func TestHomeAndEnd(t *testing.T) {
	for _, o := range []roving.Orientation{roving.Horizontal, roving.Vertical} {
		t.Run(o.String(), func(t *testing.T) {
			tree, _, c := setup(t, roving.WithOrientation(o))
			require.True(t, c.SelectItem("b"))

			_, err := c.HandleKeyDown(press("End", "End"))
			require.NoError(t, err)
			assert.Equal(t, "c", activeID(t, c))
			assert.True(t, tree.IsFocused("c"))

			_, err = c.HandleKeyDown(press("Home", "Home"))
			require.NoError(t, err)
			assert.Equal(t, "a", activeID(t, c))
			assert.True(t, tree.IsFocused("a"))
		})
	}
}

func TestEnterFocusesContentWithoutChangingActive(t *testing.T) {
	for _, ev := range []*key.Event{press("Enter", "Enter"), press(" ", "Space")} {
		tree, _, c := setup(t)
		require.True(t, c.SelectItem("b"))

		handled, err := c.HandleKeyDown(ev)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.True(t, ev.DefaultPrevented())
		assert.True(t, tree.IsFocused("b-panel"))
		assert.Equal(t, "b", activeID(t, c))
	}
}

func TestFocusOutsideRootIsNoOp(t *testing.T) {
	tree, _, c := setup(t)
	other := newWidget(t, tree, "other", "x", "y")
	_ = other
	require.True(t, tree.Focus("x"))

	ev := press("ArrowRight", "ArrowRight")
	handled, err := c.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "a", activeID(t, c))
	assert.True(t, tree.IsFocused("x"))
}

func TestNestedWidgetKeepsItsKeys(t *testing.T) {
	tree := focus.NewTree()
	outer := newWidget(t, tree, "outer", "a", "b")
	_, err := tree.Add("inner", "outer", false)
	require.NoError(t, err)
	inner := &widget{tree: tree, root: "inner"}
	for _, id := range []string{"x", "y"} {
		_, err := tree.Add(id, "inner", true)
		require.NoError(t, err)
		inner.items = append(inner.items, roving.Item{ID: id})
	}
	outerCtl := roving.New(outer, tree)
	innerCtl := roving.New(inner, tree)
	outerCtl.Sync()
	innerCtl.Sync()
	require.True(t, tree.Focus("x"))
	require.True(t, outer.Contains("x"), "x lies inside the outer root")

	ev := press("ArrowRight", "ArrowRight")
	handled, err := outerCtl.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "a", activeID(t, outerCtl))
	assert.True(t, tree.IsFocused("x"))

	handled, err = innerCtl.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "y", activeID(t, innerCtl))
	assert.True(t, tree.IsFocused("y"))
}

func TestUninitializedIgnoresFocusOutsideRoot(t *testing.T) {
	tree := focus.NewTree()
	w := newWidget(t, tree, "list", "a", "b", "c")
	newWidget(t, tree, "other", "x")
	c := roving.New(w, tree)
	require.True(t, tree.Focus("x"))

	ev := press("ArrowRight", "ArrowRight")
	handled, err := c.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	_, ok := c.ActiveID()
	assert.False(t, ok, "a key outside the root must not pick an active item")
	assert.True(t, tree.IsFocused("x"))
}

func TestFocusOnNonNavigableElementIsNoOp(t *testing.T) {
	tree, _, c := setup(t)
	_, err := tree.Add("search", "list", false)
	require.NoError(t, err)
	require.True(t, tree.Focus("search"))

	ev := press("ArrowRight", "ArrowRight")
	handled, _ := c.HandleKeyDown(ev)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "a", activeID(t, c))
}

func TestNoFocusIsNoOp(t *testing.T) {
	tree, _, c := setup(t)
	tree.Blur()

	handled, _ := c.HandleKeyDown(press("ArrowRight", "ArrowRight"))
	assert.False(t, handled)
	assert.Equal(t, "a", activeID(t, c))
}

func TestRemovedActiveItemIsNoOp(t *testing.T) {
	tree, _, c := setup(t)
	require.True(t, c.SelectItem("b"))
	tree.Remove("b")
	require.True(t, tree.Focus("a"))

	ev := press("ArrowRight", "ArrowRight")
	handled, err := c.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, "b", activeID(t, c), "a vanished item must not be replaced by a guess")
}

func TestItemsDiscoveredOnEveryKeyPress(t *testing.T) {
	tree, w, c := setup(t)

	_, err := tree.Add("d", "list", true)
	require.NoError(t, err)
	w.items = append(w.items, roving.Item{ID: "d"})

	_, _ = c.HandleKeyDown(press("End", "End"))
	assert.Equal(t, "d", activeID(t, c))

	tree.Remove("c")
	_, _ = c.HandleKeyDown(press("ArrowLeft", "ArrowLeft"))
	assert.Equal(t, "b", activeID(t, c))
}

func TestItemWithoutContentKeepsEnterDefault(t *testing.T) {
	tree := focus.NewTree()
	_, _ = tree.Add("group", "", false)
	_, _ = tree.Add("bold", "group", true)
	reg := &widget{tree: tree, root: "group", items: []roving.Item{{ID: "bold"}}}
	c := roving.New(reg, tree)
	require.True(t, tree.Focus("bold"))

	ev := press("Enter", "Enter")
	handled, err := c.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
}

func TestDefaultID(t *testing.T) {
	_, _, c := setup(t, roving.WithDefaultID("c"))
	assert.Equal(t, "c", activeID(t, c))
	assert.Equal(t, 0, c.TabIndex("c"))
	assert.Equal(t, -1, c.TabIndex("a"))
}

func TestUninitializedUntilDiscovery(t *testing.T) {
	tree := focus.NewTree()
	_, _ = tree.Add("list", "", false)
	w := &widget{tree: tree, root: "list"}
	c := roving.New(w, tree)

	c.Sync()
	_, ok := c.ActiveID()
	assert.False(t, ok)

	_, _ = tree.Add("a", "list", true)
	w.items = []roving.Item{{ID: "a"}}
	require.True(t, tree.Focus("a"))

	_, _ = c.HandleKeyDown(press("Home", "Home"))
	assert.Equal(t, "a", activeID(t, c))
}

func TestSelectItem(t *testing.T) {
	tree, _, c := setup(t)

	var changes [][2]string
	c2 := roving.New(&widget{tree: tree, root: "list", items: []roving.Item{{ID: "a"}, {ID: "b"}}}, tree,
		roving.WithOnChange(func(from, to string) { changes = append(changes, [2]string{from, to}) }))

	assert.True(t, c2.SelectItem("b"))
	assert.True(t, tree.IsFocused("b"))
	assert.False(t, c2.SelectItem("missing"))
	assert.Equal(t, [][2]string{{"", "b"}}, changes)

	assert.True(t, c.SelectItem("c"))
	assert.Equal(t, "c", activeID(t, c))
}

func TestUnmountStopsTransitions(t *testing.T) {
	_, _, c := setup(t)
	c.Unmount()
	assert.False(t, c.Mounted())

	ev := press("ArrowRight", "ArrowRight")
	handled, err := c.HandleKeyDown(ev)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.False(t, ev.DefaultPrevented())
	assert.False(t, c.SelectItem("b"))
	assert.Equal(t, "a", activeID(t, c))
}

// flakyTarget refuses to focus one element, as if it vanished between
// discovery and dispatch.
type flakyTarget struct {
	*focus.Tree
	gone string
}

func (f flakyTarget) Focus(id string) bool {
	if id == f.gone {
		return false
	}
	return f.Tree.Focus(id)
}

func TestFocusFailureLeavesStateConsistent(t *testing.T) {
	tree := focus.NewTree()
	w := newWidget(t, tree, "list", "a", "b", "c")
	c := roving.New(w, flakyTarget{Tree: tree, gone: "b"})
	c.Sync()
	require.True(t, tree.Focus("a"))

	handled, err := c.HandleKeyDown(press("ArrowRight", "ArrowRight"))
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "a", activeID(t, c))
	assert.True(t, tree.IsFocused("a"))
}

func TestParseOrientation(t *testing.T) {
	o, err := roving.ParseOrientation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, roving.Vertical, o)

	_, err = roving.ParseOrientation("diagonal")
	assert.True(t, errors.Is(err, roving.ErrInvalidOrientation))
}
