// Package focus models a host's focusable element tree in memory.
//
// Tree stands in for a document: elements have parents, some are roving
// items, and at most one holds focus. It implements roving.FocusTarget and
// answers the root-containment questions widgets need for their Registry.
package focus

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/keynav/internal/roving"
)

var (
	// ErrDuplicateID is returned when an element id is already present.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrUnknownParent is returned when the parent id is not present.
	ErrUnknownParent = errors.New("unknown parent element")
)

type node struct {
	parent    string
	navigable bool
	children  []string
}

// Tree is an in-memory element tree with a single focus slot.
// It is not safe for concurrent use.
type Tree struct {
	nodes  map[string]*node
	active string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*node)}
}

// Add inserts an element under parentID ("" for a top-level element).
// An empty id is replaced with a generated one. Add returns the id used.
func (t *Tree) Add(id, parentID string, navigable bool) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := t.nodes[id]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if parentID != "" {
		parent, ok := t.nodes[parentID]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownParent, parentID)
		}
		parent.children = append(parent.children, id)
	}
	t.nodes[id] = &node{parent: parentID, navigable: navigable}
	return id, nil
}

// Remove deletes id and its descendants. Focus inside the removed
// subtree is dropped.
func (t *Tree) Remove(id string) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	if p, ok := t.nodes[n.parent]; ok {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	t.removeSubtree(id)
}

func (t *Tree) removeSubtree(id string) {
	n := t.nodes[id]
	for _, c := range n.children {
		t.removeSubtree(c)
	}
	delete(t.nodes, id)
	if t.active == id {
		t.active = ""
	}
}

// Has reports whether id is in the tree.
func (t *Tree) Has(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Children returns the direct children of id in insertion order.
func (t *Tree) Children(id string) []string {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	out := make([]string, len(n.children))
	copy(out, n.children)
	return out
}

// Focus moves focus to id. It returns false when id is not in the tree.
func (t *Tree) Focus(id string) bool {
	if _, ok := t.nodes[id]; !ok {
		return false
	}
	t.active = id
	return true
}

// Blur clears focus.
func (t *Tree) Blur() {
	t.active = ""
}

// Active returns the focused element.
func (t *Tree) Active() (roving.Element, bool) {
	n, ok := t.nodes[t.active]
	if !ok {
		return roving.Element{}, false
	}
	return roving.Element{ID: t.active, Navigable: n.navigable}, true
}

// IsFocused reports whether id holds focus.
func (t *Tree) IsFocused(id string) bool {
	return id != "" && t.active == id
}

// Contains reports whether id is rootID or one of its descendants.
func (t *Tree) Contains(rootID, id string) bool {
	if _, ok := t.nodes[rootID]; !ok {
		return false
	}
	for cur := id; cur != ""; {
		if cur == rootID {
			return true
		}
		n, ok := t.nodes[cur]
		if !ok {
			return false
		}
		cur = n.parent
	}
	return false
}

var _ roving.FocusTarget = (*Tree)(nil)
