// Package roving implements roving-focus navigation for composite
// widgets such as tab lists and toggle groups.
//
// A Controller owns which item of one widget is active. Arrow keys along
// the widget's orientation move to the next or previous item, wrapping at
// both ends; Home and End jump to the first and last item; Enter and Space
// move focus into the active item's content region without changing the
// active item.
//
//	Key                     Horizontal     Vertical
//	ArrowRight / ArrowLeft  next / prev    ignored
//	ArrowDown / ArrowUp     ignored        next / prev
//	Home / End              first / last   first / last
//	Enter / Space           content        content
//
// The controller never queries a UI tree directly. Items come from a
// Registry that is consulted on every key press, and focus is read and
// written through a FocusTarget supplied by the host.
package roving
