// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// Node is the public handle for one allocation: a value owned by a Tree,
// linked into its parent's sibling list, carrying an optional name, an
// optional element count, and zero or more notifiers.
//
// In the C source this spec distills, the handle is a raw pointer computed
// by pointer arithmetic from a header (tal_hdr). Go values have stable
// identity and no user-visible arithmetic is needed, so Node plays both
// roles at once: it is both the header (spec §3 "allocation node") and the
// user-visible pointer (spec §4.1), and that component collapses entirely
// in this port (see DESIGN.md, Open Question 1).
type Node struct {
	tree *Tree

	// sibling_link (spec §3): intrusive doubly-linked list membership in
	// the parent's children list.
	prev, next *Node

	// parent_child_ref (spec §3): reference to the parent's CHILDREN
	// property, not to the parent header directly (invariant 2).
	parentRef *childrenList

	// destroying flag (spec §3 invariant 6, §9 state machine). Expressed
	// as an explicit bool per spec §9 Design Notes rather than a stolen
	// pointer bit.
	destroying bool

	// properties (spec §3): the tagged property chain, newest first.
	props []*property

	// payload carries the user value. Alloc stores a T directly;
	// AllocSlice/Dup/Expand store a []T. Value/Slice perform the typed
	// read.
	payload any
}

// Tree returns the Tree that owns n.
func (n *Node) Tree() *Tree {
	return n.tree
}

// isDestroying reports the destroying flag; a nil n reports false. The
// sentinel root's flag is never set.
func (n *Node) isDestroying() bool {
	return n != nil && n.destroying
}

// Value reads the payload of a node allocated with Alloc[T]. The second
// return is false if n is nil or the payload is not a T (for example, n
// was allocated with AllocSlice and holds a []T instead).
func Value[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	v, ok := n.payload.(T)
	return v, ok
}

// Slice reads the payload of a node allocated with AllocSlice[T] or
// Dup[T]. The second return is false if n is nil or the payload is not a
// []T.
func Slice[T any](n *Node) ([]T, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n.payload.([]T)
	return v, ok
}
