// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// linkChild attaches child to parent's children list, creating the
// CHILDREN property if this is parent's first child (spec §4.2 step 4).
// It reports false if the backend refuses the allocation, leaving both
// parent and child untouched (spec §4.2 "Failure modes").
func linkChild(parent, child *Node) bool {
	c := parent.findChildren()
	if c == nil {
		if !parent.tree.backend.CanAllocate() {
			return false
		}
		c = parent.ensureChildren()
		parent.tree.backend.Allocate()
	}

	child.next = c.first
	child.prev = nil
	if c.first != nil {
		c.first.prev = child
	} else {
		c.last = child
	}
	c.first = child
	child.parentRef = c
	return true
}

// unlinkChild removes child from whatever sibling list it currently
// belongs to and clears its parentRef. It is a no-op if child has no
// parentRef (never linked, or already unlinked).
func unlinkChild(child *Node) {
	c := child.parentRef
	if c == nil {
		return
	}
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		c.first = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		c.last = child.prev
	}
	child.prev, child.next, child.parentRef = nil, nil, nil
}

// parentNode returns the Node that owns child's current children-list
// membership, i.e. child's parent (spec: "ignore_destroying_bit(t->parent_child)->parent").
func parentNode(child *Node) *Node {
	if child.parentRef == nil {
		return nil
	}
	return child.parentRef.owner
}
