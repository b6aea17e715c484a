// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// First returns root's first child, or the Tree's own first top-level
// node when root is nil (spec §4.9 "First/Next pair mirror tal_first_/
// tal_next_, a pre-order walk of root's subtree").
func First(t *Tree, root *Node) *Node {
	p := t.resolveParent(root)
	c := p.findChildren()
	if c == nil {
		return nil
	}
	return c.first
}

// Next returns the node that follows prev in a pre-order walk of root's
// subtree (root defaulting to the sentinel root), or nil once the walk is
// exhausted. prev must be root or a descendant of root.
//
// The ascent stops (returning nil) on reaching an ancestor already marked
// destroying, rather than continuing past it to a sibling further up —
// a destructor that walks the tree while its own subtree is being torn
// down must not be handed nodes from a parent that is itself mid-teardown
// (spec §4.8 "Respects the destroying flag on ancestors").
func Next(t *Tree, root, prev *Node) *Node {
	p := t.resolveParent(root)
	if prev == nil {
		return First(t, p)
	}

	if c := prev.findChildren(); c != nil && c.first != nil {
		return c.first
	}

	for cur := prev; cur != nil && cur != p; cur = parentNode(cur) {
		if cur != prev && cur.isDestroying() {
			return nil
		}
		if cur.next != nil {
			return cur.next
		}
	}
	return nil
}

// Parent returns n's parent node, or nil if n is a top-level node (one
// whose owner is the Tree's sentinel root), the sentinel root itself, or
// unlinked (spec §4.9 tal_parent: "or null if the owner is the sentinel
// root").
func Parent(t *Tree, n *Node) *Node {
	if n == nil || n == t.root {
		return nil
	}
	p := parentNode(n)
	if p == t.root {
		return nil
	}
	return p
}

// Count returns n's embedded element count (from AllocSlice/Dup/Resize
// with embedLength), or 0 if n has no LENGTH property (spec §4.3).
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	count, _ := n.findLength()
	return count
}
