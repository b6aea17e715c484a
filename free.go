// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// Free destroys n and every descendant of n, running destructors on the
// way down and releasing each node's properties to the backend. It
// returns the Node that used to be n's next sibling (spec §4.4's "Free
// returns what used to follow n, so callers walking a sibling list with
// First/Next can continue safely").
//
// Freeing the Tree's sentinel root is not supported.
func Free(t *Tree, n *Node) *Node {
	if n == nil || n == t.root {
		return nil
	}

	next := n.next
	parent := parentNode(n)

	// DEL_CHILD fires exactly once, for n itself on its own parent (spec
	// §4.4 free() step 3); cascaded descendants do not get their own
	// DEL_CHILD, since the parent receiving it would itself already be
	// mid-destruction. parent is nil here only when n has already been
	// unlinked by an in-progress Free higher up the call stack (a
	// destructor re-entering Free on its own node).
	if parent != nil {
		notifyIfSubscribed(t, parent, EventDelChild, n)
	}
	unlinkChild(n)

	t.logDebug("freeing node", logAttrsForNode(n)...)
	delTree(t, n, n)
	return next
}

// delTree recursively tears down n: it guards against reentrancy (a
// destructor that calls Free on an ancestor already being torn down),
// fires n's own FREE notifiers BEFORE its children are destroyed (spec §3
// "the FREE notifier for an ancestor fires before its descendants are
// walked", §5 ordering guarantee — the opposite of bottom-up destructor
// execution, and easy to get backwards), and always dispatches FREE
// unconditionally, bypassing the live-notifier fast path that every other
// event goes through (spec §4.7's counter deliberately excludes
// exactly-FREE notifiers, or they would never fire).
//
// original is the node Free was originally called on; general (non
// destructor-sugar) FREE notifiers receive it as their info argument so an
// ancestor's notifier can tell which call initiated the cascade (spec
// §4.7's dispatch table, "the originating user pointer for cascade
// FREE").
func delTree(t *Tree, n, original *Node) {
	if n.destroying {
		return
	}
	n.destroying = true

	dispatch(n, EventFree, original)

	if t.nameIndex != nil {
		if name, _, ok := n.findName(); ok {
			t.nameIndex.remove(name, n)
		}
	}

	if c := n.findChildren(); c != nil {
		for c.first != nil {
			child := c.first
			unlinkChild(child)
			delTree(t, child, original)
		}
	}

	for _, p := range n.notifierProps() {
		if !p.notifier.mask.IsExactly(EventFree) {
			t.notifiers--
		}
	}
	// Every property record is released except propLiteral, which was
	// never allocated in the first place (spec §4.4 "del_tree frees every
	// property record that is not a literal and not LENGTH" — LENGTH here
	// is tracked as a real counted allocation rather than an embedded
	// header field, see AllocSlice/Dup, so it is released symmetrically).
	for _, p := range n.props {
		if p.kind == propLiteral {
			continue
		}
		t.backend.Release()
	}
	n.props = nil
	n.payload = nil
	t.backend.Release() // the node's own allocation, balancing newNode's Allocate()
}
