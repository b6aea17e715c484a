// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "github.com/pkg/errors"

// Steal reparents n to newParent (nil meaning the sentinel root), unlinking
// it from its current parent first. If linking under newParent fails (the
// backend refuses to grow newParent's children list), Steal attempts to
// relink n back under its original parent; if that rollback also fails,
// Steal returns ErrReparentFailed and n is left unlinked from any parent
// (spec §4.5 "Failure modes" — this should never happen in practice, since
// the original parent already has a CHILDREN property and relinking never
// needs a new allocation, but it is treated as an abort-worthy condition
// rather than silently losing track of n).
func Steal(t *Tree, newParent, n *Node) error {
	if n == nil || n == t.root {
		return nil
	}

	newParent = t.resolveParent(newParent)
	oldParent := parentNode(n)
	if oldParent == newParent {
		return nil
	}

	unlinkChild(n)

	if !linkChild(newParent, n) {
		if oldParent != nil && linkChild(oldParent, n) {
			t.logWarn("steal failed, rolled back to original parent", logAttrsForNode(n)...)
			return t.fail(errors.WithStack(ErrOutOfMemory))
		}
		t.logWarn("steal failed, rollback also failed", logAttrsForNode(n)...)
		return t.fail(errors.WithStack(ErrReparentFailed))
	}

	if oldParent != nil {
		notifyIfSubscribed(t, oldParent, EventDelChild, n)
	}
	notifyIfSubscribed(t, newParent, EventAddChild, n)
	notifyIfSubscribed(t, n, EventSteal, newParent)

	t.maybeCheck(n)
	return nil
}
