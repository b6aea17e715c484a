// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "github.com/pkg/errors"

// SetName attaches (or replaces) n's name, firing RENAME. literal selects
// the zero-allocation borrowed-string form described in spec §4.8; the
// caller must keep name alive for as long as n exists when literal is
// true.
func SetName(t *Tree, n *Node, name string, literal bool) error {
	if n == nil {
		return t.fail(errors.New("arbor: SetName on nil node"))
	}
	if !t.backend.CanAllocate() {
		return t.fail(errors.WithStack(ErrOutOfMemory))
	}

	old, oldLiteral, hadName := n.findName()
	hadAllocatedName := hadName && !oldLiteral
	n.removeName()
	if literal {
		// Literal names are borrowed, caller-owned storage (spec §4.8
		// "Literal name optimization"): no heap copy, so no Allocate. If the
		// name being replaced was heap-copied, its allocation is released.
		n.pushProp(&property{kind: propLiteral, literal: name})
		if hadAllocatedName {
			t.backend.Release()
		}
	} else {
		n.pushProp(&property{kind: propName, name: name})
		if !hadAllocatedName {
			t.backend.Allocate()
		}
	}

	if t.nameIndex != nil {
		if hadName {
			t.nameIndex.remove(old, n)
		}
		t.nameIndex.put(name, n)
	}

	notifyIfSubscribed(t, n, EventRename, old)
	t.maybeCheck(n)
	return nil
}

// Name returns n's current name, or "" if it has none.
func Name(n *Node) string {
	if n == nil {
		return ""
	}
	name, _, _ := n.findName()
	return name
}
