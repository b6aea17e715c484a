// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Check walks every node reachable from root (the sentinel root if nil)
// and verifies the invariants of spec §3, collecting every violation
// found rather than stopping at the first one. It returns nil if the
// subtree is sound.
func Check(t *Tree, root *Node) error {
	var errs *multierror.Error
	walkCheck(t, t.resolveParent(root), &errs)
	return errs.ErrorOrNil()
}

// CheckFirst is like Check but returns only the first violation found, the
// form used by Tree's debug-mode post-mutation hook (spec §4.1 debug_tal,
// which only ever reports the first problem it finds). It walks the same
// nodes as Check; the walk is not cut short at the first violation.
func CheckFirst(t *Tree, root *Node) error {
	var errs *multierror.Error
	walkCheck(t, t.resolveParent(root), &errs)
	if errs == nil || len(errs.Errors) == 0 {
		return nil
	}
	return errs.Errors[0]
}

func walkCheck(t *Tree, n *Node, errs **multierror.Error) {
	c := n.findChildren()
	if c == nil {
		return
	}

	var prev *Node
	for child := c.first; child != nil; child = child.next {
		if child.tree != t {
			*errs = multierror.Append(*errs, errors.Wrapf(ErrCorrupt,
				"node %s: belongs to a different Tree", describeNode(child)))
		}
		if child.parentRef != c {
			*errs = multierror.Append(*errs, errors.Wrapf(ErrCorrupt,
				"node %s: parent_child_ref does not point back at owner's children list", describeNode(child)))
		}
		if child.prev != prev {
			*errs = multierror.Append(*errs, errors.Wrapf(ErrCorrupt,
				"node %s: sibling back-link broken", describeNode(child)))
		}
		if child.next == nil && c.last != child {
			*errs = multierror.Append(*errs, errors.Wrapf(ErrCorrupt,
				"node %s: children list tail pointer wrong", describeNode(child)))
		}
		if cc := child.findChildren(); cc != nil && cc.owner != child {
			*errs = multierror.Append(*errs, errors.Wrapf(ErrCorrupt,
				"node %s: CHILDREN property owner mismatch", describeNode(child)))
		}
		prev = child
		walkCheck(t, child, errs)
	}
}

func describeNode(n *Node) string {
	if name, _, ok := n.findName(); ok {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("<unnamed %p>", n)
}
