// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable tree of t to w, depth-indented, one line
// per node plus its name/length/notifier-count, the same style the
// integrity checker's violations reference by node description. Useful
// during development and debugging; not meant to be parsed.
func Dump(w io.Writer, t *Tree) error {
	return dumpRec(w, t.root, 0)
}

func dumpRec(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat(".", depth)

	label := "<root>"
	if depth > 0 {
		if name, literal, ok := n.findName(); ok {
			if literal {
				label = fmt.Sprintf("%q (literal)", name)
			} else {
				label = fmt.Sprintf("%q", name)
			}
		} else {
			label = fmt.Sprintf("<unnamed %p>", n)
		}
	}

	notifiers := len(n.notifierProps())
	length, hasLength := n.findLength()

	if _, err := fmt.Fprintf(w, "%s[node] %s", indent, label); err != nil {
		return err
	}
	if hasLength {
		if _, err := fmt.Fprintf(w, " len=%d", length); err != nil {
			return err
		}
	}
	if notifiers > 0 {
		if _, err := fmt.Fprintf(w, " notifiers=%d", notifiers); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	c := n.findChildren()
	if c == nil {
		return nil
	}
	for child := c.first; child != nil; child = child.next {
		if err := dumpRec(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
