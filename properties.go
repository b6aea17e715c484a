// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// propKind discriminates the property union (spec §3 "Property chain").
// The C source distinguishes CHILDREN/NAME/NOTIFIER/LENGTH by a 32-bit tag
// plus a separate "literal" case detected by a zero-first-byte trick; the
// Go re-expression spec §9 Design Notes calls for is a direct discriminant,
// so literal names get their own kind instead of being a chain-terminal
// special case.
type propKind uint8

const (
	propChildren propKind = iota
	propName
	propLiteral
	propNotifier
	propLength
)

// property is one entry in a Node's property chain. Only the field(s)
// matching kind are meaningful.
type property struct {
	kind propKind

	children *childrenList  // propChildren
	name     string         // propName: heap-copied
	literal  string         // propLiteral: borrowed, caller-owned storage
	notifier *notifierEntry // propNotifier
	length   int            // propLength
}

// childrenList is the CHILDREN property: the head of a node's sibling
// list plus a back-pointer to the owning node (spec §3 invariant 3).
type childrenList struct {
	owner       *Node
	first, last *Node
}

// notifierEntry is the payload of a propNotifier property (spec §4.7).
type notifierEntry struct {
	mask       EventMask
	destructor bool
	fn         NotifyFunc
}

// pushProp prepends a property to n's chain, matching tal.c's
// init_property which links new properties at the head (LIFO). Dispatch
// and lookups therefore see the most recently added property first,
// which is what spec §5 means by "property-chain order (which is reverse
// insertion order)".
func (n *Node) pushProp(p *property) {
	n.props = append([]*property{p}, n.props...)
}

// removeProp deletes the first property matching pred, returning it (or
// nil if none matched).
func (n *Node) removeProp(pred func(*property) bool) *property {
	for i, p := range n.props {
		if pred(p) {
			n.props = append(n.props[:i], n.props[i+1:]...)
			return p
		}
	}
	return nil
}

// findChildren returns n's CHILDREN property, or nil if it has none yet.
func (n *Node) findChildren() *childrenList {
	for _, p := range n.props {
		if p.kind == propChildren {
			return p.children
		}
	}
	return nil
}

// ensureChildren returns n's CHILDREN property, creating it (with n as
// owner) if absent (spec §4.2 step 4).
func (n *Node) ensureChildren() *childrenList {
	if c := n.findChildren(); c != nil {
		return c
	}
	c := &childrenList{owner: n}
	n.pushProp(&property{kind: propChildren, children: c})
	return c
}

// findName returns the current name and whether it is a literal
// (borrowed) string, or ("", false, false) if n has no name.
func (n *Node) findName() (name string, literal bool, ok bool) {
	for _, p := range n.props {
		switch p.kind {
		case propName:
			return p.name, false, true
		case propLiteral:
			return p.literal, true, true
		}
	}
	return "", false, false
}

// removeName deletes any existing NAME/propLiteral entry.
func (n *Node) removeName() {
	n.removeProp(func(p *property) bool {
		return p.kind == propName || p.kind == propLiteral
	})
}

// findLength returns n's LENGTH property value and whether it has one.
func (n *Node) findLength() (int, bool) {
	for _, p := range n.props {
		if p.kind == propLength {
			return p.length, true
		}
	}
	return 0, false
}

// setLength creates or updates n's LENGTH property.
func (n *Node) setLength(count int) {
	for _, p := range n.props {
		if p.kind == propLength {
			p.length = count
			return
		}
	}
	n.pushProp(&property{kind: propLength, length: count})
}

// notifierProps returns every propNotifier entry, in chain order.
func (n *Node) notifierProps() []*property {
	var out []*property
	for _, p := range n.props {
		if p.kind == propNotifier {
			out = append(out, p)
		}
	}
	return out
}
