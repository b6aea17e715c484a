// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

// NotifyFunc is a general lifecycle notifier (spec §4.7). n is always the
// node the notifier is attached to; info is event-specific, as described
// in spec §4.7's dispatch table.
type NotifyFunc func(n *Node, ev Event, info any)

// NotifierHandle identifies a previously added notifier so it can be
// removed later. tal.c's tal_del_notifier_ finds the notifier to remove by
// comparing function pointers, which Go cannot do reliably for closures;
// returning an opaque handle from Add is the idiomatic Go re-expression
// (the same shape as context.CancelFunc/event-bus "unsubscribe token"
// patterns elsewhere in the ecosystem) and is recorded as a deliberate,
// documented adaptation in DESIGN.md.
type NotifierHandle struct {
	node *Node
	prop *property
}

// dispatch walks n's property chain, newest first, invoking every
// propNotifier whose mask contains ev (spec §4.7 "Dispatch iterates the
// property chain ... checking each NOTIFIER entry's mask").
func dispatch(n *Node, ev Event, info any) {
	for _, p := range n.props {
		if p.kind != propNotifier {
			continue
		}
		if p.notifier.mask.Has(ev) {
			p.notifier.fn(n, ev, info)
		}
	}
}

// notifyIfSubscribed dispatches ev on n only if the tree has at least one
// live non-exactly-FREE notifier anywhere, the fast path spec §4.7/§8
// describes ("dispatch fast-paths consult this counter to skip tree walks
// when no one is listening").
func notifyIfSubscribed(t *Tree, n *Node, ev Event, info any) {
	if t.notifiers > 0 {
		dispatch(n, ev, info)
	}
}

// addNotifier is the shared implementation behind AddNotifier and
// AddDestructor: it installs the notifier with an empty mask, fires
// ADD_NOTIFIER so the new notifier does not observe its own birth (spec
// §4.7), then assigns the real mask.
func addNotifier(t *Tree, n *Node, mask EventMask, fn NotifyFunc, destructor bool) (NotifierHandle, bool) {
	if !t.backend.CanAllocate() {
		t.fail(ErrOutOfMemory)
		return NotifierHandle{}, false
	}
	entry := &notifierEntry{fn: fn, destructor: destructor}
	prop := &property{kind: propNotifier, notifier: entry}
	n.pushProp(prop)
	t.backend.Allocate()

	notifyIfSubscribed(t, n, EventAddNotifier, fn)

	entry.mask = mask
	if !mask.IsExactly(EventFree) {
		t.notifiers++
	}
	return NotifierHandle{node: n, prop: prop}, true
}

// AddNotifier subscribes fn to every event in mask on n (spec §4.7).
func AddNotifier(t *Tree, n *Node, mask EventMask, fn NotifyFunc) (NotifierHandle, bool) {
	return addNotifier(t, n, mask, fn, false)
}

// AddDestructor subscribes the simpler one-argument destructor form to
// FREE only (spec §4.7 "destructor sugar").
func AddDestructor(t *Tree, n *Node, fn func(n *Node)) (NotifierHandle, bool) {
	wrapped := func(nd *Node, _ Event, _ any) { fn(nd) }
	return addNotifier(t, n, NewEventMask(EventFree), wrapped, true)
}

// DelNotifier removes a previously added notifier, reporting whether it
// was still present. Mirrors tal_del_notifier_'s unconditional DEL_NOTIFIER
// dispatch (note: unlike every other notification, tal.c fires this one
// without consulting the live-notifier counter first, and this port does
// the same). The notifier is unlinked before the dispatch, so only the
// node's remaining notifiers observe DEL_NOTIFIER; the removed one does
// not see its own removal.
func DelNotifier(t *Tree, h NotifierHandle) bool {
	if h.node == nil {
		return false
	}
	removed := h.node.removeProp(func(p *property) bool { return p == h.prop })
	if removed == nil {
		return false
	}
	t.backend.Release()
	dispatch(h.node, EventDelNotifier, removed.notifier.fn)
	if !removed.notifier.mask.IsExactly(EventFree) {
		t.notifiers--
	}
	return true
}

// DelDestructor removes a destructor added with AddDestructor. It is an
// alias for DelNotifier kept for symmetry with AddDestructor.
func DelDestructor(t *Tree, h NotifierHandle) bool {
	return DelNotifier(t, h)
}
