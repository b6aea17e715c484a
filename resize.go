// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"unsafe"

	"github.com/gaissmai/arbor/taken"
	"github.com/pkg/errors"
)

// replaceNode substitutes replacement for old in old's current sibling
// list (and fixes up the owner back-pointer of any CHILDREN property
// replacement inherited), without touching replacement's own props or
// payload. Used by Resize/Expand, which always allocate a fresh *Node
// rather than mutating in place (spec §9 Design Notes, DESIGN.md Open
// Question 4): a real Go slice grow already relocates its backing array,
// so a port that mutated the old Node in place would never exercise the
// relocation-repair logic spec §4.6 describes. Any outstanding
// NotifierHandle obtained before a Resize/Expand still refers to the old
// *Node and is stale afterward; callers must re-add notifiers against the
// node returned through nodePtr.
func replaceNode(old, replacement *Node) {
	replacement.parentRef = old.parentRef
	replacement.prev = old.prev
	replacement.next = old.next

	if old.prev != nil {
		old.prev.next = replacement
	} else if c := old.parentRef; c != nil {
		c.first = replacement
	}
	if old.next != nil {
		old.next.prev = replacement
	} else if c := old.parentRef; c != nil {
		c.last = replacement
	}
	old.prev, old.next, old.parentRef = nil, nil, nil

	if c := replacement.findChildren(); c != nil {
		c.owner = replacement
	}
}

// relocate is the shared core of Resize and Expand: it builds a
// replacement Node carrying newPayload and old's property chain, splices
// it into old's place in the sibling list, fires MOVE then RESIZE (spec
// §4.6 "MOVE fires before RESIZE, since observers must see the new
// address before being told the new length"), and writes the replacement
// back through nodePtr.
func relocate(t *Tree, nodePtr **Node, newPayload any, newLen int) error {
	old := *nodePtr
	if old == nil || old == t.root {
		return t.fail(errors.New("arbor: cannot resize a nil or sentinel node"))
	}
	if !t.backend.CanAllocate() {
		return t.fail(errors.WithStack(ErrOutOfMemory))
	}

	replacement := &Node{tree: t, payload: newPayload, props: old.props}
	replaceNode(old, replacement)
	if _, ok := replacement.findLength(); ok {
		replacement.setLength(newLen)
	}
	old.props = nil

	t.backend.Allocate()
	t.backend.Release() // old node's allocation, superseded by replacement's

	notifyIfSubscribed(t, replacement, EventMove, old)
	notifyIfSubscribed(t, replacement, EventResize, newLen)

	*nodePtr = replacement
	t.maybeCheck(replacement)
	return nil
}

// Resize changes the element count of the array node at *nodePtr to
// newLen, preserving the first min(oldLen, newLen) elements and
// zero-valuing any newly grown slots (spec §4.6). *nodePtr is updated to
// the (possibly new) Node identity; the old *Node must not be used again.
func Resize[T any](t *Tree, nodePtr **Node, newLen int) error {
	old := *nodePtr
	oldSlice, ok := Slice[T](old)
	if !ok {
		return t.fail(errors.New("arbor: Resize target does not hold a slice"))
	}
	if err := checkCount[T](newLen); err != nil {
		return t.fail(err)
	}

	newSlice := make([]T, newLen)
	copy(newSlice, oldSlice)

	return relocate(t, nodePtr, newSlice, newLen)
}

// aliases reports whether src and dst share any backing array, the check
// Expand uses to reject self-referential growth (spec §4.6 "aliasing
// forbidden").
func aliases[T any](src, dst []T) bool {
	if len(src) == 0 || len(dst) == 0 {
		return false
	}
	srcStart := uintptr(unsafe.Pointer(&src[0]))
	srcEnd := srcStart + uintptr(len(src))*unsafe.Sizeof(src[0])
	dstStart := uintptr(unsafe.Pointer(&dst[0]))
	dstEnd := dstStart + uintptr(len(dst))*unsafe.Sizeof(dst[0])
	return srcStart < dstEnd && dstStart < srcEnd
}

// Expand appends src to the array node at *nodePtr (spec §4.6 "Expand is
// Resize(len+len(src)) followed by a copy of src into the new tail").
// Returns ErrAlias if src aliases the node's current backing array.
func Expand[T any](t *Tree, nodePtr **Node, src []T) error {
	old := *nodePtr
	oldSlice, ok := Slice[T](old)
	if !ok {
		return t.fail(errors.New("arbor: Expand target does not hold a slice"))
	}
	if aliases(oldSlice, src) {
		return t.fail(errors.WithStack(ErrAlias))
	}
	newLen := len(oldSlice) + len(src)
	if err := checkCount[T](newLen); err != nil {
		return t.fail(err)
	}

	newSlice := make([]T, newLen)
	copy(newSlice, oldSlice)
	copy(newSlice[len(oldSlice):], src)

	return relocate(t, nodePtr, newSlice, newLen)
}

// ExpandTaken is Expand for a source the caller has marked as taken (spec
// §6): it claims src before appending it, returning ErrTaken if some other
// caller already claimed it first (spec §6 "the operation either
// repurposes the taken buffer ... or, on failure, frees it" — here,
// claiming fails closed instead of silently reading a buffer someone else
// now owns).
func ExpandTaken[T any](t *Tree, nodePtr **Node, src *taken.Ptr[[]T]) error {
	value, ok := src.Take()
	if !ok {
		return t.fail(errors.WithStack(ErrTaken))
	}
	return Expand(t, nodePtr, value)
}
