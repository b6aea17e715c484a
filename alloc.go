// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"unsafe"

	"github.com/gaissmai/arbor/taken"
	"github.com/pkg/errors"
)

// AllocOption configures the optional name a node is given at allocation
// time (spec §4.2 step 3's "label", §4.8 "literal name optimization").
type AllocOption func(*allocConfig)

type allocConfig struct {
	name    string
	literal bool
	hasName bool
}

// WithName gives the new node a heap-copied name (spec §4.8 set_name with
// literal=false).
func WithName(name string) AllocOption {
	return func(c *allocConfig) { c.name, c.literal, c.hasName = name, false, true }
}

// WithLiteralName gives the new node a borrowed name: the caller must
// guarantee name outlives the node (spec §4.8 "Literal name optimization").
// This is the zero-allocation path tested by spec §8's
// "Literal-name zero-alloc" property.
func WithLiteralName(name string) AllocOption {
	return func(c *allocConfig) { c.name, c.literal, c.hasName = name, true, true }
}

func resolveAllocOptions(opts []AllocOption) allocConfig {
	var c allocConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// newNode constructs and links a freshly allocated child under parent,
// applying name options and firing ADD_CHILD. It is the shared core of
// Alloc and AllocSlice/Dup (spec §4.2).
func newNode(t *Tree, parent *Node, payload any, cfg allocConfig) *Node {
	p := t.resolveParent(parent)

	if !t.backend.CanAllocate() {
		t.fail(ErrOutOfMemory)
		return nil
	}

	child := &Node{tree: t, payload: payload}
	if cfg.hasName {
		if cfg.literal {
			// Literal names are borrowed, caller-owned storage (spec §4.8
			// "Literal name optimization"): no heap copy, so no Allocate.
			child.pushProp(&property{kind: propLiteral, literal: cfg.name})
		} else {
			child.pushProp(&property{kind: propName, name: cfg.name})
			t.backend.Allocate()
		}
	}
	t.backend.Allocate()

	if !linkChild(p, child) {
		if cfg.hasName && !cfg.literal {
			t.backend.Release()
		}
		t.backend.Release()
		t.fail(ErrOutOfMemory)
		return nil
	}

	notifyIfSubscribed(t, p, EventAddChild, child)
	if t.nameIndex != nil && cfg.hasName {
		t.nameIndex.put(cfg.name, child)
	}
	t.maybeCheck(child)
	return child
}

// Alloc creates a new node holding value, owned by parent (or the
// sentinel root, if parent is nil). Mirrors tal_alloc_ (spec §4.2).
func Alloc[T any](t *Tree, parent *Node, value T, opts ...AllocOption) *Node {
	return newNode(t, parent, value, resolveAllocOptions(opts))
}

// checkCount replicates tal.c's adjust_size multiplicative/additive
// overflow guard (spec §4.3) using unsafe.Sizeof to recover the per-element
// size Go's type system otherwise hides. Returns ErrSizeOverflow if count
// is negative or if count*sizeof(T) (plus the usual small header/trailer
// slack) would overflow a uintptr.
func checkCount[T any](count int) error {
	if count < 0 {
		return errors.WithStack(ErrSizeOverflow)
	}
	if count == 0 {
		return nil
	}
	var zero T
	elemSize := uintptr(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return nil
	}
	total := elemSize * uintptr(count)
	if total/elemSize != uintptr(count) {
		return errors.WithStack(ErrSizeOverflow)
	}
	const slack = 64 // headroom for a hypothetical embedded trailer, spec §4.3 step 2
	if total > total+slack {
		return errors.WithStack(ErrSizeOverflow)
	}
	return nil
}

// AllocSlice creates a new node holding a copy of values, owned by parent.
// When embedLength is true the node also carries a LENGTH property, so
// Count reports len(values), and the new element count after a
// Resize/Expand (spec §4.3).
func AllocSlice[T any](t *Tree, parent *Node, values []T, embedLength bool, opts ...AllocOption) *Node {
	if err := checkCount[T](len(values)); err != nil {
		t.fail(err)
		return nil
	}

	cp := make([]T, len(values))
	copy(cp, values)

	n := newNode(t, parent, cp, resolveAllocOptions(opts))
	if n == nil {
		return nil
	}
	if embedLength {
		if !t.backend.CanAllocate() {
			// Roll back the node we just linked in, mirroring tal_alloc_arr_'s
			// "fail before any observable state change" guarantee.
			unlinkChild(n)
			t.backend.Release()
			t.fail(ErrOutOfMemory)
			return nil
		}
		n.setLength(len(values))
		t.backend.Allocate()
	}
	return n
}

// Dup allocates a new array node of len(src)+extra elements under parent,
// copying src into the first len(src) slots (spec §9 "supplemented
// feature", grounded on tal.c's tal_dup_, which the distilled spec.md
// dropped).
func Dup[T any](t *Tree, parent *Node, src []T, extra int, embedLength bool, opts ...AllocOption) *Node {
	if extra < 0 {
		t.fail(errors.WithStack(ErrSizeOverflow))
		return nil
	}
	if err := checkCount[T](len(src) + extra); err != nil {
		t.fail(err)
		return nil
	}
	buf := make([]T, len(src)+extra)
	copy(buf, src)
	n := newNode(t, parent, buf, resolveAllocOptions(opts))
	if n == nil {
		return nil
	}
	if embedLength {
		if !t.backend.CanAllocate() {
			// Same rollback as AllocSlice.
			unlinkChild(n)
			t.backend.Release()
			t.fail(ErrOutOfMemory)
			return nil
		}
		n.setLength(len(buf))
		t.backend.Allocate()
	}
	return n
}

// DupTaken is Dup for a source the caller has marked as taken (spec §6
// "Taken-pointer collaborator"): it claims src and, on success, duplicates
// the claimed slice exactly as Dup would. Returns nil with ErrTaken (via
// the error hook) if src was already claimed by someone else. Unlike
// tal.c's version, the claimed buffer is still copied rather than adopted
// in place — Go slices have no equivalent of realloc-in-place ownership
// transfer, so "repurposing the taken buffer" here means "the only party
// allowed to read it again", not "reused without a copy".
func DupTaken[T any](t *Tree, parent *Node, src *taken.Ptr[[]T], extra int, embedLength bool, opts ...AllocOption) *Node {
	value, ok := src.Take()
	if !ok {
		t.fail(errors.WithStack(ErrTaken))
		return nil
	}
	return Dup(t, parent, value, extra, embedLength, opts...)
}
