// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "sync/atomic"

// Backend is the replaceable allocator-hook quartet from spec §6. Go's
// garbage collector means Allocate/Release rarely need to do anything
// beyond bookkeeping, but the interface exists so a Tree can be handed an
// instrumented backend (for tests) or one that pools node storage.
//
// Allocate and Release carry no size: each call accounts for exactly one
// allocation record.
type Backend interface {
	// Allocate is called once per allocation record created under this
	// tree: each new Node, each non-literal property (heap name, children
	// list, notifier, length) and each replacement Node made by
	// Resize/Expand.
	Allocate()
	// Release is called once per allocation record released under this
	// tree, including the Node superseded by Resize/Expand.
	Release()
	// CanAllocate is consulted before every allocation (new Node,
	// property, or resize). Returning false simulates out-of-memory,
	// exercising the OOM failure paths of spec §4.2, §4.5 and §4.6
	// (including Steal's rollback-or-abort logic) without needing to
	// actually exhaust memory.
	CanAllocate() bool
}

// defaultBackend is a no-op Backend; Go's allocator and GC do the real
// work, so there is nothing to hook by default and allocation never
// refuses.
type defaultBackend struct{}

func (defaultBackend) Allocate()         {}
func (defaultBackend) Release()          {}
func (defaultBackend) CanAllocate() bool { return true }

// CountingBackend is an instrumented Backend that counts allocations and
// releases. It grounds the "Notifier-count fast path" testable property in
// spec §8 ("observable via a counting backend allocator") and is also
// useful in application tests that want to assert a tree released
// everything it allocated.
type CountingBackend struct {
	allocated atomic.Int64
	released  atomic.Int64
	// Refuse, if set, makes CanAllocate return false — simulating an
	// out-of-memory backend for failure-path tests.
	Refuse bool
}

func (c *CountingBackend) Allocate()         { c.allocated.Add(1) }
func (c *CountingBackend) Release()          { c.released.Add(1) }
func (c *CountingBackend) CanAllocate() bool { return !c.Refuse }

// Stats returns the number of Allocate/Release calls observed so far.
func (c *CountingBackend) Stats() (allocated, released int64) {
	return c.allocated.Load(), c.released.Load()
}

// Live reports how many allocations have not yet been released.
func (c *CountingBackend) Live() int64 {
	return c.allocated.Load() - c.released.Load()
}

// ErrorFunc is the Go re-expression of the C errorfn hook (spec §6, §7).
// The default, installed by NewTree, panics with the error so that a Tree
// behaves like tal's default aborting error handler unless the caller
// installs a gentler one. Operations always also return their own error,
// so a non-panicking hook is safe to combine with the usual Go error
// checking discipline (spec §7 propagation policy).
type ErrorFunc func(err error)

func defaultErrorFunc(err error) {
	panic(err)
}
