// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "errors"

// Sentinel errors, matching the error taxonomy of spec §7. Use errors.Is to
// test for these across the pkg/errors wrapping applied at call sites.
var (
	// ErrSizeOverflow is returned when a count/element-size pair would
	// overflow the addressable size of an allocation.
	ErrSizeOverflow = errors.New("arbor: allocation size overflow")

	// ErrReparentFailed is returned by Steal when neither the new parent
	// nor the original parent would accept the node. It should never
	// actually occur: the original parent is guaranteed to already own a
	// children property, which is why Steal treats this as an abort
	// condition rather than an ordinary error (spec §7).
	ErrReparentFailed = errors.New("arbor: reparent rollback failed")

	// ErrCorrupt is the umbrella error wrapped with a specific reason by
	// Check/CheckFirst when an invariant from spec §3 is violated.
	ErrCorrupt = errors.New("arbor: tree invariant violated")

	// ErrNoLength reports a node that has no embedded length property.
	// Resize and Expand do not return it: they work from the slice's own
	// length whether or not the node carries a LENGTH property.
	ErrNoLength = errors.New("arbor: node has no length property")

	// ErrAlias is returned by Expand when the source slice aliases the
	// buffer being grown (spec §4.6 "aliasing forbidden").
	ErrAlias = errors.New("arbor: expand source aliases destination")

	// ErrTaken is returned when a taken.Ptr has already been consumed.
	ErrTaken = errors.New("arbor: taken pointer already consumed")

	// ErrOutOfMemory is reported through the error hook (and wrapped into
	// the returned error where an operation has one to return) whenever
	// the Backend refuses an allocation (spec §7 "Out of memory").
	ErrOutOfMemory = errors.New("arbor: allocation failed")
)
