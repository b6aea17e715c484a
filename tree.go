// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "log/slog"

// Tree is one ownership forest: a sentinel root plus the replaceable
// backend hooks and the tree-wide notifier counter spec §9 recommends be
// threaded as an instance value rather than held in package-level globals.
//
// A nil *Node parent anywhere in this package's API means "attach under
// this Tree's sentinel root", exactly mirroring spec §3's "Sentinel root".
type Tree struct {
	root *Node

	backend Backend
	errorFn ErrorFunc
	logger  *slog.Logger

	// notifiers counts live notifiers whose mask is not exactly
	// {EventFree}, the spec §4.7/§3 invariant-8 fast-path counter.
	notifiers int

	// debugCheck, when true, runs CheckFirst on the subtree of the node
	// just touched after Alloc/AllocSlice/Dup, SetName, Steal and
	// Resize/Expand (not after Free or notifier changes) and reports any
	// violation through errorFn. This is the
	// runtime re-expression of tal.c's TAL_DEBUG compile-time flag (spec
	// §4.1's debug_tal); a runtime bool is more idiomatic than a second
	// build of the package.
	debugCheck bool

	nameIndex *nameIndex
}

// TreeOption configures a Tree at construction time.
type TreeOption func(*Tree)

// WithBackend installs a custom Backend, the Go re-expression of
// tal_set_backend (spec §6).
func WithBackend(b Backend) TreeOption {
	return func(t *Tree) { t.backend = b }
}

// WithErrorFunc installs a custom error hook (spec §6, §7). The default
// panics.
func WithErrorFunc(fn ErrorFunc) TreeOption {
	return func(t *Tree) { t.errorFn = fn }
}

// WithLogger attaches a structured logger; nil (the default) disables all
// logging calls (see logging.go).
func WithLogger(l *slog.Logger) TreeOption {
	return func(t *Tree) { t.logger = l }
}

// WithDebugCheck enables or disables the automatic post-mutation integrity
// check (spec §4.1 debug_tal, §6 "must be a no-op in release builds" —
// here, disabled is the release-build equivalent and is the default).
func WithDebugCheck(enabled bool) TreeOption {
	return func(t *Tree) { t.debugCheck = enabled }
}

// WithNameIndex enables the best-effort name→Node lookup cache described
// in SPEC_FULL.md §3, capped at capacity entries.
func WithNameIndex(capacity int) TreeOption {
	return func(t *Tree) { t.nameIndex = newNameIndex(capacity) }
}

// NewTree constructs a Tree with its sentinel root already wired up,
// mirroring tal.c's statically-initialized null_parent (spec §3).
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		backend: defaultBackend{},
		errorFn: defaultErrorFunc,
	}
	t.root = &Node{tree: t}
	t.root.ensureChildren()

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the Tree's sentinel root. It is never nil, has no parent,
// and Free-ing it is not supported (mirrors tal.c, where null_parent is
// static storage, never heap-freed).
func (t *Tree) Root() *Node {
	return t.root
}

// resolveParent maps a nil parent argument to the sentinel root,
// mirroring to_tal_hdr_or_null in spec §4.1.
func (t *Tree) resolveParent(parent *Node) *Node {
	if parent == nil {
		return t.root
	}
	return parent
}

// fail routes an error through both the error hook and the ordinary Go
// error return, per spec §7's propagation policy.
func (t *Tree) fail(err error) error {
	if t.errorFn != nil {
		t.errorFn(err)
	}
	return err
}

// Shutdown explicitly tears down every node still attached to the
// sentinel root, the Go re-expression of tal.c's atexit(tal_cleanup) sweep
// (spec §9 Design Notes). Unlike tal_cleanup, which only unlinks nodes so
// leak detectors stay quiet at process exit, Shutdown actually frees each
// child (running destructors) because a Tree is normally embedded in a
// long-running program rather than torn down by the process exiting under
// it — an explicit call deserves real cleanup, not a cosmetic unlink.
func (t *Tree) Shutdown() {
	for c := First(t, nil); c != nil; c = First(t, nil) {
		Free(t, c)
	}
}

// maybeCheck runs the debug integrity check if enabled, reporting any
// violation through the error hook without returning it (callers of the
// mutating operation already got their own success/failure signal).
func (t *Tree) maybeCheck(n *Node) {
	if !t.debugCheck {
		return
	}
	if err := CheckFirst(t, n); err != nil {
		t.errorFn(err)
	}
}
