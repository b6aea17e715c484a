// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package arbor provides a hierarchical ownership allocator: a library that
// organizes dynamically allocated values into a parent/child tree so that
// freeing a parent transitively frees every descendant.
//
// arbor targets long-lived programs where object lifetimes naturally form a
// containment hierarchy (parsers, servers, long-running pipelines) and
// ad-hoc destructor discipline is error-prone. A Tree holds a forest rooted
// at an implicit sentinel; every Node belongs to exactly one parent's
// children list, carries an optional name, an optional element count, and
// zero or more lifecycle notifiers.
//
// Thread-safety is not provided: operations on nodes reachable from a
// common Tree must be serialized by the caller.
package arbor
