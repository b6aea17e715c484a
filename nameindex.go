// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import lru "github.com/hashicorp/golang-lru/v2"

// nameIndex is a best-effort name->Node lookup cache (SPEC_FULL.md §3
// DOMAIN STACK). It is strictly an optimization: a miss or a stale hit
// (the cache is not invalidated on Steal, only on SetName/Free) is always
// followed by the caller ignoring the result, never trusted blindly, so a
// bounded LRU rather than an exact index is an acceptable, idiomatic
// trade-off (grounded on the LRU caches ClusterCockpit-cc-backend wires
// in front of its repositories for the same best-effort-lookup reason).
type nameIndex struct {
	cache *lru.Cache[string, *Node]
}

func newNameIndex(capacity int) *nameIndex {
	if capacity <= 0 {
		capacity = 256
	}
	c, err := lru.New[string, *Node](capacity)
	if err != nil {
		// Only returns an error for a non-positive size, which is guarded
		// above.
		panic(err)
	}
	return &nameIndex{cache: c}
}

func (idx *nameIndex) put(name string, n *Node) {
	idx.cache.Add(name, n)
}

func (idx *nameIndex) remove(name string, n *Node) {
	if v, ok := idx.cache.Peek(name); ok && v == n {
		idx.cache.Remove(name)
	}
}

// lookup returns the node last indexed under name, if still present and
// still actually named that (the caller must re-verify via Name before
// trusting the result).
func (idx *nameIndex) lookup(name string) (*Node, bool) {
	return idx.cache.Get(name)
}

// Find looks up a node by name using the Tree's name index, if one was
// enabled with WithNameIndex. It returns (nil, false) if no index is
// configured, the name was never indexed, or it has since been evicted.
// The result is re-validated against the node's current name before being
// returned, since Steal/SetName can move names around underneath a stale
// cache entry.
func Find(t *Tree, name string) (*Node, bool) {
	if t.nameIndex == nil {
		return nil, false
	}
	n, ok := t.nameIndex.lookup(name)
	if !ok {
		return nil, false
	}
	if cur, _, has := n.findName(); !has || cur != name {
		return nil, false
	}
	return n, true
}
