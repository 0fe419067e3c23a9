// Package ordtree provides an in-memory ordered index over externally owned
// records: a red-black tree of opaque handles ordered by caller-supplied
// comparators, with node storage pooled in a per-tree arena that recycles
// freed slots in O(1) and can shed memory through LZ4 hibernation.
//
// The tree never inspects a handle except by passing it to a comparator.
// An optional key comparator enables lookups by an external key value
// without constructing a full element.
//
// Trees perform no internal synchronization and are not safe for concurrent
// use; callers must serialize access, including iteration.
package ordtree
