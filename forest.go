// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package strut provides the tree arena underlying a flexbox layout engine.
//
// The central type is the [Forest]: a struct-of-arrays store that owns the
// layout nodes, their parent/child adjacency and their cached measurement
// results, and that keeps all of that consistent as nodes are created, moved
// and destroyed. The flexbox sizing algorithm itself is not part of this
// package; it is an external consumer that reads styles and children through
// the forest and writes layouts and caches back.
//
// Nodes are named by dense integer identities ([NodeID]). Deletion compacts
// the arena by relocating the last node into the freed slot, so a deletion
// can change one other node's identity; [Forest.SwapRemove] reports the
// relocation and callers are responsible for remapping any identity they
// hold.
//
// A node may have more than one parent: the parent/child relation is a DAG,
// not a strict tree. It must remain acyclic; no operation checks for cycles.
//
// A Forest is not safe for concurrent use. Every operation can touch an
// unbounded set of nodes (adjacency rewriting, dirty propagation), so the
// whole forest is the unit of mutual exclusion for any embedding host.
package strut

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/strutkit/strut/internal/invariants"
)

// Forest is an arena of layout nodes. The three parallel sequences always
// have equal length; identity i names the same logical node in all three.
//
// The zero value is an empty forest ready for use; NewForest pre-reserves
// capacity.
type Forest struct {
	nodes    []NodeData
	children [][]NodeID
	parents  [][]NodeID

	// Scratch state for MarkDirty, reused across calls. dirtySeen[i] equals
	// dirtyEpoch iff node i was already visited during the current walk.
	dirtyStack []NodeID
	dirtySeen  []uint64
	dirtyEpoch uint64

	// Cumulative counters, reported by Metrics.
	dirtyMarks  uint64
	relocations uint64
}

// NewForest returns a forest that can store capacity nodes before its
// backing sequences need to grow.
func NewForest(capacity int) *Forest {
	return &Forest{
		nodes:    make([]NodeData, 0, capacity),
		children: make([][]NodeID, 0, capacity),
		parents:  make([][]NodeID, 0, capacity),
	}
}

// Len returns the number of live nodes.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Node returns the state of the given node. The pointer is valid until the
// next mutation of the forest. External layout algorithms write computed
// layouts and caches back through it; see the contract on [NodeData].
func (f *Forest) Node(id NodeID) *NodeData {
	f.checkNode(id)
	return &f.nodes[id]
}

// Children returns the node's children in flex item order. The returned
// slice is owned by the forest: it must not be modified and is valid until
// the next mutation.
func (f *Forest) Children(id NodeID) []NodeID {
	f.checkNode(id)
	return f.children[id]
}

// Parents returns the node's parents, in no significant order. The returned
// slice is owned by the forest: it must not be modified and is valid until
// the next mutation.
func (f *Forest) Parents(id NodeID) []NodeID {
	f.checkNode(id)
	return f.parents[id]
}

// NewLeaf creates a new unattached node with the given style and returns its
// identity. The node starts dirty with no cached results.
func (f *Forest) NewLeaf(style Style) NodeID {
	return f.push(newNodeData(style), nil)
}

// NewLeafWithMeasure creates a new unattached self-measuring leaf node.
func (f *Forest) NewLeafWithMeasure(style Style, measure MeasureFunc) NodeID {
	if measure == nil {
		panic(errors.AssertionFailedf("nil measure function"))
	}
	return f.push(newNodeDataWithMeasure(style, measure), nil)
}

// NewWithChildren creates a new unparented node with the given children
// already attached, and returns its identity. The new node is registered as
// a parent on every child before the node itself becomes visible, so the
// children never observe a half-linked state.
func (f *Forest) NewWithChildren(style Style, children []NodeID) NodeID {
	for _, child := range children {
		f.checkNode(child)
	}
	id := NodeID(len(f.nodes))
	for _, child := range children {
		f.parents[child] = append(f.parents[child], id)
	}
	return f.push(newNodeData(style), slices.Clone(children))
}

// push appends a record and its adjacency slots, returning the new identity.
func (f *Forest) push(data NodeData, children []NodeID) NodeID {
	id := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, data)
	f.children = append(f.children, children)
	f.parents = append(f.parents, make([]NodeID, 0, 1))
	if invariants.Enabled {
		f.checkWellFormed()
	}
	return id
}

// AddChild appends child to parent's child list and marks parent dirty.
//
// Adding the same child twice creates a duplicate edge. The forest tolerates
// duplicate edges (removal strikes one occurrence per call), but whether a
// duplicate is meaningful is up to the caller.
func (f *Forest) AddChild(parent, child NodeID) {
	f.checkNode(parent)
	f.checkNode(child)
	f.parents[child] = append(f.parents[child], parent)
	f.children[parent] = append(f.children[parent], child)
	f.MarkDirty(parent)
	if invariants.Enabled {
		f.checkWellFormed()
	}
}

// RemoveChild breaks the link between parent and the first occurrence of
// child in parent's child list, and marks parent dirty. The child node
// itself is not removed. Returns the child's identity.
//
// It is a caller contract violation if child is not linked to parent.
func (f *Forest) RemoveChild(parent, child NodeID) NodeID {
	f.checkNode(parent)
	f.checkNode(child)
	index := slices.Index(f.children[parent], child)
	if index < 0 {
		panic(errors.AssertionFailedf("node %d is not a child of node %d", child, parent))
	}
	return f.RemoveChildAt(parent, index)
}

// RemoveChildAt breaks the link between parent and its index'th child, and
// marks parent dirty. The child node itself is not removed. Returns the
// child's identity.
//
// Exactly one edge is removed: the entry at index in parent's child list,
// and one matching back-reference in the child's parent list. Sibling order
// of the remaining children is preserved.
func (f *Forest) RemoveChildAt(parent NodeID, index int) NodeID {
	f.checkNode(parent)
	if index < 0 || index >= len(f.children[parent]) {
		panic(errors.AssertionFailedf(
			"child index %d out of range (node %d has %d children)",
			index, parent, len(f.children[parent])))
	}
	child := f.children[parent][index]
	f.children[parent] = slices.Delete(f.children[parent], index, index+1)
	f.parents[child] = strikeOne(f.parents[child], parent)
	f.MarkDirty(parent)
	if invariants.Enabled {
		f.checkWellFormed()
	}
	return child
}

// SwapRemove removes the given node and all of its edges. The child nodes
// are not removed.
//
// To keep the arena dense, the node that occupied the last slot is relocated
// into the freed slot. If such a relocation happened, SwapRemove returns the
// relocated node's previous identity and true: that node is now named by the
// removed node's identity, and the caller must remap any identity it holds
// equal to the returned value. If the removed node was already last (or the
// forest became empty), there is nothing to remap and SwapRemove returns 0
// and false.
func (f *Forest) SwapRemove(node NodeID) (moved NodeID, ok bool) {
	f.checkNode(node)

	// Remove the node's record; the last record takes its slot.
	last := NodeID(len(f.nodes) - 1)
	f.nodes[node] = f.nodes[last]
	f.nodes[last] = NodeData{}
	f.nodes = f.nodes[:last]

	if len(f.nodes) == 0 {
		f.children = f.children[:0]
		f.parents = f.parents[:0]
		return 0, false
	}

	// Strike the node out of the parent lists of all its children and out of
	// the child lists of all its parents. All occurrences are struck: a
	// neighbor could have recorded the edge more than once.
	for _, child := range f.children[node] {
		f.parents[child] = strikeAll(f.parents[child], node)
	}
	for _, parent := range f.parents[node] {
		f.children[parent] = strikeAll(f.children[parent], node)
	}

	if last != node {
		// The node in the last slot is about to be renamed to the freed
		// identity. Rewrite every reference to it held by its neighbors.
		// Adjacency lists store raw identities with no back-index, so this is
		// an exhaustive scan of each neighbor's list.
		for _, child := range f.children[last] {
			rewrite(f.parents[child], last, node)
		}
		for _, parent := range f.parents[last] {
			rewrite(f.children[parent], last, node)
		}
	}

	f.children[node] = f.children[last]
	f.children[last] = nil
	f.children = f.children[:last]
	f.parents[node] = f.parents[last]
	f.parents[last] = nil
	f.parents = f.parents[:last]

	if invariants.Enabled {
		f.checkWellFormed()
	}
	if last == node {
		return 0, false
	}
	f.relocations++
	return last, true
}

// Clear removes all nodes and resets the forest. Capacity is retained.
func (f *Forest) Clear() {
	clear(f.nodes)
	f.nodes = f.nodes[:0]
	clear(f.children)
	f.children = f.children[:0]
	clear(f.parents)
	f.parents = f.parents[:0]
}

// SetStyle replaces the node's style and invalidates the node and all of its
// ancestors.
func (f *Forest) SetStyle(id NodeID, style Style) {
	f.checkNode(id)
	f.nodes[id].Style = style
	f.MarkDirty(id)
}

// SetMeasure replaces the node's measure function (nil removes it) and
// invalidates the node and all of its ancestors.
func (f *Forest) SetMeasure(id NodeID, measure MeasureFunc) {
	f.checkNode(id)
	f.nodes[id].Measure = measure
	f.MarkDirty(id)
}

// checkNode panics if id does not name a live node.
func (f *Forest) checkNode(id NodeID) {
	if id < 0 || int(id) >= len(f.nodes) {
		panic(errors.AssertionFailedf("invalid node %d (forest has %d nodes)", id, len(f.nodes)))
	}
}

// strikeOne removes the first occurrence of id from list, which must be
// present. Order of the remaining entries is not preserved.
func strikeOne(list []NodeID, id NodeID) []NodeID {
	for i := range list {
		if list[i] == id {
			list[i] = list[len(list)-1]
			return list[:len(list)-1]
		}
	}
	panic(errors.AssertionFailedf("adjacency corruption: %d missing from list %v", id, list))
}

// strikeAll removes every occurrence of id from list. Order of the remaining
// entries is not preserved.
func strikeAll(list []NodeID, id NodeID) []NodeID {
	for pos := 0; pos < len(list); {
		if list[pos] == id {
			list[pos] = list[len(list)-1]
			list = list[:len(list)-1]
		} else {
			pos++
		}
	}
	return list
}

// rewrite replaces every occurrence of from in list with to.
func rewrite(list []NodeID, from, to NodeID) {
	for i := range list {
		if list[i] == from {
			list[i] = to
		}
	}
}
