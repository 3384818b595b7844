// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// NodeID is the identity of a node within one [Forest]. Identities are dense
// indexes: at any point in time the live nodes of a forest of length n are
// exactly the identities [0, n).
//
// A NodeID is only meaningful relative to the forest that issued it, and only
// until the next compacting removal: [Forest.SwapRemove] may relocate the
// last node into the removed node's slot, in which case the relocated node's
// identity changes and the caller must remap any identity it holds.
type NodeID int

// String implements fmt.Stringer.
func (id NodeID) String() string { return fmt.Sprintf("%d", int(id)) }

// SafeFormat implements redact.SafeFormatter.
func (id NodeID) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d", redact.SafeInt(id))
}

// NodeData is the per-node layout state stored in a [Forest].
//
// Style, Layout and the cache slots are exported so that an external layout
// algorithm can read and write them directly. The contract for such writers:
// any mutation that invalidates previously computed sizes (changing Style,
// swapping Measure) must be followed by [Forest.MarkDirty] on the node, and a
// cache slot may only be populated on a node whose Dirty flag is being (or
// has been) cleared. The forest itself never populates caches; it only clears
// them.
type NodeData struct {
	// Style is the flexbox style the node is laid out with.
	Style Style
	// Measure, if non-nil, computes the node's intrinsic size. Only leaf
	// nodes that size themselves (text, images) carry a measure function.
	Measure MeasureFunc
	// Layout is the result of the most recent layout pass. It is not cleared
	// when the node is marked dirty; it holds the stale result until the next
	// pass overwrites it.
	Layout Layout
	// MainSizeCache memoizes the sizing pass keyed on the main-axis available
	// space.
	MainSizeCache *Cache
	// OtherCache memoizes the secondary sizing pass.
	OtherCache *Cache
	// Dirty reports that Layout and both caches are untrustworthy and must be
	// recomputed before use. Whenever either cache is populated, Dirty is
	// false.
	Dirty bool
}

// newNodeData returns the state for a freshly created node. A new node has
// never been measured, so it starts dirty with empty caches.
func newNodeData(style Style) NodeData {
	return NodeData{Style: style, Dirty: true}
}

// newNodeDataWithMeasure is newNodeData for a self-measuring leaf.
func newNodeDataWithMeasure(style Style, measure MeasureFunc) NodeData {
	return NodeData{Style: style, Measure: measure, Dirty: true}
}

// markDirty clears both cache slots and raises the dirty flag. Idempotent.
func (n *NodeData) markDirty() {
	n.MainSizeCache = nil
	n.OtherCache = nil
	n.Dirty = true
}
