// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

// Layout is the final result of laying out a single node: where it is and how
// big it is. It is produced by an external layout algorithm and stored on the
// node's [NodeData].
type Layout struct {
	// Location is the top-left corner of the node, relative to its parent.
	Location Point[float32]
	// Size is the computed width and height of the node.
	Size Size[float32]
}

// Cache stores the result of one sizing pass for a node under a particular
// set of constraints. Each node carries two independent cache slots (see
// [NodeData]); the slots are opaque to the forest, which only guarantees that
// they are cleared together whenever the node is marked dirty.
type Cache struct {
	// NodeSize is the known-size constraint the pass was run with.
	NodeSize Size[Number]
	// ParentSize is the parent's size constraint the pass was run with.
	ParentSize Size[Number]
	// PerformLayout records whether the pass computed a full layout or only a
	// size.
	PerformLayout bool
	// Result is the size the pass produced.
	Result Size[float32]
}

// Matches reports whether the cached result can be reused for a pass with the
// given constraints.
func (c *Cache) Matches(nodeSize, parentSize Size[Number], performLayout bool) bool {
	if c == nil {
		return false
	}
	if performLayout && !c.PerformLayout {
		return false
	}
	return c.NodeSize == nodeSize && c.ParentSize == parentSize
}

// MeasureFunc computes the intrinsic size of a leaf node (text, an image)
// under the given constraints. An undefined extent means the node may choose
// its own size on that axis.
//
// The function must be synchronous and must not call back into the Forest
// that owns the node.
type MeasureFunc func(constraint Size[Number]) Size[float32]

// FixedMeasure returns a MeasureFunc that always reports the given size,
// clamped to the defined constraint extents.
func FixedMeasure(size Size[float32]) MeasureFunc {
	return func(constraint Size[Number]) Size[float32] {
		return Size[float32]{
			Width:  constraint.Width.OrElse(size.Width),
			Height: constraint.Height.OrElse(size.Height),
		}
	}
}
