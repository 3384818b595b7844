// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewLeaf(t *testing.T) {
	f := NewForest(4)
	id := f.NewLeaf(DefaultStyle())
	require.Equal(t, NodeID(0), id)
	require.Equal(t, 1, f.Len())

	n := f.Node(id)
	require.True(t, n.Dirty)
	require.Nil(t, n.MainSizeCache)
	require.Nil(t, n.OtherCache)
	require.Nil(t, n.Measure)
	require.Equal(t, Layout{}, n.Layout)
	require.Empty(t, f.Children(id))
	require.Empty(t, f.Parents(id))
}

func TestNewLeafWithMeasure(t *testing.T) {
	f := NewForest(4)
	id := f.NewLeafWithMeasure(DefaultStyle(), FixedMeasure(Size[float32]{Width: 10, Height: 20}))
	n := f.Node(id)
	require.NotNil(t, n.Measure)
	got := n.Measure(UndefinedSize())
	require.Equal(t, Size[float32]{Width: 10, Height: 20}, got)
	require.Panics(t, func() { f.NewLeafWithMeasure(DefaultStyle(), nil) })
}

func TestNewWithChildren(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	c := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a, b})

	require.Equal(t, []NodeID{a, b}, f.Children(p))
	require.Equal(t, []NodeID{p}, f.Parents(a))
	require.Equal(t, []NodeID{p}, f.Parents(b))
	require.Empty(t, f.Parents(c))
	require.Empty(t, f.Children(c))
	f.checkWellFormed()
}

func TestAddChild(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	c := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a, b})

	// Simulate a completed layout so the dirty transition is observable.
	f.Node(p).Dirty = false

	f.AddChild(p, c)
	require.Equal(t, []NodeID{a, b, c}, f.Children(p))
	require.Equal(t, []NodeID{p}, f.Parents(c))
	require.True(t, f.Node(p).Dirty)
	f.checkWellFormed()
}

func TestAddChildDuplicateEdge(t *testing.T) {
	f := NewForest(4)
	a := f.NewLeaf(DefaultStyle())
	p := f.NewLeaf(DefaultStyle())

	f.AddChild(p, a)
	f.AddChild(p, a)
	require.Equal(t, []NodeID{a, a}, f.Children(p))
	require.Equal(t, []NodeID{p, p}, f.Parents(a))
	f.checkWellFormed()

	// Removal strikes one occurrence per call, keeping adjacency symmetric.
	f.RemoveChild(p, a)
	require.Equal(t, []NodeID{a}, f.Children(p))
	require.Equal(t, []NodeID{p}, f.Parents(a))
	f.checkWellFormed()
}

func TestRemoveChildAt(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	c := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a, b, c})

	removed := f.RemoveChildAt(p, 1)
	require.Equal(t, b, removed)
	// Sibling order is preserved.
	require.Equal(t, []NodeID{a, c}, f.Children(p))
	require.Empty(t, f.Parents(b))
	require.True(t, f.Node(p).Dirty)
	f.checkWellFormed()
}

func TestRemoveChildPreconditions(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a})

	require.Panics(t, func() { f.RemoveChildAt(p, 1) })
	require.Panics(t, func() { f.RemoveChildAt(p, -1) })
	require.Panics(t, func() { f.RemoveChild(a, p) })
	require.Panics(t, func() { f.RemoveChild(p, NodeID(99)) })

	// No partial mutation: the tree is unchanged.
	require.Equal(t, []NodeID{a}, f.Children(p))
	require.Equal(t, []NodeID{p}, f.Parents(a))
	f.checkWellFormed()
}

func TestSwapRemoveRelocates(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	c := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	f.AddChild(p, c)

	// Removing a non-last node relocates the node in the last slot (p) into
	// the freed identity.
	moved, ok := f.SwapRemove(a)
	require.True(t, ok)
	require.Equal(t, p, moved)
	require.Equal(t, 3, f.Len())

	// p is now node 0. Its remaining children kept their identities; the
	// struck child slot was backfilled from the end of the list.
	require.Equal(t, []NodeID{c, b}, f.Children(NodeID(0)))
	require.Equal(t, []NodeID{0}, f.Parents(b))
	require.Equal(t, []NodeID{0}, f.Parents(c))

	// No adjacency list references the retired identity.
	for id := NodeID(0); int(id) < f.Len(); id++ {
		require.NotContains(t, f.Children(id), moved)
		require.NotContains(t, f.Parents(id), moved)
	}
	f.checkWellFormed()
}

func TestSwapRemoveLast(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a})

	moved, ok := f.SwapRemove(p)
	require.False(t, ok)
	require.Equal(t, NodeID(0), moved)
	require.Equal(t, 1, f.Len())
	require.Empty(t, f.Parents(a))
	f.checkWellFormed()
}

func TestSwapRemoveToEmpty(t *testing.T) {
	f := NewForest(4)
	a := f.NewLeaf(DefaultStyle())
	_, ok := f.SwapRemove(a)
	require.False(t, ok)
	require.Equal(t, 0, f.Len())
	require.Panics(t, func() { f.Node(a) })
}

func TestSwapRemoveDuplicateBackrefs(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	p := f.NewLeaf(DefaultStyle())
	f.AddChild(p, a)
	f.AddChild(p, a)

	// Destroying the parent strikes every occurrence of it from the child's
	// parent list.
	moved, ok := f.SwapRemove(p)
	require.False(t, ok) // p was last
	require.Equal(t, NodeID(0), moved)
	require.Empty(t, f.Parents(a))
	f.checkWellFormed()
}

func TestClear(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	f.NewWithChildren(DefaultStyle(), []NodeID{a})

	f.Clear()
	require.Equal(t, 0, f.Len())

	// The forest is immediately reusable and identities restart at zero.
	id := f.NewLeaf(DefaultStyle())
	require.Equal(t, NodeID(0), id)
	f.checkWellFormed()
}

func TestSetStyleInvalidates(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a})
	completeLayout(f, a)
	completeLayout(f, p)

	style := DefaultStyle()
	style.FlexDirection = FlexDirectionColumn
	f.SetStyle(a, style)

	require.True(t, f.Node(a).Dirty)
	require.True(t, f.Node(p).Dirty)
	require.Equal(t, FlexDirectionColumn, f.Node(a).Style.FlexDirection)
	f.checkWellFormed()
}

func TestMetrics(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	completeLayout(f, a)
	completeLayout(f, b)
	completeLayout(f, p)
	f.MarkDirty(a)
	f.SwapRemove(b)

	want := Metrics{
		Nodes:       2,
		Edges:       1,
		DirtyNodes:  2,
		DirtyMarks:  1,
		Relocations: 1,
	}
	got := f.Metrics()
	if diff := pretty.Diff(want, got); diff != nil {
		t.Fatalf("metrics mismatch:\n%s", strings.Join(diff, "\n"))
	}
	require.Equal(t,
		"nodes: 2 (2 dirty), edges: 1, dirty-marks: 1, relocations: 1",
		got.String())
}

// TestRandomOps drives the forest with a random operation mix and verifies
// the structural invariants after every step.
func TestRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(20250117))
	f := NewForest(16)

	randomNode := func() NodeID {
		return NodeID(rng.Intn(f.Len()))
	}

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 3 || f.Len() == 0:
			f.NewLeaf(DefaultStyle())
		case op < 5:
			// Link two random nodes, skipping pairs where the edge would
			// close a cycle: parent -> child cycles iff child is already an
			// ancestor of parent. Duplicate edges and diamond sharing are
			// allowed.
			parent, child := randomNode(), randomNode()
			if parent != child && !isAncestor(f, parent, child) {
				f.AddChild(parent, child)
			}
		case op < 6:
			n := randomNode()
			if len(f.Children(n)) > 0 {
				f.RemoveChildAt(n, rng.Intn(len(f.Children(n))))
			}
		case op < 8:
			f.MarkDirty(randomNode())
		case op < 9:
			completeLayout(f, randomNode())
		default:
			f.SwapRemove(randomNode())
		}

		f.checkWellFormed()
		require.Equal(t, f.Len(), len(f.children))
		require.Equal(t, f.Len(), len(f.parents))
	}
}

// isAncestor reports whether anc can be reached from node by following
// parent links. node itself counts as reachable.
func isAncestor(f *Forest, node, anc NodeID) bool {
	seen := make(map[NodeID]struct{})
	stack := []NodeID{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == anc {
			return true
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		stack = append(stack, f.Parents(n)...)
	}
	return false
}

func TestIsAncestor(t *testing.T) {
	f := NewForest(16)
	c := f.NewLeaf(DefaultStyle())
	p := f.NewWithChildren(DefaultStyle(), []NodeID{c})

	// p is an ancestor of c, so linking p back in as a child of c would
	// close a cycle; the reverse direction is the harmless one.
	require.True(t, isAncestor(f, c, p))
	require.False(t, isAncestor(f, p, c))

	// A tall stack of diamonds on top of p. The walk terminates thanks to
	// the visited set; without it the number of upward paths doubles per
	// level.
	top := p
	for i := 0; i < 40; i++ {
		l := f.NewWithChildren(DefaultStyle(), []NodeID{top})
		r := f.NewWithChildren(DefaultStyle(), []NodeID{top})
		top = f.NewWithChildren(DefaultStyle(), []NodeID{l, r})
	}
	require.True(t, isAncestor(f, c, top))
	require.False(t, isAncestor(f, top, c))
}

// completeLayout simulates the write-back of an external layout pass.
func completeLayout(f *Forest, id NodeID) {
	n := f.Node(id)
	size := Size[float32]{Width: 100, Height: 100}
	n.Layout = Layout{Size: size}
	n.MainSizeCache = &Cache{NodeSize: DefinedSize(100, 100), PerformLayout: true, Result: size}
	n.OtherCache = &Cache{NodeSize: DefinedSize(100, 100), Result: size}
	n.Dirty = false
}
