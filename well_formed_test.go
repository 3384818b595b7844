// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAcyclic(t *testing.T) {
	f := NewForest(8)
	a := f.NewLeaf(DefaultStyle())
	b := f.NewLeaf(DefaultStyle())
	c := f.NewLeaf(DefaultStyle())
	f.AddChild(a, b)
	f.AddChild(b, c)

	// Diamond sharing is not a cycle.
	f.NewWithChildren(DefaultStyle(), []NodeID{b, c})
	require.NotPanics(t, func() { f.checkAcyclic() })

	// Close the loop c -> a behind the forest's back; AddChild performs no
	// cycle check, but going through it would trip the well-formedness hooks
	// of invariant builds before the state we want to test exists.
	f.children[c] = append(f.children[c], a)
	f.parents[a] = append(f.parents[a], c)
	require.Panics(t, func() { f.checkAcyclic() })
}
