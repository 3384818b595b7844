// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDimensionResolve(t *testing.T) {
	require.Equal(t, Defined(10), Points(10).Resolve(Number{}))
	require.Equal(t, Defined(10), Points(10).Resolve(Defined(500)))
	require.Equal(t, Defined(50), Percent(0.5).Resolve(Defined(100)))
	require.Equal(t, Number{}, Percent(0.5).Resolve(Number{}))
	require.Equal(t, Number{}, Auto.Resolve(Defined(100)))
	require.Equal(t, Number{}, UndefinedDimension.Resolve(Defined(100)))
}

func TestDimensionIsDefined(t *testing.T) {
	require.True(t, Points(0).IsDefined())
	require.True(t, Percent(0).IsDefined())
	require.False(t, Auto.IsDefined())
	require.False(t, UndefinedDimension.IsDefined())
}

func TestDimensionString(t *testing.T) {
	require.Equal(t, "undef", UndefinedDimension.String())
	require.Equal(t, "auto", Auto.String())
	require.Equal(t, "12.5", Points(12.5).String())
	require.Equal(t, "50%", Percent(0.5).String())
}

func TestNumber(t *testing.T) {
	require.False(t, Number{}.IsDefined())
	require.True(t, Defined(0).IsDefined())
	require.Equal(t, float32(7), Defined(7).Value())
	require.Equal(t, float32(0), Number{}.Value())
	require.Equal(t, float32(3), Number{}.OrElse(3))
	require.Equal(t, float32(7), Defined(7).OrElse(3))
	require.Equal(t, "undef", Number{}.String())
	require.Equal(t, "7.5", Defined(7.5).String())
}

func TestStyleAxisHelpers(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: Points(10), Height: Points(20)}
	s.MinSize = Size[Dimension]{Width: Points(1), Height: Points(2)}
	s.MaxSize = Size[Dimension]{Width: Points(100), Height: Points(200)}
	s.Margin = Rect[Dimension]{Start: Points(1), End: Points(2), Top: Points(3), Bottom: Points(4)}

	for _, dir := range []FlexDirection{FlexDirectionRow, FlexDirectionRowReverse} {
		require.Equal(t, Points(1), s.MinMainSize(dir))
		require.Equal(t, Points(100), s.MaxMainSize(dir))
		require.Equal(t, Points(20), s.CrossSize(dir))
		require.Equal(t, Points(2), s.MinCrossSize(dir))
		require.Equal(t, Points(200), s.MaxCrossSize(dir))
		require.Equal(t, Points(1), s.MainMarginStart(dir))
		require.Equal(t, Points(2), s.MainMarginEnd(dir))
		require.Equal(t, Points(3), s.CrossMarginStart(dir))
		require.Equal(t, Points(4), s.CrossMarginEnd(dir))
	}
	for _, dir := range []FlexDirection{FlexDirectionColumn, FlexDirectionColumnReverse} {
		require.Equal(t, Points(2), s.MinMainSize(dir))
		require.Equal(t, Points(200), s.MaxMainSize(dir))
		require.Equal(t, Points(10), s.CrossSize(dir))
		require.Equal(t, Points(1), s.MinCrossSize(dir))
		require.Equal(t, Points(100), s.MaxCrossSize(dir))
		require.Equal(t, Points(3), s.MainMarginStart(dir))
		require.Equal(t, Points(4), s.MainMarginEnd(dir))
		require.Equal(t, Points(1), s.CrossMarginStart(dir))
		require.Equal(t, Points(2), s.CrossMarginEnd(dir))
	}
}

func TestResolveAlignSelf(t *testing.T) {
	parent := DefaultStyle()
	child := DefaultStyle()

	// An explicit AlignSelf wins regardless of the parent.
	child.AlignSelf = AlignSelfCenter
	require.Equal(t, AlignSelfCenter, child.ResolveAlignSelf(&parent))

	// Auto inherits the parent's AlignItems.
	child.AlignSelf = AlignSelfAuto
	for _, tc := range []struct {
		items AlignItems
		want  AlignSelf
	}{
		{AlignItemsFlexStart, AlignSelfFlexStart},
		{AlignItemsFlexEnd, AlignSelfFlexEnd},
		{AlignItemsCenter, AlignSelfCenter},
		{AlignItemsBaseline, AlignSelfBaseline},
		{AlignItemsStretch, AlignSelfStretch},
	} {
		parent.AlignItems = tc.items
		require.Equal(t, tc.want, child.ResolveAlignSelf(&parent))
	}
}

func TestFlexDirectionAxes(t *testing.T) {
	require.True(t, FlexDirectionRow.IsRow())
	require.True(t, FlexDirectionRowReverse.IsRow())
	require.False(t, FlexDirectionColumn.IsRow())
	require.True(t, FlexDirectionColumn.IsColumn())
	require.True(t, FlexDirectionColumnReverse.IsColumn())
	require.False(t, FlexDirectionRow.IsReverse())
	require.True(t, FlexDirectionRowReverse.IsReverse())
	require.True(t, FlexDirectionColumnReverse.IsReverse())
}

func TestStyleString(t *testing.T) {
	require.Equal(t, "default", DefaultStyle().String())

	s := DefaultStyle()
	s.FlexDirection = FlexDirectionColumn
	s.FlexGrow = 2
	s.Size.Width = Points(100)
	s.Size.Height = Percent(0.5)
	require.Equal(t, "dir=column w=100 h=50% grow=2", s.String())
}
