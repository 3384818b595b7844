// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import "golang.org/x/exp/constraints"

// Scalar is a constraint that permits any numeric type usable as a geometric
// measurement.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Rect holds a value for each of the four sides of an axis-aligned UI
// rectangle.
//
// Depending on context a side holds either the coordinate of that edge or an
// inset (padding, margin, border) applied to that side. Start and End are
// relative to the text direction: in LTR text Start is the left edge.
type Rect[T any] struct {
	Start  T
	End    T
	Top    T
	Bottom T
}

// Size is the width and height of a [Rect].
type Size[T any] struct {
	Width  T
	Height T
}

// Point is a 2-dimensional coordinate. When used with a [Rect], it represents
// the corner the rect's sides are measured from.
type Point[T any] struct {
	X T
	Y T
}

// MapRect applies f to all four sides of the rect.
func MapRect[T, R any](r Rect[T], f func(T) R) Rect[R] {
	return Rect[R]{Start: f(r.Start), End: f(r.End), Top: f(r.Top), Bottom: f(r.Bottom)}
}

// MapSize applies f to both the width and the height.
func MapSize[T, R any](s Size[T], f func(T) R) Size[R] {
	return Size[R]{Width: f(s.Width), Height: f(s.Height)}
}

// HorizontalSum returns Start + End.
//
// This is typically used when computing total padding; it is not the width of
// the rectangle.
func HorizontalSum[T Scalar](r Rect[T]) T {
	return r.Start + r.End
}

// VerticalSum returns Top + Bottom.
func VerticalSum[T Scalar](r Rect[T]) T {
	return r.Top + r.Bottom
}

// MainAxisSum returns the sum of the two sides of r on the main layout axis
// of dir.
func MainAxisSum[T Scalar](r Rect[T], dir FlexDirection) T {
	if dir.IsRow() {
		return HorizontalSum(r)
	}
	return VerticalSum(r)
}

// CrossAxisSum returns the sum of the two sides of r on the cross layout axis
// of dir.
func CrossAxisSum[T Scalar](r Rect[T], dir FlexDirection) T {
	if dir.IsRow() {
		return VerticalSum(r)
	}
	return HorizontalSum(r)
}

// MainStart returns the Start or Top side, from the perspective of the main
// layout axis.
func (r Rect[T]) MainStart(dir FlexDirection) T {
	if dir.IsRow() {
		return r.Start
	}
	return r.Top
}

// MainEnd returns the End or Bottom side, from the perspective of the main
// layout axis.
func (r Rect[T]) MainEnd(dir FlexDirection) T {
	if dir.IsRow() {
		return r.End
	}
	return r.Bottom
}

// CrossStart returns the Top or Start side, from the perspective of the cross
// layout axis.
func (r Rect[T]) CrossStart(dir FlexDirection) T {
	if dir.IsRow() {
		return r.Top
	}
	return r.Start
}

// CrossEnd returns the Bottom or End side, from the perspective of the cross
// layout axis.
func (r Rect[T]) CrossEnd(dir FlexDirection) T {
	if dir.IsRow() {
		return r.Bottom
	}
	return r.End
}

// Main returns the extent of the main layout axis of dir.
func (s Size[T]) Main(dir FlexDirection) T {
	if dir.IsRow() {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent of the cross layout axis of dir.
func (s Size[T]) Cross(dir FlexDirection) T {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}

// SetMain sets the extent of the main layout axis of dir.
func (s *Size[T]) SetMain(dir FlexDirection, value T) {
	if dir.IsRow() {
		s.Width = value
	} else {
		s.Height = value
	}
}

// SetCross sets the extent of the cross layout axis of dir.
func (s *Size[T]) SetCross(dir FlexDirection, value T) {
	if dir.IsRow() {
		s.Height = value
	} else {
		s.Width = value
	}
}

// UndefinedSize returns a constraint size with both extents undefined.
func UndefinedSize() Size[Number] {
	return Size[Number]{}
}

// DefinedSize returns a constraint size with both extents defined.
func DefinedSize(width, height float32) Size[Number] {
	return Size[Number]{Width: Defined(width), Height: Defined(height)}
}

// PointsSize returns a Size with both dimensions given in points.
func PointsSize(width, height float32) Size[Dimension] {
	return Size[Dimension]{Width: Points(width), Height: Points(height)}
}

// PercentSize returns a Size with both dimensions given as fractions of the
// parent size.
func PercentSize(width, height float32) Size[Dimension] {
	return Size[Dimension]{Width: Percent(width), Height: Percent(height)}
}

// AutoSize returns a Size with both dimensions set to auto. This is the
// default size of a [Style].
func AutoSize() Size[Dimension] {
	return Size[Dimension]{Width: Auto, Height: Auto}
}

// PointsRect returns a Rect with all four sides given in points.
func PointsRect(start, end, top, bottom float32) Rect[Dimension] {
	return Rect[Dimension]{Start: Points(start), End: Points(end), Top: Points(top), Bottom: Points(bottom)}
}

// PercentRect returns a Rect with all four sides given as fractions of the
// parent size.
func PercentRect(start, end, top, bottom float32) Rect[Dimension] {
	return Rect[Dimension]{Start: Percent(start), End: Percent(end), Top: Percent(top), Bottom: Percent(bottom)}
}
