// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"fmt"
	"strings"
)

// Display sets the layout strategy used for the children of a node.
type Display uint8

const (
	// DisplayFlex lays the children out with the flexbox algorithm. This is
	// the default.
	DisplayFlex Display = iota
	// DisplayNone skips layout for the children entirely; they only follow
	// absolute positioning.
	DisplayNone
)

// String implements fmt.Stringer.
func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// PositionType controls how the Position field of a [Style] is interpreted,
// and whether the node participates in flex layout at all.
//
// This follows the behavior of CSS's `position` property, except that the
// default is PositionRelative.
type PositionType uint8

const (
	// PositionRelative offsets the node from the position given by the layout
	// algorithm; the offset does not affect any sibling.
	PositionRelative PositionType = iota
	// PositionAbsolute positions the node relative to its closest positioned
	// ancestor and takes it out of flex flow entirely. To opt out of layout
	// altogether, use DisplayNone instead.
	PositionAbsolute
)

// String implements fmt.Stringer.
func (p PositionType) String() string {
	switch p {
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	default:
		return fmt.Sprintf("unknown(%d)", p)
	}
}

// FlexDirection is the direction of the main layout axis.
//
// There are always two perpendicular layout axes: main and cross. Flex items
// are placed adjacent to each other along the main axis, justified relative
// to the main axis and aligned relative to the cross axis.
type FlexDirection uint8

const (
	// FlexDirectionRow makes +x the main axis; items flow left to right.
	// This is the default.
	FlexDirectionRow FlexDirection = iota
	// FlexDirectionColumn makes +y the main axis; items flow top to bottom.
	FlexDirectionColumn
	// FlexDirectionRowReverse makes -x the main axis; items flow right to
	// left.
	FlexDirectionRowReverse
	// FlexDirectionColumnReverse makes -y the main axis; items flow bottom to
	// top.
	FlexDirectionColumnReverse
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsColumn reports whether the main axis is vertical.
func (d FlexDirection) IsColumn() bool {
	return d == FlexDirectionColumn || d == FlexDirectionColumnReverse
}

// IsReverse reports whether items flow against the +x/+y direction.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// String implements fmt.Stringer.
func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionRow:
		return "row"
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionRowReverse:
		return "row-reverse"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("unknown(%d)", d)
	}
}

// FlexWrap controls whether flex items are forced onto one line or can wrap
// onto multiple lines.
type FlexWrap uint8

const (
	// NoWrap keeps all items on a single line. This is the default.
	NoWrap FlexWrap = iota
	// Wrap lets items wrap along the flex direction.
	Wrap
	// WrapReverse lets items wrap against the flex direction.
	WrapReverse
)

// String implements fmt.Stringer.
func (w FlexWrap) String() string {
	switch w {
	case NoWrap:
		return "nowrap"
	case Wrap:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	default:
		return fmt.Sprintf("unknown(%d)", w)
	}
}

// AlignItems controls how a node's children are aligned relative to the cross
// axis.
type AlignItems uint8

const (
	// AlignItemsFlexStart packs items toward the start of the cross axis.
	AlignItemsFlexStart AlignItems = iota
	// AlignItemsFlexEnd packs items toward the end of the cross axis.
	AlignItemsFlexEnd
	// AlignItemsCenter packs items along the center of the cross axis.
	AlignItemsCenter
	// AlignItemsBaseline aligns items such that their baselines align.
	AlignItemsBaseline
	// AlignItemsStretch stretches items to fill the container. This is the
	// default.
	AlignItemsStretch
)

// String implements fmt.Stringer.
func (a AlignItems) String() string {
	switch a {
	case AlignItemsFlexStart:
		return "flex-start"
	case AlignItemsFlexEnd:
		return "flex-end"
	case AlignItemsCenter:
		return "center"
	case AlignItemsBaseline:
		return "baseline"
	case AlignItemsStretch:
		return "stretch"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// AlignSelf overrides the inherited [AlignItems] behavior for a single node.
type AlignSelf uint8

const (
	// AlignSelfAuto inherits the parent's AlignItems behavior. This is the
	// default.
	AlignSelfAuto AlignSelf = iota
	// AlignSelfFlexStart packs the item toward the start of the cross axis.
	AlignSelfFlexStart
	// AlignSelfFlexEnd packs the item toward the end of the cross axis.
	AlignSelfFlexEnd
	// AlignSelfCenter packs the item along the center of the cross axis.
	AlignSelfCenter
	// AlignSelfBaseline aligns the item on its baseline.
	AlignSelfBaseline
	// AlignSelfStretch stretches the item to fill the container.
	AlignSelfStretch
)

// String implements fmt.Stringer.
func (a AlignSelf) String() string {
	switch a {
	case AlignSelfAuto:
		return "auto"
	case AlignSelfFlexStart:
		return "flex-start"
	case AlignSelfFlexEnd:
		return "flex-end"
	case AlignSelfCenter:
		return "center"
	case AlignSelfBaseline:
		return "baseline"
	case AlignSelfStretch:
		return "stretch"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// AlignContent sets the distribution of space between and around wrapped
// lines along the cross axis.
type AlignContent uint8

const (
	// AlignContentFlexStart packs lines toward the start of the cross axis.
	AlignContentFlexStart AlignContent = iota
	// AlignContentFlexEnd packs lines toward the end of the cross axis.
	AlignContentFlexEnd
	// AlignContentCenter packs lines along the center of the cross axis.
	AlignContentCenter
	// AlignContentStretch stretches lines to fill the container. This is the
	// default.
	AlignContentStretch
	// AlignContentSpaceBetween distributes lines evenly, with the first and
	// last line aligned with the edges.
	AlignContentSpaceBetween
	// AlignContentSpaceAround distributes lines evenly with equal space
	// around each line.
	AlignContentSpaceAround
)

// String implements fmt.Stringer.
func (a AlignContent) String() string {
	switch a {
	case AlignContentFlexStart:
		return "flex-start"
	case AlignContentFlexEnd:
		return "flex-end"
	case AlignContentCenter:
		return "center"
	case AlignContentStretch:
		return "stretch"
	case AlignContentSpaceBetween:
		return "space-between"
	case AlignContentSpaceAround:
		return "space-around"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// JustifyContent sets the distribution of space between and around items
// along the main axis.
type JustifyContent uint8

const (
	// JustifyFlexStart packs items toward the start of the main axis. This is
	// the default.
	JustifyFlexStart JustifyContent = iota
	// JustifyFlexEnd packs items toward the end of the main axis.
	JustifyFlexEnd
	// JustifyCenter packs items along the center of the main axis.
	JustifyCenter
	// JustifySpaceBetween distributes items evenly, with the first and last
	// item aligned with the edges.
	JustifySpaceBetween
	// JustifySpaceAround distributes items evenly; the space between items is
	// twice the space between the edges and the outermost items.
	JustifySpaceAround
	// JustifySpaceEvenly distributes items evenly with identical gaps
	// everywhere.
	JustifySpaceEvenly
)

// String implements fmt.Stringer.
func (j JustifyContent) String() string {
	switch j {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return fmt.Sprintf("unknown(%d)", j)
	}
}

// Unit is the unit of a [Dimension].
type Unit uint8

const (
	// UnitUndefined means the dimension is not given. This is the default.
	UnitUndefined Unit = iota
	// UnitAuto means the dimension should be computed automatically.
	UnitAuto
	// UnitPoint means the dimension is an absolute length in points.
	UnitPoint
	// UnitPercent means the dimension is a fraction of the corresponding
	// extent of the parent (0.5 is 50%).
	UnitPercent
)

// Dimension is a unit of linear measurement. The zero value is undefined.
type Dimension struct {
	// Unit describes how Value is interpreted.
	Unit Unit
	// Value is the length in points for UnitPoint, or the fraction of the
	// parent extent for UnitPercent. It is meaningless for other units.
	Value float32
}

// Auto is the automatically-computed dimension.
var Auto = Dimension{Unit: UnitAuto}

// UndefinedDimension is the absent dimension; the zero value of [Dimension].
var UndefinedDimension = Dimension{}

// Points returns an absolute dimension of v points.
func Points(v float32) Dimension {
	return Dimension{Unit: UnitPoint, Value: v}
}

// Percent returns a dimension that is the fraction v of the corresponding
// parent extent.
func Percent(v float32) Dimension {
	return Dimension{Unit: UnitPercent, Value: v}
}

// IsDefined reports whether the dimension holds a concrete point or percent
// value.
func (d Dimension) IsDefined() bool {
	return d.Unit == UnitPoint || d.Unit == UnitPercent
}

// Resolve converts the dimension into a concrete [Number], given the parent
// extent the dimension is relative to.
func (d Dimension) Resolve(parent Number) Number {
	switch d.Unit {
	case UnitPoint:
		return Defined(d.Value)
	case UnitPercent:
		if parent.IsDefined() {
			return Defined(parent.Value() * d.Value)
		}
		return Number{}
	default:
		return Number{}
	}
}

// String implements fmt.Stringer.
func (d Dimension) String() string {
	switch d.Unit {
	case UnitUndefined:
		return "undef"
	case UnitAuto:
		return "auto"
	case UnitPoint:
		return fmt.Sprintf("%g", d.Value)
	case UnitPercent:
		return fmt.Sprintf("%g%%", d.Value*100)
	default:
		return fmt.Sprintf("unknown(%d)", d.Unit)
	}
}

// Style is the flexbox layout information for a single node.
//
// It follows the CSS flexbox properties directly; documentation for a field
// can be found on MDN by searching for the CSS property of the same name. Use
// [DefaultStyle] rather than the zero value: several fields have non-zero
// defaults (FlexShrink, FlexBasis, Size, AlignItems, AlignContent).
type Style struct {
	Display        Display
	PositionType   PositionType
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	// Position tweaks the node's location relative to the base given by
	// PositionType.
	Position Rect[Dimension]
	Margin   Rect[Dimension]
	Padding  Rect[Dimension]
	Border   Rect[Dimension]

	// FlexGrow is the relative rate at which the node grows when it is
	// expanding to fill space. Must be non-negative; defaults to 0.
	FlexGrow float32
	// FlexShrink is the relative rate at which the node shrinks when it is
	// contracting to fit into space. Must be non-negative; defaults to 1.
	FlexShrink float32
	// FlexBasis sets the initial main axis size of the node.
	FlexBasis Dimension

	Size    Size[Dimension]
	MinSize Size[Dimension]
	MaxSize Size[Dimension]

	// AspectRatio is the preferred width/height ratio, if any.
	AspectRatio Number
}

// DefaultStyle returns the Style corresponding to the CSS initial values
// used by this library.
func DefaultStyle() Style {
	return Style{
		Display:        DisplayFlex,
		PositionType:   PositionRelative,
		FlexDirection:  FlexDirectionRow,
		FlexWrap:       NoWrap,
		AlignItems:     AlignItemsStretch,
		AlignSelf:      AlignSelfAuto,
		AlignContent:   AlignContentStretch,
		JustifyContent: JustifyFlexStart,
		FlexGrow:       0,
		FlexShrink:     1,
		FlexBasis:      Auto,
		Size:           AutoSize(),
		MinSize:        Size[Dimension]{Width: Auto, Height: Auto},
		MaxSize:        Size[Dimension]{Width: Auto, Height: Auto},
	}
}

// String returns the style as a list of properties in the syntax accepted by
// ParseStyle. Properties holding their default values are omitted; the
// default style renders as "default". The box rects (Position, Margin,
// Padding, Border) are not rendered.
func (s Style) String() string {
	def := DefaultStyle()
	var props []string
	add := func(key string, val, defVal fmt.Stringer) {
		if val.String() != defVal.String() {
			props = append(props, fmt.Sprintf("%s=%s", key, val))
		}
	}
	add("display", s.Display, def.Display)
	add("position-type", s.PositionType, def.PositionType)
	add("dir", s.FlexDirection, def.FlexDirection)
	add("wrap", s.FlexWrap, def.FlexWrap)
	add("align-items", s.AlignItems, def.AlignItems)
	add("align-self", s.AlignSelf, def.AlignSelf)
	add("align-content", s.AlignContent, def.AlignContent)
	add("justify", s.JustifyContent, def.JustifyContent)
	add("w", s.Size.Width, def.Size.Width)
	add("h", s.Size.Height, def.Size.Height)
	add("min-w", s.MinSize.Width, def.MinSize.Width)
	add("min-h", s.MinSize.Height, def.MinSize.Height)
	add("max-w", s.MaxSize.Width, def.MaxSize.Width)
	add("max-h", s.MaxSize.Height, def.MaxSize.Height)
	add("basis", s.FlexBasis, def.FlexBasis)
	if s.FlexGrow != def.FlexGrow {
		props = append(props, fmt.Sprintf("grow=%g", s.FlexGrow))
	}
	if s.FlexShrink != def.FlexShrink {
		props = append(props, fmt.Sprintf("shrink=%g", s.FlexShrink))
	}
	if s.AspectRatio.IsDefined() {
		props = append(props, fmt.Sprintf("aspect=%g", s.AspectRatio.Value()))
	}
	if len(props) == 0 {
		return "default"
	}
	return strings.Join(props, " ")
}

// MinMainSize returns the minimum size on the main axis of dir.
func (s *Style) MinMainSize(dir FlexDirection) Dimension {
	return s.MinSize.Main(dir)
}

// MaxMainSize returns the maximum size on the main axis of dir.
func (s *Style) MaxMainSize(dir FlexDirection) Dimension {
	return s.MaxSize.Main(dir)
}

// MainMarginStart returns the margin on the main-axis start side.
func (s *Style) MainMarginStart(dir FlexDirection) Dimension {
	return s.Margin.MainStart(dir)
}

// MainMarginEnd returns the margin on the main-axis end side.
func (s *Style) MainMarginEnd(dir FlexDirection) Dimension {
	return s.Margin.MainEnd(dir)
}

// CrossSize returns the size on the cross axis of dir.
func (s *Style) CrossSize(dir FlexDirection) Dimension {
	return s.Size.Cross(dir)
}

// MinCrossSize returns the minimum size on the cross axis of dir.
func (s *Style) MinCrossSize(dir FlexDirection) Dimension {
	return s.MinSize.Cross(dir)
}

// MaxCrossSize returns the maximum size on the cross axis of dir.
func (s *Style) MaxCrossSize(dir FlexDirection) Dimension {
	return s.MaxSize.Cross(dir)
}

// CrossMarginStart returns the margin on the cross-axis start side.
func (s *Style) CrossMarginStart(dir FlexDirection) Dimension {
	return s.Margin.CrossStart(dir)
}

// CrossMarginEnd returns the margin on the cross-axis end side.
func (s *Style) CrossMarginEnd(dir FlexDirection) Dimension {
	return s.Margin.CrossEnd(dir)
}

// ResolveAlignSelf computes the final cross-axis alignment of this node given
// its parent's style. The result is never AlignSelfAuto.
func (s *Style) ResolveAlignSelf(parent *Style) AlignSelf {
	if s.AlignSelf != AlignSelfAuto {
		return s.AlignSelf
	}
	switch parent.AlignItems {
	case AlignItemsFlexStart:
		return AlignSelfFlexStart
	case AlignItemsFlexEnd:
		return AlignSelfFlexEnd
	case AlignItemsCenter:
		return AlignSelfCenter
	case AlignItemsBaseline:
		return AlignSelfBaseline
	default:
		return AlignSelfStretch
	}
}
