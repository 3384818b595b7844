// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/strutkit/strut/internal/strparse"
)

// ParseDimension parses the string form of a [Dimension], as produced by
// Dimension.String: "undef", "auto", a number in points, or a percentage
// like "35%".
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "undef":
		return UndefinedDimension, nil
	case "auto":
		return Auto, nil
	}
	numeric := s
	percent := false
	if strings.HasSuffix(s, "%") {
		numeric = s[:len(s)-1]
		percent = true
	}
	v, err := strconv.ParseFloat(numeric, 32)
	if err != nil {
		return Dimension{}, errors.Newf("invalid dimension %q", s)
	}
	if percent {
		return Percent(float32(v) / 100), nil
	}
	return Points(float32(v)), nil
}

// ParseStyle parses a human-readable list of style properties, intended for
// tests and debug input. Unmentioned properties keep their [DefaultStyle]
// values. Example:
//
//	w=100 h=50% dir=column grow=1 align-items=center
//
// Recognized keys: w, h, min-w, min-h, max-w, max-h (dimensions); basis
// (dimension); grow, shrink, aspect (numbers); dir, wrap, display,
// position-type, align-items, align-self, align-content, justify
// (keywords).
func ParseStyle(input string) (_ Style, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errFromPanic(r)
		}
	}()
	style := DefaultStyle()
	p := strparse.MakeParser("=", input)
	for !p.Done() {
		key := p.Next()
		p.Expect("=")
		value := p.Next()
		switch key {
		case "w":
			style.Size.Width = mustDimension(&p, value)
		case "h":
			style.Size.Height = mustDimension(&p, value)
		case "min-w":
			style.MinSize.Width = mustDimension(&p, value)
		case "min-h":
			style.MinSize.Height = mustDimension(&p, value)
		case "max-w":
			style.MaxSize.Width = mustDimension(&p, value)
		case "max-h":
			style.MaxSize.Height = mustDimension(&p, value)
		case "basis":
			style.FlexBasis = mustDimension(&p, value)
		case "grow":
			style.FlexGrow = mustFloat(&p, value)
		case "shrink":
			style.FlexShrink = mustFloat(&p, value)
		case "aspect":
			style.AspectRatio = Defined(mustFloat(&p, value))
		case "dir":
			switch value {
			case "row":
				style.FlexDirection = FlexDirectionRow
			case "column":
				style.FlexDirection = FlexDirectionColumn
			case "row-reverse":
				style.FlexDirection = FlexDirectionRowReverse
			case "column-reverse":
				style.FlexDirection = FlexDirectionColumnReverse
			default:
				p.Errf("unknown flex direction %q", value)
			}
		case "wrap":
			switch value {
			case "nowrap":
				style.FlexWrap = NoWrap
			case "wrap":
				style.FlexWrap = Wrap
			case "wrap-reverse":
				style.FlexWrap = WrapReverse
			default:
				p.Errf("unknown wrap mode %q", value)
			}
		case "display":
			switch value {
			case "flex":
				style.Display = DisplayFlex
			case "none":
				style.Display = DisplayNone
			default:
				p.Errf("unknown display mode %q", value)
			}
		case "position-type":
			switch value {
			case "relative":
				style.PositionType = PositionRelative
			case "absolute":
				style.PositionType = PositionAbsolute
			default:
				p.Errf("unknown position type %q", value)
			}
		case "align-items":
			switch value {
			case "flex-start":
				style.AlignItems = AlignItemsFlexStart
			case "flex-end":
				style.AlignItems = AlignItemsFlexEnd
			case "center":
				style.AlignItems = AlignItemsCenter
			case "baseline":
				style.AlignItems = AlignItemsBaseline
			case "stretch":
				style.AlignItems = AlignItemsStretch
			default:
				p.Errf("unknown align-items %q", value)
			}
		case "align-self":
			switch value {
			case "auto":
				style.AlignSelf = AlignSelfAuto
			case "flex-start":
				style.AlignSelf = AlignSelfFlexStart
			case "flex-end":
				style.AlignSelf = AlignSelfFlexEnd
			case "center":
				style.AlignSelf = AlignSelfCenter
			case "baseline":
				style.AlignSelf = AlignSelfBaseline
			case "stretch":
				style.AlignSelf = AlignSelfStretch
			default:
				p.Errf("unknown align-self %q", value)
			}
		case "align-content":
			switch value {
			case "flex-start":
				style.AlignContent = AlignContentFlexStart
			case "flex-end":
				style.AlignContent = AlignContentFlexEnd
			case "center":
				style.AlignContent = AlignContentCenter
			case "stretch":
				style.AlignContent = AlignContentStretch
			case "space-between":
				style.AlignContent = AlignContentSpaceBetween
			case "space-around":
				style.AlignContent = AlignContentSpaceAround
			default:
				p.Errf("unknown align-content %q", value)
			}
		case "justify":
			switch value {
			case "flex-start":
				style.JustifyContent = JustifyFlexStart
			case "flex-end":
				style.JustifyContent = JustifyFlexEnd
			case "center":
				style.JustifyContent = JustifyCenter
			case "space-between":
				style.JustifyContent = JustifySpaceBetween
			case "space-around":
				style.JustifyContent = JustifySpaceAround
			case "space-evenly":
				style.JustifyContent = JustifySpaceEvenly
			default:
				p.Errf("unknown justify-content %q", value)
			}
		default:
			p.Errf("unknown style property %q", key)
		}
	}
	return style, nil
}

func mustDimension(p *strparse.Parser, s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		p.Errf("%v", err)
	}
	return d
}

func mustFloat(p *strparse.Parser, s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		p.Errf("invalid number %q", s)
	}
	return float32(v)
}

// errFromPanic converts a recovered panic value into an error.
func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Newf("%v", r)
}
