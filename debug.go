// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
)

// DebugString returns a multi-line description of the forest: one line per
// node with its adjacency, dirty flag and cache occupancy. Intended for tests
// and debugging.
func (f *Forest) DebugString() string {
	if len(f.nodes) == 0 {
		return "empty\n"
	}
	var buf strings.Builder
	for id := range f.nodes {
		n := &f.nodes[id]
		fmt.Fprintf(&buf, "%d: children=[%s] parents=[%s]",
			id, formatIDs(f.children[id]), formatIDs(f.parents[id]))
		buf.WriteString(crstrings.If(n.Dirty, " dirty"))
		switch {
		case n.MainSizeCache != nil && n.OtherCache != nil:
			buf.WriteString(" cached=main,other")
		case n.MainSizeCache != nil:
			buf.WriteString(" cached=main")
		case n.OtherCache != nil:
			buf.WriteString(" cached=other")
		}
		buf.WriteString(crstrings.If(n.Measure != nil, " measure"))
		buf.WriteString("\n")
	}
	return buf.String()
}

func formatIDs(ids []NodeID) string {
	var buf strings.Builder
	for i, id := range ids {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(id.String())
	}
	return buf.String()
}
