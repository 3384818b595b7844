// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Metrics is a snapshot of forest statistics.
type Metrics struct {
	// Nodes is the number of live nodes.
	Nodes int
	// Edges is the number of parent/child edges, counting duplicates.
	Edges int
	// DirtyNodes is the number of live nodes currently marked dirty.
	DirtyNodes int
	// DirtyMarks is the cumulative number of MarkDirty propagations over the
	// lifetime of the forest.
	DirtyMarks uint64
	// Relocations is the cumulative number of identity relocations caused by
	// compacting removals.
	Relocations uint64
}

// Metrics returns a snapshot of forest statistics.
func (f *Forest) Metrics() Metrics {
	m := Metrics{
		Nodes:       len(f.nodes),
		DirtyMarks:  f.dirtyMarks,
		Relocations: f.relocations,
	}
	for i := range f.nodes {
		m.Edges += len(f.children[i])
		if f.nodes[i].Dirty {
			m.DirtyNodes++
		}
	}
	return m
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("nodes: %d (%d dirty), edges: %d, dirty-marks: %d, relocations: %d",
		redact.SafeInt(m.Nodes), redact.SafeInt(m.DirtyNodes), redact.SafeInt(m.Edges),
		redact.SafeUint(m.DirtyMarks), redact.SafeUint(m.Relocations))
}

var _ fmt.Stringer = Metrics{}
var _ redact.SafeFormatter = Metrics{}
