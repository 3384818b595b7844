// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import "github.com/strutkit/strut/internal/invariants"

// MarkDirty marks the node and, transitively, all of its ancestors as
// needing layout recalculation, clearing any cached sizing results along the
// way. It is the sole invalidation entry point: every topology or style
// mutation routes through it, and callers that mutate a node's state
// externally must call it themselves.
//
// The walk is an explicit worklist rather than recursion, so arbitrarily
// deep trees cannot exhaust the stack. Each node is visited at most once per
// call; in a DAG where several paths reach the same ancestor this only skips
// redundant re-marking (marking is idempotent). The visited set also bounds
// the walk if the parent relation contains a cycle, but a cyclic forest
// violates the acyclicity precondition and has no meaningful layout.
func (f *Forest) MarkDirty(node NodeID) {
	f.checkNode(node)
	f.dirtyMarks++

	f.dirtyEpoch++
	if len(f.dirtySeen) < len(f.nodes) {
		// Freshly allocated entries hold 0, which never matches an epoch.
		f.dirtySeen = make([]uint64, len(f.nodes))
	}

	stack := append(f.dirtyStack[:0], node)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// n came off an adjacency list; a stale identity here means the
		// rewrite step of a past removal missed a reference.
		invariants.CheckBounds(int(n), len(f.nodes))
		if f.dirtySeen[n] == f.dirtyEpoch {
			continue
		}
		f.dirtySeen[n] = f.dirtyEpoch
		f.nodes[n].markDirty()
		stack = append(stack, f.parents[n]...)
	}
	f.dirtyStack = stack[:0]
}
