// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"github.com/cockroachdb/errors"
	"github.com/strutkit/strut/internal/invariants"
)

// checkWellFormed verifies the structural invariants of the forest:
//
//   - the three parallel sequences have equal length;
//   - every identity stored in an adjacency list names a live node;
//   - adjacency is symmetric, counting multiplicity: node c appears k times
//     in p's child list iff p appears k times in c's parent list;
//   - a populated cache slot implies the node is not dirty.
//
// It panics on the first violation. Runs after every mutating operation in
// invariants builds; tests call it directly.
func (f *Forest) checkWellFormed() {
	if len(f.children) != len(f.nodes) || len(f.parents) != len(f.nodes) {
		panic(errors.AssertionFailedf(
			"parallel sequences diverged: %d nodes, %d child lists, %d parent lists",
			len(f.nodes), len(f.children), len(f.parents)))
	}
	for id := NodeID(0); int(id) < len(f.nodes); id++ {
		for _, child := range f.children[id] {
			if child < 0 || int(child) >= len(f.nodes) {
				panic(errors.AssertionFailedf("node %d has dead child %d", id, child))
			}
			if count(f.children[id], child) != count(f.parents[child], id) {
				panic(errors.AssertionFailedf(
					"asymmetric adjacency between parent %d and child %d", id, child))
			}
		}
		for _, parent := range f.parents[id] {
			if parent < 0 || int(parent) >= len(f.nodes) {
				panic(errors.AssertionFailedf("node %d has dead parent %d", id, parent))
			}
			if count(f.parents[id], parent) != count(f.children[parent], id) {
				panic(errors.AssertionFailedf(
					"asymmetric adjacency between child %d and parent %d", id, parent))
			}
		}
		n := &f.nodes[id]
		if n.Dirty && (n.MainSizeCache != nil || n.OtherCache != nil) {
			panic(errors.AssertionFailedf("dirty node %d holds a populated cache", id))
		}
	}
	if invariants.Sometimes(10) {
		// The acyclicity sweep touches the whole graph, so it only runs on a
		// sample of mutations.
		f.checkAcyclic()
	}
}

// checkAcyclic panics if the parent/child relation contains a cycle.
// Acyclicity is a caller precondition that no operation verifies on its own;
// this is the whole-graph sweep for invariant builds and tests.
func (f *Forest) checkAcyclic() {
	const (
		unvisited = int8(iota)
		open
		closed
	)
	type frame struct {
		node NodeID
		next int
	}
	state := make([]int8, len(f.nodes))
	var stack []frame
	for root := NodeID(0); int(root) < len(f.nodes); root++ {
		if state[root] != unvisited {
			continue
		}
		state[root] = open
		stack = append(stack[:0], frame{node: root})
		for len(stack) > 0 {
			fr := &stack[len(stack)-1]
			if fr.next == len(f.children[fr.node]) {
				state[fr.node] = closed
				stack = stack[:len(stack)-1]
				continue
			}
			child := f.children[fr.node][fr.next]
			fr.next++
			switch state[child] {
			case open:
				panic(errors.AssertionFailedf("cycle through node %d", child))
			case unvisited:
				state[child] = open
				stack = append(stack, frame{node: child})
			}
		}
	}
}

func count(list []NodeID, id NodeID) int {
	c := 0
	for _, n := range list {
		if n == id {
			c++
		}
	}
	return c
}
