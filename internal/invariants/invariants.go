// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package invariants provides additional consistency checks that are enabled
// in builds with the "invariants" or "race" build tags.
package invariants

import (
	"fmt"
	"math/rand/v2"

	"github.com/strutkit/strut/internal/buildtags"
)

// Enabled is true if we were built with the "invariants" or "race" build
// tags.
const Enabled = buildtags.Invariants || buildtags.Race

// Sometimes returns true percent% of the time if we were built with the
// "invariants" or "race" build tags.
func Sometimes(percent int) bool {
	return Enabled && rand.Uint32N(100) < uint32(percent)
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// CheckBounds panics if the index is not in the range [0, n). No-op in
// non-invariant builds.
func CheckBounds[T Integer](i T, n T) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Sprintf("index %d out of bounds [0, %d)", i, n))
	}
}
