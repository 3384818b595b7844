// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package strut

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Number is an optionally-defined float32. It is the scalar used for
// measurement constraints: an undefined extent means "no constraint on this
// axis". The zero value is undefined.
type Number struct {
	value   float32
	defined bool
}

// Defined returns a Number holding v.
func Defined(v float32) Number {
	return Number{value: v, defined: true}
}

// IsDefined reports whether the number holds a value.
func (n Number) IsDefined() bool {
	return n.defined
}

// Value returns the held value, or 0 if the number is undefined.
func (n Number) Value() float32 {
	return n.value
}

// OrElse returns the held value, or def if the number is undefined.
func (n Number) OrElse(def float32) float32 {
	if n.defined {
		return n.value
	}
	return def
}

// String returns "undef" for an undefined number and the numeric value
// otherwise.
func (n Number) String() string {
	if !n.defined {
		return "undef"
	}
	return fmt.Sprintf("%g", n.value)
}

// SafeFormat implements redact.SafeFormatter.
func (n Number) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(n.String()))
}
