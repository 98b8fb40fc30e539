// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package reverse provides six functionally equivalent implementations of
// base-10 digit reversal for signed 32-bit integers.
//
// Every implementation satisfies the same contract:
//
//   - Single-digit values (-10 < v < 10) are returned unchanged.
//   - The magnitude's decimal digits are reversed and the sign reapplied.
//   - Exact powers of ten reverse to +1 or -1.
//   - If the reversed magnitude does not fit in an int32, the result is 0.
//
// The overflow-returns-zero policy is deliberate: the benchmark measures
// equivalent implementations of one fixed behaviour, and that behaviour
// bounds results to the representable range rather than reporting an error.
// Do not rely on 0 as an overflow signal elsewhere; reverse(0) is also 0.
//
// The implementations differ only in mechanism: two extract digits with
// division and modulo (differing in how they find the highest decimal
// place), and four format the value as text and reverse the digit bytes
// (differing in where the scratch buffer lives and how the bytes are
// swapped). All six are total over the full int32 domain and never panic.
package reverse

import (
	"math"
)

// Func is the contract shared by every reversal implementation.
type Func func(value int32) int32

// bufSize holds the longest possible decimal rendering of an int32,
// "-2147483648". No trailing NUL or padding; every textual variant works
// on exact-length slices.
const bufSize = len("-2147483648")

// pow10 lists the ten powers of ten covering every int32 digit position,
// 10^0 through 10^9. Read-only, shared by the lookup-table variant.
var pow10 = [...]uint64{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Variant pairs a reversal implementation with its display label.
type Variant struct {
	Name string
	Fn   Func
}

// Variants returns the six implementations in benchmark order.
//
// The shared-buffer variant is bound to a Scratch created here, so each
// call to Variants yields an independent shared buffer. The returned
// functions must not be called concurrently with each other: the shared
// variant reuses its buffer across calls with no synchronization.
func Variants() []Variant {
	scratch := NewScratch()
	return []Variant{
		{Name: "Char Stack", Fn: StackSwap},
		{Name: "Char Stack Algo", Fn: StackReverse},
		{Name: "Char Shared", Fn: scratch.Reverse},
		{Name: "Char Alloc", Fn: HeapAlloc},
		{Name: "Modulo Lookup", Fn: ModuloLookup},
		{Name: "Modulo Multiply", Fn: ModuloMultiply},
	}
}

// magnitude splits value into its absolute value and sign. The absolute
// value is computed through int64 so that math.MinInt32 does not overflow
// during negation.
func magnitude(value int32) (mag uint64, negative bool) {
	if value < 0 {
		return uint64(-int64(value)), true
	}
	return uint64(value), false
}

// clamp reapplies the sign and enforces the int32 range. Reversed
// magnitudes beyond math.MaxInt32 collapse to 0.
func clamp(mag uint64, negative bool) int32 {
	if mag > math.MaxInt32 {
		return 0
	}
	if negative {
		return -int32(mag)
	}
	return int32(mag)
}
