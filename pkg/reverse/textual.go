// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reverse

import (
	"slices"
	"strconv"
)

// The textual variants all follow the same three steps: format the value
// as decimal text into a scratch buffer, reverse the digit bytes (leaving
// a leading '-' in place), and parse the buffer back into an int32. They
// differ only in where the scratch buffer lives.
//
// Parsing supplies the overflow clamp for free: a reversed digit string
// beyond the int32 range fails to parse and the variant returns 0.

// scratchSize is a variable on purpose. A constant capacity would let
// escape analysis keep HeapAlloc's buffer on the stack, collapsing it
// into StackReverse and voiding the allocation comparison.
var scratchSize = bufSize

// StackSwap reverses digits through a stack-resident scratch buffer,
// swapping bytes in-place with a hand-written two-index loop.
func StackSwap(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	var buf [bufSize]byte
	text := strconv.AppendInt(buf[:0], int64(value), 10)

	skip := 0
	if value < 0 {
		skip = 1
	}
	for i, j := skip, len(text)-1; i < j; i, j = i+1, j-1 {
		text[i], text[j] = text[j], text[i]
	}

	return parseClamped(text)
}

// StackReverse is StackSwap with the swap loop replaced by the generic
// slices.Reverse over the digit sub-slice.
func StackReverse(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	var buf [bufSize]byte
	text := strconv.AppendInt(buf[:0], int64(value), 10)

	slices.Reverse(digitsOf(text, value))

	return parseClamped(text)
}

// Scratch is a reusable heap-resident formatting buffer for Reverse.
//
// A Scratch is owned by a single caller and carries no synchronization;
// it must not be shared between goroutines. Each call fully overwrites
// the previous contents before reading them, so sequential reuse never
// observes stale digits.
type Scratch struct {
	buf [bufSize]byte
}

// NewScratch allocates a Scratch sized for any int32 rendering.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Reverse reverses digits through the receiver's buffer. Mechanically
// identical to StackReverse; only the buffer's home differs.
func (s *Scratch) Reverse(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	text := strconv.AppendInt(s.buf[:0], int64(value), 10)

	slices.Reverse(digitsOf(text, value))

	return parseClamped(text)
}

// HeapAlloc reverses digits through a scratch buffer freshly allocated on
// every call and released to the garbage collector on return.
func HeapAlloc(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	buf := make([]byte, 0, scratchSize)
	text := strconv.AppendInt(buf, int64(value), 10)

	slices.Reverse(digitsOf(text, value))

	return parseClamped(text)
}

// digitsOf narrows text to the digit bytes, excluding a leading sign.
func digitsOf(text []byte, value int32) []byte {
	if value < 0 {
		return text[1:]
	}
	return text
}

// parseClamped re-parses reversed digit text as an int32. Any parse
// failure means the reversed magnitude left the int32 range, which the
// reversal contract maps to 0.
func parseClamped(text []byte) int32 {
	result, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		return 0
	}
	return int32(result)
}
