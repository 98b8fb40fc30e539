// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reverse

// ModuloLookup reverses the digits of value using (mag / place) % 10
// extraction, locating the highest occupied decimal place by scanning the
// precomputed pow10 table. Digit pairs are swapped outermost-in; an odd
// middle digit is copied straight across.
func ModuloLookup(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	mag, negative := magnitude(value)

	// Never below index 1 thanks to the single-digit return above.
	highest := 1
	for highest < len(pow10) && mag >= pow10[highest] {
		highest++
	}
	// The scan overshoots by one.
	highest--

	// Exact powers of ten always reverse to 1.
	if mag == pow10[highest] {
		if negative {
			return -1
		}
		return 1
	}

	var result uint64

	half := (highest + 1) / 2
	for i := 0; i < half; i++ {
		lowerTens := pow10[i]
		upperTens := pow10[highest-i]

		lower := (mag / lowerTens) % 10
		upper := (mag / upperTens) % 10

		result += lower*upperTens + upper*lowerTens
	}

	// Odd digit count (even highest index): the middle digit stays put.
	if highest&1 == 0 {
		tens := pow10[half]
		result += ((mag / tens) % 10) * tens
	}

	return clamp(result, negative)
}

// ModuloMultiply is the same digit-swap algorithm as ModuloLookup, but
// finds the highest decimal place by repeated multiplication instead of a
// table scan.
func ModuloMultiply(value int32) int32 {
	if value < 10 && value > -10 {
		return value
	}

	mag, negative := magnitude(value)

	// Never drops below 10 thanks to the single-digit return above.
	upperTens := uint64(10)
	for mag >= upperTens {
		upperTens *= 10
	}
	// The scan overshoots by one.
	upperTens /= 10

	// Exact powers of ten always reverse to 1.
	if mag == upperTens {
		if negative {
			return -1
		}
		return 1
	}

	var result uint64

	lowerTens := uint64(1)
	for ; lowerTens < upperTens; lowerTens, upperTens = lowerTens*10, upperTens/10 {
		lower := (mag / lowerTens) % 10
		upper := (mag / upperTens) % 10

		result += lower*upperTens + upper*lowerTens
	}

	// The loop stops when the two places meet on a middle digit; that
	// digit is copied, not swapped.
	if lowerTens == upperTens {
		result += ((mag / lowerTens) % 10) * lowerTens
	}

	return clamp(result, negative)
}
