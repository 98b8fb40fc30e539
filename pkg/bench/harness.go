// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package bench times digit-reversal implementations and cross-checks
// their results.
//
// The harness is generic over anything matching the reverse.Func contract.
// One timed repetition sweeps every integer in a symmetric range, calling
// the function three times per value; repetitions are aggregated into
// min/max/mean/median wall-clock statistics at millisecond resolution.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"github.com/AleutianAI/revbench/pkg/logging"
	"github.com/AleutianAI/revbench/pkg/reverse"
)

// DefaultRange and DefaultRepeats reproduce the reference benchmark
// protocol: ten repetitions over [-2,000,000, 2,000,000].
const (
	DefaultRange   int32 = 2_000_000
	DefaultRepeats       = 10

	// CallsPerValue is how many times the function under test runs for
	// each swept value (the triple application below).
	CallsPerValue = 3
)

// sink receives every final reversal result. Writing each result to a
// package-level variable keeps the compiler from proving the calls dead
// and eliding them from the timed loop.
var sink int32

// Config parameterizes a timing run.
type Config struct {
	// Range bounds the sweep: every value in [-Range, Range] inclusive.
	// Must be positive and below math.MaxInt32. Default: DefaultRange.
	Range int32

	// Repeats is the number of timed sweeps. Odd counts give an exact
	// median element. Must be positive. Default: DefaultRepeats.
	Repeats int

	// Progress receives one "." per completed repetition and a trailing
	// newline. Nil disables progress marks.
	Progress io.Writer

	// Log receives non-fatal anomaly reports (self-check mismatches).
	// Nil falls back to logging.Default().
	Log *logging.Logger
}

// withDefaults fills zero fields and validates the rest.
func (c Config) withDefaults() (Config, error) {
	if c.Range == 0 {
		c.Range = DefaultRange
	}
	if c.Repeats == 0 {
		c.Repeats = DefaultRepeats
	}
	if c.Log == nil {
		c.Log = logging.Default()
	}
	if c.Range < 0 {
		return c, fmt.Errorf("range must be positive, got %d", c.Range)
	}
	if c.Range == math.MaxInt32 {
		// v <= Range would never terminate at the int32 ceiling.
		return c, errors.New("range must be below math.MaxInt32")
	}
	if c.Repeats < 0 {
		return c, fmt.Errorf("repeats must be positive, got %d", c.Repeats)
	}
	return c, nil
}

// TimingResult aggregates the per-repetition durations of one timing run.
// Immutable once returned.
type TimingResult struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
}

// String renders the result in the comparison-table field order.
func (r TimingResult) String() string {
	return fmt.Sprintf("Average:%s, Median:%s, Min:%s, Max:%s", r.Mean, r.Median, r.Min, r.Max)
}

// Run times fn over cfg.Repeats sweeps of [-cfg.Range, cfg.Range].
//
// Each swept value v is put through a triple application:
//
//	r1 := fn(v); r2 := fn(r1); r3 := fn(r2)
//
// After one reversal the value has no trailing zeros, so further
// reversals must round-trip: r1 == r3. The comparison doubles as a cheap
// self-check and as a consumer of the results, so the calls cannot be
// optimized out. A mismatch is reported through cfg.Log as a warning and
// does not stop the run.
//
// Per-repetition durations come from the monotonic clock and are
// truncated to whole milliseconds before aggregation. Min, max and median
// are picked from the sorted durations (median is the middle element);
// mean is the sum divided by the repeat count.
func Run(fn reverse.Func, cfg Config) (TimingResult, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return TimingResult{}, err
	}

	durations := make([]time.Duration, cfg.Repeats)
	var total time.Duration

	for rep := 0; rep < cfg.Repeats; rep++ {
		if cfg.Progress != nil {
			fmt.Fprint(cfg.Progress, ".")
		}

		start := time.Now()
		for v := -cfg.Range; v <= cfg.Range; v++ {
			r1 := fn(v)
			r2 := fn(r1)
			r3 := fn(r2)

			if r1 != r3 {
				cfg.Log.Warn("reversal self-check mismatch",
					"value", v, "first", r1, "third", r3)
			}
			sink = r3
		}
		elapsed := time.Since(start).Truncate(time.Millisecond)

		durations[rep] = elapsed
		total += elapsed
	}
	if cfg.Progress != nil {
		fmt.Fprintln(cfg.Progress)
	}

	slices.Sort(durations)

	return TimingResult{
		Min:    durations[0],
		Max:    durations[cfg.Repeats-1],
		Median: durations[cfg.Repeats/2],
		Mean:   total / time.Duration(cfg.Repeats),
	}, nil
}

// TotalCalls reports how many times the function under test runs during
// one repetition with the given range.
func TotalCalls(valueRange int32) uint64 {
	return uint64(valueRange) * 2 * CallsPerValue
}
