// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AleutianAI/revbench/pkg/bench"
	"github.com/AleutianAI/revbench/pkg/logging"
	"github.com/AleutianAI/revbench/pkg/reverse"
	"github.com/AleutianAI/revbench/pkg/ux"
)

// VariantTiming is the per-variant entry of the JSON results payload.
type VariantTiming struct {
	Name     string `json:"name"`
	MinMs    int64  `json:"min_ms"`
	MaxMs    int64  `json:"max_ms"`
	MeanMs   int64  `json:"mean_ms"`
	MedianMs int64  `json:"median_ms"`
}

// runBenchmark drives the full protocol: the cross-variant validation
// sweep (which doubles as process warmup), one timing run per variant,
// and the final comparison table.
//
// Validation failure aborts before any timing happens: timing figures
// for functions that disagree would be meaningless.
func runBenchmark(cmd *cobra.Command, args []string) {
	start := time.Now()
	out := cmd.OutOrStdout()

	logger := logging.Default().With("run_id", uuid.NewString())

	// In JSON mode stdout carries only the result envelope; the
	// human-readable protocol output is discarded, not skipped, so the
	// validation and warmup behaviour is identical in both modes.
	var humanOut io.Writer = out
	if jsonOutput {
		humanOut = io.Discard
	}

	variants := reverse.Variants()

	logger.Info("starting validation sweep",
		"inputs", len(validationInputs), "variants", len(variants))
	if err := bench.CrossCheckAll(humanOut, variants, validationInputs); err != nil {
		logger.Error("cross-variant validation failed", "error", err)
		OutputError(jsonOutput, "run", "cross-variant validation failed", err)
		os.Exit(CLIExitError)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(humanOut,
		"\nTiming functions %dx over range [-%d, %d]. The functions will be called %dx per iteration\n",
		benchRepeats, benchRange, benchRange, bench.CallsPerValue)
	fmt.Fprintf(humanOut, "Beginning function timing...\n\n")

	cfg := bench.Config{
		Range:    benchRange,
		Repeats:  benchRepeats,
		Progress: humanOut,
		Log:      logger,
	}

	results := make([]bench.TimingResult, len(variants))
	for i, variant := range variants {
		fmt.Fprintf(humanOut, "Timing '%s' function...\n", variant.Name)
		logger.Info("timing variant", "variant", variant.Name)

		res, err := bench.Run(variant.Fn, cfg)
		if err != nil {
			logger.Error("timing run failed", "variant", variant.Name, "error", err)
			OutputError(jsonOutput, "run", "timing run failed", err)
			os.Exit(CLIExitError)
		}
		results[i] = res
		logger.Info("variant timed", "variant", variant.Name, "stats", res.String())
	}

	if jsonOutput {
		OutputJSON(CommandResult{
			APIVersion: "1.0",
			Command:    "run",
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data:       buildTimings(variants, results),
		}, false)
		return
	}

	color := !noColor && ux.IsTerminal(os.Stdout)

	title := "Results"
	if color {
		title = ux.Styles.Title.Render(title)
	}
	fmt.Fprintf(out, "\n%s\n\n", title)
	fmt.Fprintln(out, ux.ResultsTable(resultHeaders(), buildRows(variants, results), color))

	note := p.Sprintf(
		"## NOTE: These times cover %d function calls per iteration over a negative -> positive value range,\n"+
			"## for a total of %d calls per timing cycle.",
		bench.CallsPerValue, bench.TotalCalls(benchRange))
	if color {
		note = ux.Styles.Muted.Render(note)
	}
	fmt.Fprintf(out, "\n%s\n", note)
}

func resultHeaders() []string {
	return []string{"Variant", "Average", "Median", "Min", "Max"}
}

// buildRows formats one table row per variant, in benchmark order.
func buildRows(variants []reverse.Variant, results []bench.TimingResult) [][]string {
	rows := make([][]string, len(variants))
	for i, variant := range variants {
		res := results[i]
		rows[i] = []string{
			variant.Name,
			res.Mean.String(),
			res.Median.String(),
			res.Min.String(),
			res.Max.String(),
		}
	}
	return rows
}

// buildTimings converts results to the JSON payload shape.
func buildTimings(variants []reverse.Variant, results []bench.TimingResult) []VariantTiming {
	timings := make([]VariantTiming, len(variants))
	for i, variant := range variants {
		res := results[i]
		timings[i] = VariantTiming{
			Name:     variant.Name,
			MinMs:    res.Min.Milliseconds(),
			MaxMs:    res.Max.Milliseconds(),
			MeanMs:   res.Mean.Milliseconds(),
			MedianMs: res.Median.Milliseconds(),
		}
	}
	return timings
}
