// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/revbench/pkg/bench"
)

// --- Global Command Variables ---
var (
	benchRange   int32 // half-width R of the timed sweep [-R, R]
	benchRepeats int   // timed sweeps per variant
	jsonOutput   bool  // machine-readable output on stdout
	noColor      bool  // disable styled output

	rootCmd = &cobra.Command{
		Use:   "revbench",
		Short: "Compare six implementations of int32 digit reversal",
		Long: `revbench benchmarks six functionally equivalent implementations of
base-10 digit reversal for signed 32-bit integers: two arithmetic
(modulo/divide) variants and four textual variants that differ in
scratch-buffer strategy.

Run without arguments it first proves all variants agree on a curated
set of edge-case inputs, then times each one over ten sweeps of
[-2,000,000, 2,000,000] and prints a comparison table.`,
		Run: runBenchmark, // Defined in cmd_run.go
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Validate all variants, then time each over the full sweep",
		Run:   runBenchmark, // Defined in cmd_run.go
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Run the cross-variant validation sweep only",
		Run:   runValidate, // Defined in cmd_validate.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON for scripting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable styled terminal output")
	rootCmd.PersistentFlags().Int32Var(&benchRange, "range", bench.DefaultRange,
		"Half-width R of the timed sweep [-R, R]")
	rootCmd.PersistentFlags().IntVar(&benchRepeats, "repeats", bench.DefaultRepeats,
		"Number of timed sweeps per variant (odd counts give an exact median)")

	rootCmd.AddCommand(runCmd, validateCmd)
}
