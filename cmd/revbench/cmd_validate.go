// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/revbench/pkg/bench"
	"github.com/AleutianAI/revbench/pkg/logging"
	"github.com/AleutianAI/revbench/pkg/reverse"
)

// validationInputs is the curated edge-case list every variant must agree
// on before timing starts: zero, single digits, trailing zeros, the int32
// boundaries, magnitudes past a billion, and assorted multi-digit values.
// Running it also warms the process up ahead of the timed sweeps.
var validationInputs = []int32{
	-1_987_654_321,
	256,
	-256,
	12_345,
	25,
	-25,
	2,
	-2,
	1,
	-1,
	0,
	10,
	9,
	1_000_000_003,
	-1_000_000_003,
	math.MinInt32,
	math.MinInt32 + 1,
	math.MaxInt32,
	math.MaxInt32 - 1,
	2_000_000_008,
	-2_000_000_008,
	1_463_847_412,
	-1_463_847_412,
}

// runValidate executes only the cross-variant validation sweep.
func runValidate(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := logging.Default()

	var out io.Writer = cmd.OutOrStdout()
	if jsonOutput {
		out = io.Discard
	}

	if err := bench.CrossCheckAll(out, reverse.Variants(), validationInputs); err != nil {
		logger.Error("cross-variant validation failed", "error", err)
		OutputError(jsonOutput, "validate", "cross-variant validation failed", err)
		os.Exit(CLIExitError)
	}

	logger.Info("validation sweep passed", "inputs", len(validationInputs))
	if jsonOutput {
		OutputJSON(CommandResult{
			APIVersion: "1.0",
			Command:    "validate",
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data:       map[string]int{"inputs_checked": len(validationInputs)},
		}, false)
	}
}
