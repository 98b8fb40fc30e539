// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/AleutianAI/revbench/pkg/bench"
	"github.com/AleutianAI/revbench/pkg/reverse"
)

type CLISuite struct {
	suite.Suite
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	jsonOutput = false
	noColor = false
	benchRange = bench.DefaultRange
	benchRepeats = bench.DefaultRepeats
}

func (s *CLISuite) TestCommandsRegistered() {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	s.True(names["run"], "run command missing")
	s.True(names["validate"], "validate command missing")
}

func (s *CLISuite) TestFlagDefaultsMatchFixedProtocol() {
	s.Equal("2000000", rootCmd.PersistentFlags().Lookup("range").DefValue)
	s.Equal("10", rootCmd.PersistentFlags().Lookup("repeats").DefValue)
	s.Equal("false", rootCmd.PersistentFlags().Lookup("json").DefValue)
}

func (s *CLISuite) TestValidateCommandOutput() {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	s.Require().NoError(err)

	out := buf.String()
	s.Contains(out, "Inverting 256 = 652")
	s.Contains(out, "Inverting -256 = -652")
	s.Contains(out, "Inverting 0 = 0")
	s.Contains(out, "Inverting -2147483648 = 0")
	s.Contains(out, "[Modulo Multiply]")
}

func TestValidationInputsCoverEdgeCases(t *testing.T) {
	want := []int32{
		0, 1, -1, 10, // zero, units, trailing zero
		math.MinInt32, math.MinInt32 + 1, math.MaxInt32, math.MaxInt32 - 1,
		1_000_000_003, -1_987_654_321, // beyond a billion
	}
	present := map[int32]bool{}
	for _, v := range validationInputs {
		present[v] = true
	}
	for _, v := range want {
		assert.True(t, present[v], "validation list missing %d", v)
	}
}

func TestBuildRows(t *testing.T) {
	variants := reverse.Variants()
	results := make([]bench.TimingResult, len(variants))

	rows := buildRows(variants, results)
	require.Len(t, rows, len(variants))
	for i, row := range rows {
		require.Len(t, row, len(resultHeaders()))
		assert.Equal(t, variants[i].Name, row[0])
	}
}

func TestBuildTimings(t *testing.T) {
	variants := reverse.Variants()[:2]
	results := []bench.TimingResult{
		{Min: 10e6, Max: 40e6, Mean: 20e6, Median: 15e6},
		{Min: 1e6, Max: 4e6, Mean: 2e6, Median: 1e6},
	}

	timings := buildTimings(variants, results)
	require.Len(t, timings, 2)
	assert.Equal(t, variants[0].Name, timings[0].Name)
	assert.Equal(t, int64(10), timings[0].MinMs)
	assert.Equal(t, int64(40), timings[0].MaxMs)
	assert.Equal(t, int64(20), timings[0].MeanMs)
	assert.Equal(t, int64(15), timings[0].MedianMs)
}
