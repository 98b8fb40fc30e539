// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/revbench/pkg/reverse"
)

func TestCrossCheck_AgreementPrintsAllVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	variants := reverse.Variants()

	err := CrossCheck(buf, variants, 256)
	require.NoError(t, err)

	out := buf.String()
	for _, v := range variants {
		assert.Contains(t, out, "["+v.Name, "missing labeled line for %s", v.Name)
	}
	assert.Equal(t, len(variants), strings.Count(out, "Inverting 256 = 652"))
	assert.True(t, strings.HasSuffix(out, "\n\n"), "output should end with a blank separator line")
}

func TestCrossCheck_Disagreement(t *testing.T) {
	variants := []reverse.Variant{
		{Name: "Good", Fn: reverse.ModuloLookup},
		{Name: "Bad", Fn: func(v int32) int32 { return v }},
	}

	err := CrossCheck(&bytes.Buffer{}, variants, 256)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad")
	assert.Contains(t, err.Error(), "256")
}

func TestCrossCheck_NoVariants(t *testing.T) {
	err := CrossCheck(&bytes.Buffer{}, nil, 1)
	assert.Error(t, err)
}

func TestCrossCheckAll_StopsAtFirstDisagreement(t *testing.T) {
	calls := 0
	variants := []reverse.Variant{
		{Name: "Counting", Fn: func(v int32) int32 { calls++; return reverse.ModuloLookup(v) }},
		{Name: "BreaksPastTen", Fn: func(v int32) int32 {
			if v > 10 {
				return v
			}
			return reverse.ModuloLookup(v)
		}},
	}

	err := CrossCheckAll(&bytes.Buffer{}, variants, []int32{1, 5, 256, 12_345})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "inputs after the first disagreement must not run")
}

func TestCrossCheckAll_FullCuratedList(t *testing.T) {
	inputs := []int32{
		-1_987_654_321, 256, -256, 12_345, 25, -25, 2, -2, 1, -1, 0, 10, 9,
		1_000_000_003, -1_000_000_003,
	}
	err := CrossCheckAll(&bytes.Buffer{}, reverse.Variants(), inputs)
	assert.NoError(t, err)
}
