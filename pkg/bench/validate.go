// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package bench

import (
	"errors"
	"fmt"
	"io"

	"github.com/AleutianAI/revbench/pkg/reverse"
)

// CrossCheck runs every variant against value, writes one labeled result
// line per variant to w followed by a blank line, and verifies that all
// results agree.
//
// Disagreement is a logic defect in a variant, not a runtime condition:
// the returned error identifies the diverging pair and the caller is
// expected to abort, since timing figures for inequivalent functions are
// meaningless.
func CrossCheck(w io.Writer, variants []reverse.Variant, value int32) error {
	if len(variants) == 0 {
		return errors.New("no variants to check")
	}

	width := 0
	for _, v := range variants {
		if len(v.Name) > width {
			width = len(v.Name)
		}
	}

	results := make([]int32, len(variants))
	for i, v := range variants {
		results[i] = v.Fn(value)
		fmt.Fprintf(w, "[%-*s] Inverting %d = %d\n", width, v.Name, value, results[i])
	}
	fmt.Fprintln(w)

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			return fmt.Errorf("variant disagreement on %d: %s returned %d, %s returned %d",
				value, variants[0].Name, results[0], variants[i].Name, results[i])
		}
	}
	return nil
}

// CrossCheckAll runs CrossCheck for each input in order, stopping at the
// first disagreement.
func CrossCheckAll(w io.Writer, variants []reverse.Variant, inputs []int32) error {
	for _, value := range inputs {
		if err := CrossCheck(w, variants, value); err != nil {
			return err
		}
	}
	return nil
}
