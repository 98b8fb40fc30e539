// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ResultsTable renders an aligned table of headers and rows.
//
// With color enabled the table uses the teal palette (rounded border,
// highlighted header, first column bolded). Without color it degrades to
// a plain bordered table so output stays readable in pipes and logs.
func ResultsTable(headers []string, rows [][]string, color bool) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	firstColStyle := cellStyle
	borderStyle := lipgloss.NewStyle()

	if color {
		headerStyle = headerStyle.Foreground(ColorTealBright)
		firstColStyle = firstColStyle.Bold(true).Foreground(ColorTealPrimary)
		borderStyle = borderStyle.Foreground(ColorTealDeep)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return firstColStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}
