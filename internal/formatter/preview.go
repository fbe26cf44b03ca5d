// Package formatter renders fixed-width previews of converter output.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps a preview cell; longer values (descriptions, image
// lists) are cut with an ellipsis.
const maxCellWidth = 36

// PreviewTable renders a header and rows as an aligned fixed-width table
// using display width, so wide runes line up too. Rows shorter than the
// header are padded with empty cells.
func PreviewTable(header []string, rows [][]string) string {
	if len(header) == 0 {
		return ""
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, clipCells(header))

	for _, row := range rows {
		table = append(table, clipCells(row))
	}

	widths := make([]int, len(header))

	for _, row := range table {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	for rowIdx, row := range table {
		writeRow(&sb, row, widths)

		if rowIdx == 0 {
			writeSeparator(&sb, widths)
		}
	}

	return sb.String()
}

func clipCells(cells []string) []string {
	clipped := make([]string, len(cells))

	for i, cell := range cells {
		cell = strings.Join(strings.Fields(cell), " ")
		clipped[i] = runewidth.Truncate(cell, maxCellWidth, "...")
	}

	return clipped
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}

		sb.WriteString(cell)

		if i < len(widths)-1 {
			if padding := width - runewidth.StringWidth(cell); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString("  ")
		}
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, widths []int) {
	for i, width := range widths {
		sb.WriteString(strings.Repeat("-", width))

		if i < len(widths)-1 {
			sb.WriteString("  ")
		}
	}

	sb.WriteString("\n")
}
