package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws fg over base with its top-left corner at column x, row y.
// Rows of fg falling outside base are dropped.
func overlay(base, fg string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		b := baseLines[row]
		left := ansi.Truncate(b, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(b, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func blankFrame(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// padLine truncates or pads line to exactly width cells
func padLine(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
