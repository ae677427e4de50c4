// Package align turns delimiter-separated text into cell lines, computes
// elastic tab stop widths for them, and renders the result padded with
// spaces. It is the text-facing side of the library: the core width
// engine only ever sees measured sizes.
package align

import (
	"strings"

	"github.com/dshills/elastab"
)

// Split breaks text into lines and cells. Lines are separated by newlines
// (a trailing "\r" per line is dropped so CRLF input behaves), cells by
// the given delimiter rune.
func Split(text string, delim rune) [][]string {
	rawLines := strings.Split(text, "\n")
	lines := make([][]string, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")
		lines[i] = strings.Split(raw, string(delim))
	}
	return lines
}

// Join reassembles the cells of one line with the given delimiter.
func Join(cells []string, delim rune) string {
	return strings.Join(cells, string(delim))
}

// Render pads each non-final cell of every line with spaces up to its
// computed width. widths must have one row per line, as returned by
// elastab.Compute or TextBlock.Widths for the same lines and size
// function. Cells beyond the width list (the final cell of each line)
// are emitted unpadded.
func Render(lines [][]string, widths [][]int, sizeFn elastab.SizeFunc) string {
	if sizeFn == nil {
		sizeFn = elastab.RuneCount
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for col, cell := range line {
			sb.WriteString(cell)
			if i < len(widths) && col < len(widths[i]) {
				for pad := widths[i][col] - sizeFn(cell); pad > 0; pad-- {
					sb.WriteByte(' ')
				}
			}
		}
	}
	return sb.String()
}

// Align splits text on delim, computes elastic tab stop widths, and
// returns the text re-rendered with every column padded to alignment.
func Align(text string, stops elastab.TabStops, delim rune, sizeFn elastab.SizeFunc) string {
	if sizeFn == nil {
		sizeFn = elastab.RuneCount
	}
	lines := Split(text, delim)
	widths := elastab.Compute(lines, stops, elastab.WithSizeFunc(sizeFn))
	return Render(lines, widths, sizeFn)
}
