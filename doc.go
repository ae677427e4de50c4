// Package elastab computes elastic tab stop widths for blocks of
// cell-delimited text, so that cells in the same column line up vertically
// across contiguous lines.
//
// The package provides:
//
//   - TabStops: the policy turning a measured cell size into a column
//     width (margin, minimum size, step rounding)
//   - Compute: a stateless one-shot computation over a full line
//     sequence, with optional boundary hints for windowed documents
//   - TextBlock: an editable block that keeps widths up to date across
//     arbitrary line edits without re-scanning the whole document
//
// Cell measurement is injected: the library consumes numeric sizes from a
// SizeFunc and never interprets text content itself. RuneCount and
// StringWidth are provided for the common fixed-width cases.
//
// Basic usage:
//
//	lines := [][]string{
//	    {"it", "is", "a"},
//	    {"small", "world"},
//	}
//	sizes := elastab.Compute(lines, elastab.DefaultTabStops())
//	// sizes == [][]int{{6, 3}, {6}}
//
// Incremental usage:
//
//	block, _ := elastab.NewTextBlock(lines, elastab.DefaultTabStops())
//	block.Edit(1, 1, [][]string{{""}}) // insert a blank line between the two
//	sizes = block.Widths()
//	// sizes == [][]int{{3, 3}, {}, {6}}
//
// The last cell of every line never participates in alignment, so each
// width list is one element shorter than its line.
//
// Thread Safety:
//
// A TextBlock is not internally synchronized. Callers must serialize Edit
// against every other call on the same block; read-only calls may safely
// run concurrently with each other.
package elastab
