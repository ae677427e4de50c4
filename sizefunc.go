package elastab

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// SizeFunc measures the rendered size of one cell's text, in view units.
// The library never inspects cell text itself; all measurement goes
// through the injected SizeFunc.
type SizeFunc func(cell string) int

// RuneCount measures a cell by its number of runes. This is the default
// size function and matches plain fixed-width rendering of ASCII text.
func RuneCount(cell string) int {
	return utf8.RuneCountInString(cell)
}

// StringWidth measures a cell by its monospace display width, accounting
// for wide (East Asian) characters and grapheme clusters. Use this when
// rendering to a terminal.
func StringWidth(cell string) int {
	return uniseg.StringWidth(cell)
}
