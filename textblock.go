package elastab

import (
	"errors"

	"github.com/dshills/elastab/internal/widthset"
)

// ErrIndexOutOfRange is returned for line indices outside the block, or
// for an edit range whose start exceeds its end.
var ErrIndexOutOfRange = errors.New("line index out of range")

// TextBlock maintains elastic tab stop widths for an editable sequence of
// lines. Unlike Compute, which re-scans its whole input, a TextBlock
// updates only the widths an edit could have changed: every run of lines
// agreeing on a column's width shares one width multiset, and an edit
// adjusts the touched multisets in place.
//
// Each line holds one multiset reference per alignment column. Two lines
// reference the same multiset for a column exactly when they are in the
// same run: contiguous, with every line between them having a cell in
// that column. Edits detach the removed lines' contributions, splice,
// seed the inserted lines from the line above, and then rewire the lines
// below only as far as run boundaries actually moved.
//
// A TextBlock is not synchronized. Callers must serialize Edit against
// all other calls on the same block; reads may interleave with reads.
type TextBlock struct {
	stops  TabStops
	sizeFn SizeFunc
	lines  [][]string
	refs   [][]*widthset.Set
}

// BlockOption is a functional option for configuring a TextBlock.
type BlockOption func(*TextBlock)

// WithBlockSizeFunc sets the size function used to measure cells.
// The default is RuneCount.
func WithBlockSizeFunc(fn SizeFunc) BlockOption {
	return func(b *TextBlock) {
		if fn != nil {
			b.sizeFn = fn
		}
	}
}

// NewTextBlock creates a block holding the given lines. The tab stop
// settings and size function are fixed for the block's lifetime.
// Returns ErrStepSize or ErrNegativeSize for invalid settings.
func NewTextBlock(lines [][]string, stops TabStops, opts ...BlockOption) (*TextBlock, error) {
	if stops.StepSize <= 0 {
		return nil, ErrStepSize
	}
	if stops.Margin < 0 || stops.MinSize < 0 {
		return nil, ErrNegativeSize
	}

	b := &TextBlock{stops: stops, sizeFn: RuneCount}
	for _, opt := range opts {
		opt(b)
	}
	b.splice(0, 0, lines)
	return b, nil
}

// Len returns the number of lines in the block.
func (b *TextBlock) Len() int {
	return len(b.lines)
}

// TabStops returns the block's tab stop settings.
func (b *TextBlock) TabStops() TabStops {
	return b.stops
}

// Line returns a copy of the cells of line i.
func (b *TextBlock) Line(i int) ([]string, error) {
	if i < 0 || i >= len(b.lines) {
		return nil, ErrIndexOutOfRange
	}
	return append([]string(nil), b.lines[i]...), nil
}

// Edit replaces the lines in [start, end) with newLines. It is the single
// mutation primitive: start == end inserts, empty newLines deletes, and
// both replace. Negative indices count from the end of the block and are
// resolved before validation. On error no state has changed.
//
// The cost of an edit is proportional to the replaced and inserted lines
// plus the span of following lines whose run membership actually changes,
// never the whole document.
func (b *TextBlock) Edit(start, end int, newLines [][]string) error {
	start = b.resolve(start)
	end = b.resolve(end)
	if start < 0 || start > end || end > len(b.lines) {
		return ErrIndexOutOfRange
	}
	b.splice(start, end, newLines)
	return nil
}

// Widths returns one width list per line for the whole block.
// Each list excludes the line's final cell.
func (b *TextBlock) Widths() [][]int {
	sizes, err := b.WidthsRange(0, len(b.lines))
	if err != nil {
		panic("elastab: " + err.Error())
	}
	return sizes
}

// WidthsRange returns one width list per line in [start, end).
func (b *TextBlock) WidthsRange(start, end int) ([][]int, error) {
	if start < 0 || start > end || end > len(b.lines) {
		return nil, ErrIndexOutOfRange
	}

	sizes := make([][]int, 0, end-start)
	for i := start; i < end; i++ {
		row := make([]int, len(b.refs[i]))
		for col, set := range b.refs[i] {
			max, err := set.Max()
			if err != nil {
				panic("elastab: width set for a tracked column is empty")
			}
			row[col] = max
		}
		sizes = append(sizes, row)
	}
	return sizes, nil
}

// List-style convenience wrappers, all expressed through Edit.

// Append adds a line at the end of the block.
func (b *TextBlock) Append(line []string) {
	b.splice(len(b.lines), len(b.lines), [][]string{line})
}

// Extend adds lines at the end of the block.
func (b *TextBlock) Extend(lines [][]string) {
	b.splice(len(b.lines), len(b.lines), lines)
}

// Insert adds a line before index i.
func (b *TextBlock) Insert(i int, line []string) error {
	return b.Edit(i, i, [][]string{line})
}

// Delete removes line i.
func (b *TextBlock) Delete(i int) error {
	i = b.resolve(i)
	return b.Edit(i, i+1, nil)
}

// DeleteRange removes the lines in [start, end).
func (b *TextBlock) DeleteRange(start, end int) error {
	return b.Edit(start, end, nil)
}

// SetLine replaces line i.
func (b *TextBlock) SetLine(i int, line []string) error {
	i = b.resolve(i)
	return b.Edit(i, i+1, [][]string{line})
}

// resolve maps a negative index to one counted from the end of the block.
func (b *TextBlock) resolve(i int) int {
	if i < 0 {
		return i + len(b.lines)
	}
	return i
}

// width returns the policy-applied size of one cell.
func (b *TextBlock) width(cell string) int {
	return b.stops.TabSize(b.sizeFn(cell))
}

// splice implements Edit on validated indices. It proceeds in four steps:
// detach the removed range, splice the line and reference storage, seed
// the inserted lines forward from the line above, and rewire following
// lines whose run membership the edit changed.
func (b *TextBlock) splice(start, end int, newLines [][]string) {
	// Detach: take each removed line's contribution out of its multisets.
	for i := start; i < end; i++ {
		for col, set := range b.refs[i] {
			if err := set.Remove(b.width(b.lines[i][col])); err != nil {
				panic("elastab: detach: " + err.Error())
			}
		}
	}

	// Splice lines and reference lists. Cells are copied so later caller
	// mutations of the input cannot desynchronize the tracked widths.
	copied := make([][]string, len(newLines))
	for i, line := range newLines {
		copied[i] = append([]string(nil), line...)
	}
	b.lines = spliceLines(b.lines, start, end, copied)
	b.refs = spliceRefs(b.refs, start, end, make([][]*widthset.Set, len(newLines)))

	// Forward propagation: each inserted line joins the runs carried down
	// from the line above it, or opens new single-member runs for columns
	// the carried list lacks. Truncating the carried list to the line's
	// column count ends the runs for the discarded columns.
	var carried []*widthset.Set
	if start > 0 {
		carried = append([]*widthset.Set(nil), b.refs[start-1]...)
	}
	for i := start; i < start+len(newLines); i++ {
		cols := columnCount(b.lines[i])
		refs := make([]*widthset.Set, 0, cols)
		for col := 0; col < cols; col++ {
			w := b.width(b.lines[i][col])
			if col < len(carried) {
				carried[col].Insert(w)
				refs = append(refs, carried[col])
			} else {
				set := widthset.New()
				set.Insert(w)
				refs = append(refs, set)
			}
		}
		b.refs[i] = refs
		carried = append([]*widthset.Set(nil), refs...)
	}

	// Reconciliation: the edit may have split or merged runs at its tail,
	// so following lines can need re-pointing from their old multisets to
	// the carried ones. The walk is bounded: it stops at the first line
	// whose column count drops to zero, or the first line that needed no
	// rewiring, beyond which the old runs are already correctly disjoint.
	tail := start + len(newLines)
	if tail >= len(b.lines) {
		return
	}
	maxCols := columnCount(b.lines[tail])
	for i := tail; i < len(b.lines); i++ {
		if c := columnCount(b.lines[i]); c < maxCols {
			maxCols = c
		}
		if maxCols == 0 {
			break
		}

		changed := false
		for col := 0; col < maxCols; col++ {
			if col >= len(carried) {
				carried = append(carried, widthset.New())
			}
			if b.refs[i][col] == carried[col] {
				continue
			}
			w := b.width(b.lines[i][col])
			if err := b.refs[i][col].Remove(w); err != nil {
				panic("elastab: rewire: " + err.Error())
			}
			carried[col].Insert(w)
			b.refs[i][col] = carried[col]
			changed = true
		}
		if !changed {
			break
		}
	}
}

// spliceLines replaces s[start:end] with repl.
func spliceLines(s [][]string, start, end int, repl [][]string) [][]string {
	out := make([][]string, 0, len(s)-(end-start)+len(repl))
	out = append(out, s[:start]...)
	out = append(out, repl...)
	out = append(out, s[end:]...)
	return out
}

// spliceRefs replaces s[start:end] with repl.
func spliceRefs(s [][]*widthset.Set, start, end int, repl [][]*widthset.Set) [][]*widthset.Set {
	out := make([][]*widthset.Set, 0, len(s)-(end-start)+len(repl))
	out = append(out, s[:start]...)
	out = append(out, repl...)
	out = append(out, s[end:]...)
	return out
}
