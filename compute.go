package elastab

// ComputeOption configures a single Compute call.
type ComputeOption func(*computeOptions)

type computeOptions struct {
	sizeFn     SizeFunc
	startSizes []int
	endSizes   []int
}

// WithSizeFunc sets the size function used to measure cells.
// The default is RuneCount.
func WithSizeFunc(fn SizeFunc) ComputeOption {
	return func(o *computeOptions) {
		if fn != nil {
			o.sizeFn = fn
		}
	}
}

// WithStartSizes seeds the computation with the tab sizes already agreed
// by the lines immediately above the first input line. Use this when
// computing a window of a larger document. The values are final tab
// sizes, not raw cell sizes, and must exclude the last column.
func WithStartSizes(sizes []int) ComputeOption {
	return func(o *computeOptions) {
		o.startSizes = sizes
	}
}

// WithEndSizes folds in the tab sizes of the lines immediately below the
// last input line, as if one more line followed the input. Like
// WithStartSizes, the values are final tab sizes excluding the last
// column.
func WithEndSizes(sizes []int) ComputeOption {
	return func(o *computeOptions) {
		o.endSizes = sizes
	}
}

// Compute returns the tab sizes of the given text block, one width list
// per input line. Each line is a sequence of cells; the last cell of a
// line never participates in alignment, so every width list is one
// shorter than its line (and empty for lines of zero or one cell).
//
// Contiguous lines with cells in the same column share that column's
// width: the reported value is the maximum policy-applied cell size over
// the whole run. A line with fewer cells ends the runs for the columns it
// lacks; the columns of a longer line below start fresh runs. Runs open
// at the top or bottom of the input can be joined to surrounding text
// with WithStartSizes and WithEndSizes.
//
// The computation is a single forward pass, O(total cells). Compute is
// stateless; for repeated edits against a living document use TextBlock,
// which reuses this forward pass incrementally.
func Compute(lines [][]string, stops TabStops, opts ...ComputeOption) [][]int {
	if !stops.valid() {
		panic("elastab: invalid tab stops")
	}

	o := computeOptions{sizeFn: RuneCount}
	for _, opt := range opts {
		opt(&o)
	}

	// Maxima are boxed and shared by every line of a run, so a later line
	// growing a column is seen by the earlier lines that already emitted
	// it. The final values are unboxed only after the whole pass.
	running := make([]*int, 0, len(o.startSizes))
	for _, size := range o.startSizes {
		v := size
		running = append(running, &v)
	}

	grow := func(col, size int) {
		if col >= len(running) {
			v := size
			running = append(running, &v)
			return
		}
		if size > *running[col] {
			*running[col] = size
		}
	}

	boxed := make([][]*int, 0, len(lines))
	for _, line := range lines {
		cols := columnCount(line)
		for col := 0; col < cols; col++ {
			grow(col, stops.TabSize(o.sizeFn(line[col])))
		}
		// A shorter line ends the run for the discarded columns; their
		// boxes stay reachable through the lines that reported them.
		running = running[:cols]
		boxed = append(boxed, append([]*int(nil), running...))
	}

	// End hints behave like one more line following the input.
	for col, size := range o.endSizes {
		grow(col, size)
	}

	sizes := make([][]int, len(boxed))
	for i, row := range boxed {
		sizes[i] = make([]int, len(row))
		for col, v := range row {
			sizes[i][col] = *v
		}
	}
	return sizes
}

// columnCount returns the number of alignment columns of a line: the cell
// count minus the ignored final cell.
func columnCount(line []string) int {
	if len(line) <= 1 {
		return 0
	}
	return len(line) - 1
}
