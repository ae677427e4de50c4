package elastab

import "errors"

// Errors returned when constructing tab stop settings.
var (
	ErrStepSize     = errors.New("step size must be positive")
	ErrNegativeSize = errors.New("margin and min size must be non-negative")
)

// TabStops describes how a cell's measured size becomes a column width.
//
// All values are in view units: whatever unit the caller's size function
// reports (character cells for a terminal, pixels for a measured font).
// The computed width is
//
//	Margin + max(ceil(size/StepSize)*StepSize, MinSize)
//
// Rounding uses a plain ceiling rather than floor+1 so that Margin stays
// independently tunable.
type TabStops struct {
	// Margin is the extra space between columns, excluded from rounding.
	Margin int

	// MinSize is the minimum width of a tab stop, excluding margin.
	MinSize int

	// StepSize is the alignment granularity of tab stops. Must be positive.
	StepSize int
}

// DefaultTabStops returns settings suited to fixed-width terminal output:
// one cell of margin, one cell minimum, single-cell alignment.
func DefaultTabStops() TabStops {
	return TabStops{Margin: 1, MinSize: 1, StepSize: 1}
}

// NewTabStops creates validated tab stop settings.
// Returns ErrStepSize if stepSize is not positive, and ErrNegativeSize if
// margin or minSize is negative.
func NewTabStops(margin, minSize, stepSize int) (TabStops, error) {
	if stepSize <= 0 {
		return TabStops{}, ErrStepSize
	}
	if margin < 0 || minSize < 0 {
		return TabStops{}, ErrNegativeSize
	}
	return TabStops{Margin: margin, MinSize: minSize, StepSize: stepSize}, nil
}

// TabSize returns the minimum tab stop needed to fit a cell of the given
// size, including margin. It is non-decreasing in size.
func (ts TabStops) TabSize(size int) int {
	stepped := (size + ts.StepSize - 1) / ts.StepSize * ts.StepSize
	if stepped < ts.MinSize {
		stepped = ts.MinSize
	}
	return ts.Margin + stepped
}

// valid reports whether the settings can be used for width computation.
func (ts TabStops) valid() bool {
	return ts.StepSize > 0 && ts.Margin >= 0 && ts.MinSize >= 0
}
