package align

import (
	"reflect"
	"testing"

	"github.com/dshills/elastab"
)

func TestSplit(t *testing.T) {
	got := Split("a\tb\nc\td\te", '\t')

	want := [][]string{
		{"a", "b"},
		{"c", "d", "e"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitCRLF(t *testing.T) {
	got := Split("a\tb\r\nc\td\r", '\t')

	want := [][]string{
		{"a", "b"},
		{"c", "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitNoDelimiter(t *testing.T) {
	got := Split("plain line", '\t')

	want := [][]string{{"plain line"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"a", "b", "c"}, '\t'); got != "a\tb\tc" {
		t.Errorf("expected %q, got %q", "a\tb\tc", got)
	}
}

func TestAlign(t *testing.T) {
	text := "it\tis\ta\nsmall\tworld"
	got := Align(text, elastab.DefaultTabStops(), '\t', nil)

	// Widths are [[6,3],[6]]: "it" pads to 6, "is" to 3, "small" to 6.
	want := "it    is a\nsmall world"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAlignBlankLineSplitsBlock(t *testing.T) {
	text := "it\tis\ta\n\nsmall\tworld"
	got := Align(text, elastab.DefaultTabStops(), '\t', nil)

	want := "it is a\n\nsmall world"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAlignPreservesFinalCells(t *testing.T) {
	// The final cell of a line is never padded, so trailing text keeps
	// its exact content.
	text := "x\ttrailing   spaces  "
	got := Align(text, elastab.DefaultTabStops(), '\t', nil)

	want := "x trailing   spaces  "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderWideCells(t *testing.T) {
	lines := [][]string{
		{"世界", "x"},
		{"ab", "y"},
	}
	widths := elastab.Compute(lines, elastab.DefaultTabStops(),
		elastab.WithSizeFunc(elastab.StringWidth))

	got := Render(lines, widths, elastab.StringWidth)

	// "世界" occupies 4 cells, so both cells pad to width 5.
	want := "世界 x\nab   y"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
