// Package main is the entry point for the eltab interactive demo.
//
// The demo opens a file in a minimal terminal editor that keeps columns
// elastically aligned while you type. Every keystroke becomes a line
// edit against a TextBlock, so the width recomputation on display is the
// incremental path, not a full re-scan.
//
// Keys: arrows/Home/End move, Enter splits, Backspace/Delete edit,
// Tab starts a new column, Ctrl+S saves, Esc or Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/elastab"
	"github.com/dshills/elastab/internal/align"
	"github.com/dshills/elastab/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a TOML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eltab-demo [options] file\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("eltab-demo %s (%s, built %s)\n", version, commit, date)
		return 0
	}
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings = loaded
	}
	stops, err := settings.TabStops()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	d, err := newDemo(path, stops, settings.DelimRune())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	d.screen = screen
	d.loop()
	return 0
}

// demo is the editor state: a TextBlock plus a cursor.
//
// The cursor column is a rune offset into the line's raw text (cells
// joined by the delimiter), which keeps editing independent of how the
// cells are currently padded on screen.
type demo struct {
	screen tcell.Screen
	block  *elastab.TextBlock
	delim  rune
	path   string

	line int // cursor line
	col  int // cursor rune offset in the raw line
	top  int // first visible line
}

func newDemo(path string, stops elastab.TabStops, delim rune) (*demo, error) {
	text := ""
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else {
		text = string(data)
	}

	block, err := elastab.NewTextBlock(align.Split(text, delim), stops,
		elastab.WithBlockSizeFunc(elastab.StringWidth))
	if err != nil {
		return nil, err
	}
	if block.Len() == 0 {
		block.Append([]string{""})
	}

	return &demo{block: block, delim: delim, path: path}, nil
}

func (d *demo) loop() {
	for {
		d.render()
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key event. Returns false to quit.
func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlS:
		d.save()
	case tcell.KeyUp:
		d.moveLine(-1)
	case tcell.KeyDown:
		d.moveLine(1)
	case tcell.KeyLeft:
		d.moveCol(-1)
	case tcell.KeyRight:
		d.moveCol(1)
	case tcell.KeyHome:
		d.col = 0
	case tcell.KeyEnd:
		d.col = len(d.rawRunes(d.line))
	case tcell.KeyEnter:
		d.splitLine()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.backspace()
	case tcell.KeyDelete:
		d.deleteForward()
	case tcell.KeyTab:
		d.insertRune(d.delim)
	case tcell.KeyRune:
		d.insertRune(ev.Rune())
	}
	return true
}

// raw returns the unpadded text of line i.
func (d *demo) raw(i int) string {
	cells, err := d.block.Line(i)
	if err != nil {
		panic("eltab-demo: " + err.Error())
	}
	return align.Join(cells, d.delim)
}

func (d *demo) rawRunes(i int) []rune {
	return []rune(d.raw(i))
}

// setRaw replaces line i with the cells of the given raw text.
func (d *demo) setRaw(i int, text string) {
	if err := d.block.SetLine(i, strings.Split(text, string(d.delim))); err != nil {
		panic("eltab-demo: " + err.Error())
	}
}

func (d *demo) moveLine(delta int) {
	d.line += delta
	if d.line < 0 {
		d.line = 0
	}
	if d.line >= d.block.Len() {
		d.line = d.block.Len() - 1
	}
	if n := len(d.rawRunes(d.line)); d.col > n {
		d.col = n
	}
}

func (d *demo) moveCol(delta int) {
	d.col += delta
	if d.col < 0 {
		if d.line > 0 {
			d.line--
			d.col = len(d.rawRunes(d.line))
		} else {
			d.col = 0
		}
		return
	}
	if n := len(d.rawRunes(d.line)); d.col > n {
		if d.line < d.block.Len()-1 {
			d.line++
			d.col = 0
		} else {
			d.col = n
		}
	}
}

func (d *demo) insertRune(r rune) {
	runes := d.rawRunes(d.line)
	next := make([]rune, 0, len(runes)+1)
	next = append(next, runes[:d.col]...)
	next = append(next, r)
	next = append(next, runes[d.col:]...)
	d.setRaw(d.line, string(next))
	d.col++
}

func (d *demo) splitLine() {
	runes := d.rawRunes(d.line)
	left := string(runes[:d.col])
	right := string(runes[d.col:])
	err := d.block.Edit(d.line, d.line+1, [][]string{
		strings.Split(left, string(d.delim)),
		strings.Split(right, string(d.delim)),
	})
	if err != nil {
		panic("eltab-demo: " + err.Error())
	}
	d.line++
	d.col = 0
}

func (d *demo) backspace() {
	if d.col > 0 {
		runes := d.rawRunes(d.line)
		d.setRaw(d.line, string(runes[:d.col-1])+string(runes[d.col:]))
		d.col--
		return
	}
	if d.line == 0 {
		return
	}
	d.joinLines(d.line - 1)
}

func (d *demo) deleteForward() {
	runes := d.rawRunes(d.line)
	if d.col < len(runes) {
		d.setRaw(d.line, string(runes[:d.col])+string(runes[d.col+1:]))
		return
	}
	if d.line < d.block.Len()-1 {
		d.joinLines(d.line)
	}
}

// joinLines merges line i and i+1, leaving the cursor at the join point.
func (d *demo) joinLines(i int) {
	joined := d.raw(i) + d.raw(i+1)
	at := len(d.rawRunes(i))
	if err := d.block.Edit(i, i+2, [][]string{strings.Split(joined, string(d.delim))}); err != nil {
		panic("eltab-demo: " + err.Error())
	}
	d.line = i
	d.col = at
}

func (d *demo) save() {
	var sb strings.Builder
	for i := 0; i < d.block.Len(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.raw(i))
	}
	if err := os.WriteFile(d.path, []byte(sb.String()), 0o644); err != nil {
		// Surfaced on the status line at next render; keep editing.
		return
	}
}

func (d *demo) render() {
	width, height := d.screen.Size()
	if height < 2 {
		return
	}
	textRows := height - 1

	// Keep the cursor line visible.
	if d.line < d.top {
		d.top = d.line
	}
	if d.line >= d.top+textRows {
		d.top = d.line - textRows + 1
	}

	end := d.top + textRows
	if end > d.block.Len() {
		end = d.block.Len()
	}
	widths, err := d.block.WidthsRange(d.top, end)
	if err != nil {
		panic("eltab-demo: " + err.Error())
	}

	d.screen.Clear()
	style := tcell.StyleDefault
	for row := 0; row < end-d.top; row++ {
		cells, err := d.block.Line(d.top + row)
		if err != nil {
			panic("eltab-demo: " + err.Error())
		}
		x := 0
		for col, cell := range cells {
			for _, r := range cell {
				if x >= width {
					break
				}
				d.screen.SetContent(x, row, r, nil, style)
				x += elastab.StringWidth(string(r))
			}
			if col < len(widths[row]) {
				cellEnd := x
				x += widths[row][col] - elastab.StringWidth(cell)
				for fill := cellEnd; fill < x && fill < width; fill++ {
					d.screen.SetContent(fill, row, ' ', nil, style)
				}
			}
		}
	}

	d.renderStatus(width, height-1)

	cells, _ := d.block.Line(d.line)
	rowWidths, _ := d.block.WidthsRange(d.line, d.line+1)
	d.screen.ShowCursor(cursorX(cells, rowWidths[0], d.col), d.line-d.top)
	d.screen.Show()
}

func (d *demo) renderStatus(width, y int) {
	status := []rune(fmt.Sprintf(" %s  %d:%d  (Ctrl+S save, Esc quit)", d.path, d.line+1, d.col+1))
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		d.screen.SetContent(x, y, r, nil, style)
	}
}

// cursorX maps a rune offset in a line's raw text to its screen column,
// accounting for the padding each non-final cell receives.
func cursorX(cells []string, widths []int, col int) int {
	x := 0
	seen := 0
	for i, cell := range cells {
		runes := []rune(cell)
		if col <= seen+len(runes) {
			return x + elastab.StringWidth(string(runes[:col-seen]))
		}
		seen += len(runes) + 1 // +1 for the delimiter
		if i < len(widths) {
			x += widths[i]
		} else {
			x += elastab.StringWidth(cell)
		}
	}
	return x
}
