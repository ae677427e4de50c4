// Package main is the entry point for the eltab aligner.
//
// eltab reads delimiter-separated text from a file or stdin, computes
// elastic tab stop widths, and writes the text back with every column
// padded to alignment. With -watch it keeps running and re-aligns the
// input file on every save.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/elastab"
	"github.com/dshills/elastab/internal/align"
	"github.com/dshills/elastab/internal/config"
	"github.com/dshills/elastab/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	inputPath   string
	outputPath  string
	watchInput  bool
	useRunes    bool
	showVersion bool

	// Flag overrides applied on top of the config file.
	margin   int
	minSize  int
	stepSize int
	delim    string
	flagsSet map[string]bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("eltab %s (%s, built %s)\n", version, commit, date)
		return 0
	}

	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	stops, err := settings.TabStops()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sizeFn := elastab.StringWidth
	if opts.useRunes {
		sizeFn = elastab.RuneCount
	}

	if opts.watchInput {
		if opts.inputPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires an input file")
			return 1
		}
		return runWatch(opts, stops, settings.DelimRune(), sizeFn)
	}

	text, err := readInput(opts.inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := writeOutput(opts.outputPath, align.Align(text, stops, settings.DelimRune(), sizeFn)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runWatch aligns the input once, then re-aligns on every write to it
// until interrupted.
func runWatch(opts options, stops elastab.TabStops, delim rune, sizeFn elastab.SizeFunc) int {
	alignOnce := func() {
		text, err := readInput(opts.inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if err := writeOutput(opts.outputPath, align.Align(text, stops, delim, sizeFn)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	w, err := watch.New(opts.inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", opts.inputPath, err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	alignOnce()
	for {
		select {
		case <-w.Events():
			alignOnce()
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "Error: watcher: %v\n", err)
		case <-signals:
			return 0
		}
	}
}

func parseFlags() options {
	opts := options{flagsSet: make(map[string]bool)}

	flag.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&opts.outputPath, "o", "", "write output to file instead of stdout")
	flag.BoolVar(&opts.watchInput, "watch", false, "keep running and re-align on input changes")
	flag.BoolVar(&opts.useRunes, "runes", false, "measure cells by rune count instead of display width")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.IntVar(&opts.margin, "margin", 1, "extra space between columns")
	flag.IntVar(&opts.minSize, "min", 1, "minimum tab stop size, excluding margin")
	flag.IntVar(&opts.stepSize, "step", 1, "tab stop alignment granularity")
	flag.StringVar(&opts.delim, "delim", "\t", "cell delimiter")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eltab [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Aligns delimiter-separated text using elastic tab stops.\n")
		fmt.Fprintf(os.Stderr, "Reads stdin when no file is given.\n\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	flag.Visit(func(f *flag.Flag) { opts.flagsSet[f.Name] = true })

	if flag.NArg() > 0 {
		opts.inputPath = flag.Arg(0)
	}
	return opts
}

// loadSettings merges the config file with explicitly set flags; flags
// win over the file, the file wins over defaults.
func loadSettings(opts options) (config.Settings, error) {
	settings := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	if opts.flagsSet["margin"] {
		settings.Margin = opts.margin
	}
	if opts.flagsSet["min"] {
		settings.MinSize = opts.minSize
	}
	if opts.flagsSet["step"] {
		settings.StepSize = opts.stepSize
	}
	if opts.flagsSet["delim"] {
		settings.Delimiter = opts.delim
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
