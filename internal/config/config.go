// Package config loads settings for the eltab commands from TOML files.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/elastab"
)

// Settings holds the tab stop and delimiter configuration shared by the
// eltab commands.
type Settings struct {
	// Margin is the extra space between columns, in view units.
	Margin int `toml:"margin"`

	// MinSize is the minimum tab stop size, excluding margin.
	MinSize int `toml:"min_size"`

	// StepSize is the alignment granularity of tab stops.
	StepSize int `toml:"step_size"`

	// Delimiter separates cells within a line. Must be a single rune.
	Delimiter string `toml:"delimiter"`
}

// Default returns the settings used when no config file is present:
// terminal-style tab stops with tab-separated cells.
func Default() Settings {
	return Settings{
		Margin:    1,
		MinSize:   1,
		StepSize:  1,
		Delimiter: "\t",
	}
}

// Load reads settings from a TOML file, applied over Default, so a
// partial file only overrides what it names. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config file %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the settings can drive a width computation.
func (s Settings) Validate() error {
	if _, err := s.TabStops(); err != nil {
		return err
	}
	if utf8.RuneCountInString(s.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}
	return nil
}

// TabStops converts the settings into a validated tab stop policy.
func (s Settings) TabStops() (elastab.TabStops, error) {
	return elastab.NewTabStops(s.Margin, s.MinSize, s.StepSize)
}

// DelimRune returns the delimiter as a rune. Call Validate first; an
// invalid delimiter falls back to tab.
func (s Settings) DelimRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	if r == utf8.RuneError {
		return '\t'
	}
	return r
}
