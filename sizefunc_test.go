package elastab

import "testing"

func TestRuneCount(t *testing.T) {
	tests := []struct {
		cell     string
		expected int
	}{
		{"", 0},
		{"Hello", 5},
		{"héllo", 5},
	}

	for _, tt := range tests {
		if got := RuneCount(tt.cell); got != tt.expected {
			t.Errorf("RuneCount(%q): expected %d, got %d", tt.cell, tt.expected, got)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		cell     string
		expected int
	}{
		{"", 0},
		{"Hello", 5},
		{"世界", 4}, // wide CJK characters occupy two cells each
	}

	for _, tt := range tests {
		if got := StringWidth(tt.cell); got != tt.expected {
			t.Errorf("StringWidth(%q): expected %d, got %d", tt.cell, tt.expected, got)
		}
	}
}
