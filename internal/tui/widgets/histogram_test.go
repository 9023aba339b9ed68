// ABOUTME: Tests for the histogram widget
// ABOUTME: Verifies bar scaling, cell width, and empty-input handling

package widgets

import (
	"strings"
	"testing"
)

func TestHistogram_ScalesAgainstLargestCount(t *testing.T) {
	out := Histogram([]int{0, 4, 8}, 1, "")

	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("expected 3 cells, got %d: %q", len(runes), out)
	}
	if runes[0] != '▁' {
		t.Errorf("empty bucket should render the lowest block, got %q", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("largest bucket should render the tallest block, got %q", runes[2])
	}
	if runes[1] == runes[0] || runes[1] == runes[2] {
		t.Errorf("middle bucket should fall between, got %q", runes[1])
	}
}

func TestHistogram_RepeatsCellWidth(t *testing.T) {
	out := Histogram([]int{3}, 2, "")

	if out != "██" {
		t.Errorf("single max bucket at width 2 = %q, want %q", out, "██")
	}
}

func TestHistogram_AllZero(t *testing.T) {
	out := Histogram([]int{0, 0}, 1, "")

	if !strings.Contains(out, "▁▁") {
		t.Errorf("all-zero counts should render a flat baseline, got %q", out)
	}
}

func TestHistogram_Empty(t *testing.T) {
	if out := Histogram(nil, 2, ""); out != "" {
		t.Errorf("expected empty output for no counts, got %q", out)
	}
}
