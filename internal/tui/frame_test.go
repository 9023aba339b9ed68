// ABOUTME: Test to verify header/footer width alignment
// ABOUTME: Ensures frame renders at correct terminal width

package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestFrameAlignment(t *testing.T) {
	widths := []int{80, 100, 120}

	for _, targetWidth := range widths {
		t.Run(fmt.Sprintf("width_%d", targetWidth), func(t *testing.T) {
			app := newTestApp(t, "USER")

			// Simulate window size message
			model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
			app = model.(*App)

			// Get the view
			view := app.View()

			lines := strings.Split(view, "\n")
			headerFound := false
			footerFound := false

			// Frame clamps to a minimum of 80 columns for usability
			expectedWidth := targetWidth
			if expectedWidth < minTerminalWidth {
				expectedWidth = minTerminalWidth
			}

			for _, line := range lines {
				// Header starts with ╭ at the beginning of the line
				if strings.HasPrefix(line, "╭") {
					headerFound = true
					w := lipgloss.Width(line)
					if w != expectedWidth {
						t.Errorf("Header width mismatch at width %d: expected %d, got %d", targetWidth, expectedWidth, w)
						t.Logf("Header line: %q", line)
					}
				}

				// Footer contains ╰ (may have leading spaces from content centering)
				if strings.Contains(line, "╰") {
					footerFound = true
					footerIdx := strings.Index(line, "╰")
					footerLine := line[footerIdx:]
					w := lipgloss.Width(footerLine)
					if w != expectedWidth {
						t.Errorf("Footer width mismatch at width %d: expected %d, got %d", targetWidth, expectedWidth, w)
						t.Logf("Footer line: %q", footerLine)
					}
				}
			}

			if !headerFound {
				t.Error("header line not found in view")
			}
			if !footerFound {
				t.Error("footer line not found in view")
			}
		})
	}
}
