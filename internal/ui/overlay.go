package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/imagecheck/qcreview/internal/theme"
)

// dimLines strips styling from background, dims it and pads it to fill the
// screen
func dimLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i := range lines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(lines[i]))
		if visible := lipgloss.Width(dimmed); visible < width {
			dimmed += strings.Repeat(" ", width-visible)
		}
		lines[i] = dimmed
	}
	return lines
}

// bottomAnchoredOverlay renders an overlay anchored to the bottom of a dimmed background.
// The background content is visible but dimmed, with the overlay rendered at the bottom.
func bottomAnchoredOverlay(background, overlay string, width, height, overlayHeight int) string {
	bgLines := dimLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-overlayHeight, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}

	return strings.Join(bgLines, "\n")
}
