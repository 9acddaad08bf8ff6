// Package ui provides shared rendering helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle is applied to background content behind modals. Existing
// ANSI codes are stripped first because SGR 2 (faint) doesn't combine
// reliably with color codes across terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// blockWidth returns the maximum visual width of the lines.
func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// spliceRow overlays modalLine onto bgLine starting at column startX.
// The background segments on either side are dimmed.
func spliceRow(bgLine, modalLine string, startX, modalWidth, totalWidth int) string {
	var out strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		leftWidth := ansi.StringWidth(left)
		out.WriteString(DimStyle.Render(left))
		if leftWidth < startX {
			out.WriteString(strings.Repeat(" ", startX-leftWidth))
		}
	}

	out.WriteString(modalLine)

	rightX := startX + modalWidth
	if rightX < totalWidth && bgWidth > rightX {
		right := ansi.Cut(stripped, rightX, bgWidth)
		out.WriteString(DimStyle.Render(right))
	}

	return out.String()
}

// OverlayModal composites a modal centered over a dimmed background.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := blockWidth(modalLines)
	modalHeight := len(modalLines)
	startX := (width - modalWidth) / 2
	startY := (height - modalHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		row := y - startY
		if row >= 0 && row < modalHeight {
			rows = append(rows, spliceRow(bgLine, modalLines[row], startX, modalWidth, width))
		} else {
			rows = append(rows, dimLine(bgLine))
		}
	}

	return strings.Join(rows, "\n")
}
