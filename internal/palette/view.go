package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ripplenote/internal/styles"
)

// keyColumnWidth is the fixed width for the key column so entries
// align regardless of key length.
const keyColumnWidth = 12

var (
	paletteBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Primary).
			Background(styles.BgSecondary).
			Padding(1, 2)

	entryNormal = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	entrySelected = lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Background(styles.BgTertiary)

	entryName = lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Width(20)

	entryDesc = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	matchHighlight = lipgloss.NewStyle().
			Foreground(styles.Primary).
			Bold(true)
)

// View renders the command palette.
func (m Model) View() string {
	var b strings.Builder

	width := min(72, m.width-4)
	if width < 40 {
		width = 40
	}
	contentWidth := width - 4

	promptPrefix := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render(">")
	escChip := styles.KeyHint.Render("esc")
	inputWidth := contentWidth - lipgloss.Width(promptPrefix) - lipgloss.Width(escChip) - 3
	paddedInput := lipgloss.NewStyle().Width(inputWidth).Render(m.textInput.View())
	b.WriteString(fmt.Sprintf("%s %s %s", promptPrefix, paddedInput, escChip))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", contentWidth))
	b.WriteString("\n")

	visibleEnd := m.offset + maxVisibleEntries
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}

	if m.offset > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  ↑ %d more above", m.offset)))
		b.WriteString("\n")
	}

	for i := m.offset; i < visibleEnd; i++ {
		b.WriteString(m.renderEntry(m.filtered[i], i == m.cursor, contentWidth))
		b.WriteString("\n")
	}

	if visibleEnd < len(m.filtered) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  ↓ %d more below", len(m.filtered)-visibleEnd)))
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("No matching commands"))
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	return paletteBox.Width(width).Render(content)
}

// renderEntry renders a single palette entry.
func (m Model) renderEntry(entry Entry, selected bool, maxWidth int) string {
	keyStr := ""
	if entry.Key != "" {
		keyStr = styles.KeyHint.Render(entry.Key)
	}
	keyWidth := lipgloss.Width(keyStr)
	if keyWidth < keyColumnWidth {
		keyStr = keyStr + strings.Repeat(" ", keyColumnWidth-keyWidth)
	}

	nameStr := entryName.Render(highlightMatches(entry.Name, entry.MatchRanges))

	descWidth := maxWidth - keyColumnWidth - 20 - 4
	desc := entry.Description
	if descWidth > 3 && len(desc) > descWidth {
		desc = desc[:descWidth-3] + "..."
	}
	descStr := entryDesc.Render(desc)

	line := fmt.Sprintf("  %s %s %s", keyStr, nameStr, descStr)
	paddedLine := lipgloss.NewStyle().Width(maxWidth).Render(line)

	if selected {
		return entrySelected.Width(maxWidth).Render(paddedLine)
	}
	return entryNormal.Render(paddedLine)
}

// highlightMatches applies highlighting to matched byte ranges.
func highlightMatches(text string, ranges []MatchRange) string {
	if len(ranges) == 0 {
		return text
	}

	var result strings.Builder
	lastEnd := 0
	for _, r := range ranges {
		if r.Start > lastEnd {
			result.WriteString(text[lastEnd:r.Start])
		}
		if r.End <= len(text) {
			result.WriteString(matchHighlight.Render(text[r.Start:r.End]))
		}
		lastEnd = r.End
	}
	if lastEnd < len(text) {
		result.WriteString(text[lastEnd:])
	}
	return result.String()
}
