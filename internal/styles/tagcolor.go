package styles

import (
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
)

// tagPalette holds the accent colors used for tag badges.
var tagPalette = []lipgloss.Color{
	"#7C3AED", // purple
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
}

// TagColor returns a stable badge color for a tag. The same tag always
// hashes to the same color across runs.
func TagColor(tag string) lipgloss.Color {
	return tagPalette[xxhash.Sum64String(tag)%uint64(len(tagPalette))]
}

// TagBadge renders a tag with its stable color.
func TagBadge(tag string) string {
	return lipgloss.NewStyle().Foreground(TagColor(tag)).Render("#" + tag)
}
