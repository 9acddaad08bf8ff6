// Package markdown renders note content for read mode.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer wraps a glamour terminal renderer. Renderers are rebuilt
// when the wrap width changes, since glamour bakes width into the
// instance.
type Renderer struct {
	inner *glamour.TermRenderer
	width int
}

// New creates a renderer for the given wrap width.
func New(width int) (*Renderer, error) {
	inner, err := newTermRenderer(width)
	if err != nil {
		return nil, err
	}
	return &Renderer{inner: inner, width: width}, nil
}

func newTermRenderer(width int) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 1
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
}

// Render returns styled lines for the content at the given width,
// falling back to the raw text when rendering fails.
func (r *Renderer) Render(content string, width int) []string {
	if r == nil || r.inner == nil {
		return strings.Split(content, "\n")
	}
	if width != r.width {
		if inner, err := newTermRenderer(width); err == nil {
			r.inner = inner
			r.width = width
		}
	}
	out, err := r.inner.Render(content)
	if err != nil {
		return strings.Split(content, "\n")
	}
	out = strings.Trim(out, "\n")
	return strings.Split(out, "\n")
}
