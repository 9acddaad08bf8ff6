package markdown

import (
	"strings"
	"testing"
)

func TestRender_ProducesLines(t *testing.T) {
	r, err := New(40)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lines := r.Render("# Title\n\nSome **bold** text.", 40)
	if len(lines) == 0 {
		t.Fatal("Expected rendered lines")
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Title") {
		t.Errorf("Expected heading text in output, got %q", joined)
	}
}

func TestRender_NilRendererFallsBack(t *testing.T) {
	var r *Renderer

	lines := r.Render("a\nb", 40)
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("Expected raw fallback, got %v", lines)
	}
}

func TestRender_WidthChangeRebuilds(t *testing.T) {
	r, err := New(80)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	long := strings.Repeat("word ", 30)
	wide := r.Render(long, 200)
	narrow := r.Render(long, 30)

	if len(narrow) <= len(wide) {
		t.Errorf("Expected narrower width to wrap into more lines (%d vs %d)", len(narrow), len(wide))
	}
}

func TestRender_TrimsOuterBlankLines(t *testing.T) {
	r, err := New(40)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lines := r.Render("hello", 40)
	if len(lines) == 0 {
		t.Fatal("Expected output")
	}
	if strings.TrimSpace(lines[0]) == "" && len(lines) > 1 {
		t.Error("Expected leading blank lines trimmed")
	}
}
