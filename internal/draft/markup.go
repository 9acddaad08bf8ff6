package draft

// MarkupKind identifies a markdown wrapper applied by the editor.
type MarkupKind int

const (
	MarkupBold MarkupKind = iota
	MarkupItalic
	MarkupCode
	MarkupHeading
	MarkupList
	MarkupLink
)

// Selection is a rune range [Start, End) over the buffer content.
// Start == End is a caret with no selected text.
type Selection struct {
	Start, End int
}

type markupDef struct {
	before      string
	after       string
	placeholder string
}

var markupDefs = map[MarkupKind]markupDef{
	MarkupBold:    {before: "**", after: "**", placeholder: "bold"},
	MarkupItalic:  {before: "*", after: "*", placeholder: "italic"},
	MarkupCode:    {before: "`", after: "`", placeholder: "code"},
	MarkupHeading: {before: "\n# ", after: "", placeholder: "Heading"},
	MarkupList:    {before: "\n- ", after: "", placeholder: "list item"},
	MarkupLink:    {before: "[", after: "](url)", placeholder: "link text"},
}

// Wrap returns the pieces of a markup wrapper. The editor uses this
// when inserting at a caret inside a text area that tracks its own
// cursor.
func Wrap(kind MarkupKind) (before, placeholder, after string) {
	def := markupDefs[kind]
	return def.before, def.placeholder, def.after
}

// InsertMarkup splices a markdown wrapper into content. A caret
// selection inserts the placeholder text; a non-empty selection wraps
// the selected runes. The returned selection covers the inner text so
// the editor can leave it selected for replacement.
//
// Selection bounds outside the content are clamped; a reversed range
// is normalized.
func InsertMarkup(kind MarkupKind, content string, sel Selection) (text string, selStart, selEnd int) {
	def, ok := markupDefs[kind]
	if !ok {
		return content, sel.Start, sel.End
	}

	runes := []rune(content)
	start, end := clampRange(sel.Start, sel.End, len(runes))

	inner := string(runes[start:end])
	if inner == "" {
		inner = def.placeholder
	}

	before := []rune(def.before)
	innerRunes := []rune(inner)

	var out []rune
	out = append(out, runes[:start]...)
	out = append(out, before...)
	out = append(out, innerRunes...)
	out = append(out, []rune(def.after)...)
	out = append(out, runes[end:]...)

	selStart = start + len(before)
	selEnd = selStart + len(innerRunes)
	return string(out), selStart, selEnd
}

func clampRange(start, end, max int) (int, int) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if start > max {
		start = max
	}
	if end < 0 {
		end = 0
	}
	if end > max {
		end = max
	}
	return start, end
}
