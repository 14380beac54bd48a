package highlight

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// htmlEscaper covers the five characters that matter inside text and
// double-quoted attributes
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes & < > " and ', replacing invalid UTF-8 with U+FFFD
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}

// ClassName returns the CSS class used for a highlight type
func ClassName(t Type) string {
	switch t {
	case TypePassive, TypeAdverb, TypeKeyword, TypeComplex:
		return "highlight-" + string(t)
	default:
		return ""
	}
}

// Render escapes text and wraps each highlight in a <mark> element carrying
// its suggestion as a tooltip. Highlights outside the text or splitting a
// rune are ignored before overlaps are resolved.
func Render(text string, highlights []Highlight) string {
	if text == "" || len(highlights) == 0 {
		return EscapeHTML(text)
	}

	var b strings.Builder
	b.Grow(len(text) + len(highlights)*64)

	valid := make([]Highlight, 0, len(highlights))
	for _, h := range highlights {
		if inBounds(text, h) {
			valid = append(valid, h)
		}
	}
	slices.SortStableFunc(valid, func(a, b Highlight) int {
		return a.Start - b.Start
	})

	last := 0
	for _, h := range Resolve(valid) {
		b.WriteString(EscapeHTML(text[last:h.Start]))
		b.WriteString(`<mark class="`)
		b.WriteString(ClassName(h.Type))
		b.WriteString(`" data-tooltip="`)
		b.WriteString(EscapeHTML(h.Suggestion))
		b.WriteString(`">`)
		b.WriteString(EscapeHTML(text[h.Start:h.End]))
		b.WriteString(`</mark>`)
		last = h.End
	}
	b.WriteString(EscapeHTML(text[last:]))

	return b.String()
}

func inBounds(text string, h Highlight) bool {
	if h.Start < 0 || h.End <= h.Start || h.End > len(text) {
		return false
	}
	return boundary(text, h.Start) && boundary(text, h.End)
}

func boundary(text string, i int) bool {
	return i == len(text) || utf8.RuneStart(text[i])
}
