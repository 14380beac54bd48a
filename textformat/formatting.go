package textformat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FormattingInfo summarises the visual formatting found in pasted markup
type FormattingInfo struct {
	Fonts         []string `json:"fonts"`
	Sizes         []string `json:"sizes"`
	Weights       []string `json:"weights"`
	Colors        []string `json:"colors"`
	Styles        []string `json:"styles"`
	Elements      []string `json:"elements"`
	HasFormatting bool     `json:"hasFormatting"`
}

// styleTags maps tags to the formatting style they imply
var styleTags = map[string]string{
	"b":      "Bold",
	"strong": "Bold",
	"i":      "Italic",
	"em":     "Italic",
	"u":      "Underline",
	"s":      "Strikethrough",
	"strike": "Strikethrough",
	"h1":     "Heading",
	"h2":     "Heading",
	"h3":     "Heading",
	"h4":     "Heading",
	"h5":     "Heading",
	"h6":     "Heading",
}

// orderedSet keeps the first occurrence of each non-empty value
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// first returns up to n items, skipping excluded values
func (s *orderedSet) first(n int, exclude ...string) []string {
	result := make([]string, 0, min(n, len(s.items)))
	for _, item := range s.items {
		if len(result) == n {
			break
		}
		if slices.Contains(exclude, item) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// ExtractFormatting collects fonts, sizes, weights, colors and styles from
// inline styles, legacy <font> attributes and formatting tags. It returns
// nil when the input contains no markup.
func ExtractFormatting(html string) (*FormattingInfo, error) {
	if !strings.Contains(html, "<") {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	doc.Find("script").Remove()

	fonts := newOrderedSet()
	sizes := newOrderedSet()
	weights := newOrderedSet()
	colors := newOrderedSet()
	styles := newOrderedSet()
	elements := newOrderedSet()

	doc.Find("body *").Each(func(_ int, el *goquery.Selection) {
		tag := goquery.NodeName(el)
		elements.add(tag)

		if style, ok := el.Attr("style"); ok {
			decl := parseStyle(style)
			fonts.add(strings.NewReplacer(`"`, "", "'", "").Replace(decl["font-family"]))
			sizes.add(decl["font-size"])
			weights.add(decl["font-weight"])
			colors.add(decl["color"])
		}

		if s, ok := styleTags[tag]; ok {
			styles.add(s)
		}

		if face, ok := el.Attr("face"); ok {
			fonts.add(face)
		}
		if size, ok := el.Attr("size"); ok {
			sizes.add(size)
		}
		if color, ok := el.Attr("color"); ok {
			colors.add(color)
		}
	})

	info := &FormattingInfo{
		Fonts:    fonts.first(5),
		Sizes:    sizes.first(5),
		Weights:  weights.first(5, "400"),
		Colors:   colors.first(8),
		Styles:   styles.first(len(styles.items)),
		Elements: elements.first(8, "div", "span", "font"),
	}
	info.HasFormatting = len(fonts.items) > 0 || len(sizes.items) > 0 ||
		len(styles.items) > 0 || len(colors.items) > 0

	return info, nil
}

// parseStyle reads an inline style attribute into lowercase property names
func parseStyle(style string) map[string]string {
	decl := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name != "" && value != "" {
			decl[name] = value
		}
	}
	return decl
}
