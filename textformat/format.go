// Package textformat cleans pasted text and markup before analysis.
package textformat

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnknownCase is returned for an unsupported case conversion
var ErrUnknownCase = errors.New("unknown case mode")

// CaseMode selects a case conversion
type CaseMode string

const (
	CaseUpper    CaseMode = "upper"
	CaseLower    CaseMode = "lower"
	CaseTitle    CaseMode = "title"
	CaseSentence CaseMode = "sentence"
)

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t]+`)
	reSpaceAroundLF   = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	reExcessNewlines  = regexp.MustCompile(`\n{4,}`)

	reBreak        = regexp.MustCompile(`(?i)<br\s*/?>`)
	reParagraphGap = regexp.MustCompile(`(?i)</p>\s*<p[^>]*>`)
	reListItemOpen = regexp.MustCompile(`(?i)<li[^>]*>`)
	reListItemEnd  = regexp.MustCompile(`(?i)</li>`)
	reBlockEnd     = regexp.MustCompile(`(?i)</div>|</h[1-6]>`)

	reParagraphs       = regexp.MustCompile(`\n\s*\n`)
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,.!?;:])`)
	reSentenceJoin     = regexp.MustCompile(`([.!?])\s*([A-Z])`)
	reSentenceStart    = regexp.MustCompile(`(^|[.!?]\s+)[a-z]`)
	reLoneI            = regexp.MustCompile(`\bi\b`)
	reSpaceBeforeApos  = regexp.MustCompile(`\s+'`)
	reSpaceAfterApos   = regexp.MustCompile(`'\s+`)
	reTitleWord        = regexp.MustCompile(`\w\S*`)
)

// StripFormatting turns pasted rich text into plain text. Block level markup
// becomes line breaks, everything else is reduced to its text content.
func StripFormatting(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if !strings.Contains(input, "<") {
		return normalizeSpace(input), nil
	}

	markup := reBreak.ReplaceAllString(input, "\n")
	markup = reParagraphGap.ReplaceAllString(markup, "\n\n")
	markup = reListItemOpen.ReplaceAllString(markup, "\n• ")
	markup = reListItemEnd.ReplaceAllString(markup, "")
	markup = reBlockEnd.ReplaceAllString(markup, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	text := normalizeSpace(doc.Text())
	return reExcessNewlines.ReplaceAllString(text, "\n\n\n"), nil
}

func normalizeSpace(text string) string {
	text = reHorizontalSpace.ReplaceAllString(text, " ")
	text = reSpaceAroundLF.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// AutoFormat tidies spacing and capitalisation line by line, keeping
// paragraph breaks.
func AutoFormat(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var paragraphs []string
	for _, paragraph := range reParagraphs.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(paragraph, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines = append(lines, formatLine(line))
		}
		if len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func formatLine(line string) string {
	line = strings.TrimSpace(reHorizontalSpace.ReplaceAllString(line, " "))
	line = reSpaceBeforePunct.ReplaceAllString(line, "$1")
	line = reSentenceJoin.ReplaceAllString(line, "$1 $2")
	line = capitalizeSentences(line)
	line = reLoneI.ReplaceAllString(line, "I")
	line = reSpaceBeforeApos.ReplaceAllString(line, "'")
	return reSpaceAfterApos.ReplaceAllString(line, "'")
}

// capitalizeSentences uppercases the first letter of every sentence
func capitalizeSentences(text string) string {
	return reSentenceStart.ReplaceAllStringFunc(text, func(m string) string {
		return m[:len(m)-1] + strings.ToUpper(m[len(m)-1:])
	})
}

// ConvertCase applies mode to text
func ConvertCase(text string, mode CaseMode) (string, error) {
	switch mode {
	case CaseUpper:
		return strings.ToUpper(text), nil
	case CaseLower:
		return strings.ToLower(text), nil
	case CaseTitle:
		return reTitleWord.ReplaceAllStringFunc(text, titleWord), nil
	case CaseSentence:
		return capitalizeSentences(strings.ToLower(text)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCase, mode)
	}
}

func titleWord(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
