package analyzer

import (
	"regexp"
	"strings"
)

var (
	reSentenceBreak  = regexp.MustCompile(`[.!?]+\s+|[.!?]+$`)
	reParagraphBreak = regexp.MustCompile(`\n\s*\n`)
	reNonWord        = regexp.MustCompile(`[^\w]`)
)

// Tokens is the lexical breakdown of a text. Entries keep their original
// casing and punctuation.
type Tokens struct {
	Words      []string
	Sentences  []string
	Paragraphs []string
}

// Scan splits text into words, sentences and paragraphs
func Scan(text string) Tokens {
	return Tokens{
		Words:      splitWords(text),
		Sentences:  splitNonEmpty(reSentenceBreak, text),
		Paragraphs: splitNonEmpty(reParagraphBreak, text),
	}
}

func splitWords(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{}
	}
	return strings.Fields(trimmed)
}

func splitNonEmpty(re *regexp.Regexp, text string) []string {
	parts := re.Split(text, -1)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			result = append(result, p)
		}
	}
	return result
}

// cleanToken lowercases a word and drops every non-word character
func cleanToken(word string) string {
	return reNonWord.ReplaceAllString(strings.ToLower(word), "")
}
