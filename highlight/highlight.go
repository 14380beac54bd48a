// Package highlight finds passages worth flagging in a text and renders them
// as escaped HTML with inline <mark> annotations.
package highlight

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/seo-optimizer/textprocessor/analyzer"
)

// Type is the kind of issue a highlight marks
type Type string

const (
	TypePassive Type = "passive"
	TypeAdverb  Type = "adverb"
	TypeKeyword Type = "keyword"
	TypeComplex Type = "complex"
)

// DefaultComplexSentenceWords is the sentence length above which a sentence
// is flagged as complex
const DefaultComplexSentenceWords = 25

const (
	passiveSuggestion = "Consider using active voice for stronger writing"
	adverbSuggestion  = "Consider removing or replacing this adverb for stronger writing"
	keywordSuggestion = "This keyword is overused (>5% density). Consider using synonyms"
)

// Highlight is a half-open byte range [Start, End) of the original text
type Highlight struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Type       Type   `json:"type"`
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
}

var (
	passivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(\w+ed|gotten|given|taken|made|done|gone|seen|known|written)\b`),
		regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(able|unable)\s+to\b`),
	}
	adverbPattern   = regexp.MustCompile(`\b\w+ly\b`)
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// Detector finds highlights in text
type Detector struct {
	// ComplexSentenceWords is the word count a sentence must exceed to be flagged
	ComplexSentenceWords int
}

// NewDetector creates a detector with the default thresholds
func NewDetector() *Detector {
	return &Detector{ComplexSentenceWords: DefaultComplexSentenceWords}
}

var defaultDetector = NewDetector()

// Detect runs the default detector over text
func Detect(text string, criticalKeywords []string) []Highlight {
	return defaultDetector.Detect(text, criticalKeywords)
}

// Detect collects every passive, adverb, overused keyword and complex sentence
// match in text, ordered by start offset. Matches may overlap; see Resolve.
func (d *Detector) Detect(text string, criticalKeywords []string) []Highlight {
	if text == "" {
		return []Highlight{}
	}

	var highlights []Highlight
	highlights = append(highlights, detectPassive(text)...)
	highlights = append(highlights, detectAdverbs(text)...)
	highlights = append(highlights, detectKeywords(text, criticalKeywords)...)
	highlights = append(highlights, d.detectComplex(text)...)

	// stable so earlier detectors win at equal offsets
	slices.SortStableFunc(highlights, func(a, b Highlight) int {
		return a.Start - b.Start
	})
	if highlights == nil {
		return []Highlight{}
	}
	return highlights
}

func detectPassive(text string) []Highlight {
	var result []Highlight
	for _, pattern := range passivePatterns {
		result = appendMatches(result, text, pattern, TypePassive, passiveSuggestion)
	}
	return result
}

func detectAdverbs(text string) []Highlight {
	var result []Highlight
	for _, loc := range adverbPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if _, ok := analyzer.NonAdverbs[strings.ToLower(word)]; ok {
			continue
		}
		result = append(result, Highlight{
			Start:      loc[0],
			End:        loc[1],
			Type:       TypeAdverb,
			Text:       word,
			Suggestion: adverbSuggestion,
		})
	}
	return result
}

func detectKeywords(text string, keywords []string) []Highlight {
	var result []Highlight
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			continue
		}
		result = appendMatches(result, text, pattern, TypeKeyword, keywordSuggestion)
	}
	return result
}

// detectComplex flags sentences longer than the configured word count.
// The span covers the sentence without surrounding whitespace.
func (d *Detector) detectComplex(text string) []Highlight {
	limit := d.ComplexSentenceWords
	if limit <= 0 {
		limit = DefaultComplexSentenceWords
	}

	var result []Highlight
	for _, loc := range sentencePattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		words := len(strings.Fields(sentence))
		if words <= limit {
			continue
		}
		start := loc[0] + strings.Index(raw, sentence)
		result = append(result, Highlight{
			Start:      start,
			End:        start + len(sentence),
			Type:       TypeComplex,
			Text:       sentence,
			Suggestion: fmt.Sprintf("This sentence has %d words. Consider breaking it into shorter sentences", words),
		})
	}
	return result
}

func appendMatches(dst []Highlight, text string, pattern *regexp.Regexp, typ Type, suggestion string) []Highlight {
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		dst = append(dst, Highlight{
			Start:      loc[0],
			End:        loc[1],
			Type:       typ,
			Text:       text[loc[0]:loc[1]],
			Suggestion: suggestion,
		})
	}
	return dst
}

// Resolve drops every highlight that overlaps an earlier kept one.
// Input must be sorted by start; the first highlight at a region wins.
func Resolve(highlights []Highlight) []Highlight {
	result := make([]Highlight, 0, len(highlights))
	lastEnd := -1
	for _, h := range highlights {
		if h.Start >= lastEnd {
			result = append(result, h)
			lastEnd = h.End
		}
	}
	return result
}

// Annotate detects and resolves highlights in one step
func (d *Detector) Annotate(text string, criticalKeywords []string) []Highlight {
	return Resolve(d.Detect(text, criticalKeywords))
}
