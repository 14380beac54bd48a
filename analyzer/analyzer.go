package analyzer

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// wordsPerMinute is the reading speed used for reading time estimates
const wordsPerMinute = 200

// Config tunes keyword extraction and the syllable cache
type Config struct {
	KeywordCount        int // number of top keywords reported
	MinKeywordFrequency int // occurrences before a word counts as a keyword
	SyllableCacheSize   int
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		KeywordCount:        7,
		MinKeywordFrequency: 2,
		SyllableCacheSize:   DefaultSyllableCacheSize,
	}
}

// Analyzer computes text statistics. The only state it keeps between calls
// is the syllable cache, which never changes results.
type Analyzer struct {
	cfg       Config
	syllables *SyllableCounter
}

// New creates a new Analyzer. Zero config values fall back to the defaults.
func New(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.KeywordCount <= 0 {
		cfg.KeywordCount = def.KeywordCount
	}
	if cfg.MinKeywordFrequency <= 0 {
		cfg.MinKeywordFrequency = def.MinKeywordFrequency
	}
	if cfg.SyllableCacheSize <= 0 {
		cfg.SyllableCacheSize = def.SyllableCacheSize
	}

	return &Analyzer{
		cfg:       cfg,
		syllables: NewSyllableCounter(cfg.SyllableCacheSize),
	}
}

// Analyze performs a complete analysis of text
func (a *Analyzer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return EmptyResult()
	}

	tokens := Scan(text)
	words := tokens.Words
	wordCount := len(words)
	characters := utf8.RuneCountInString(text)

	readability := a.calculateReadability(words, tokens.Sentences, characters)
	style := analyzeWritingStyle(text, words, tokens.Sentences)

	density := []KeywordDensity{}
	if wordCount > densityMinWords {
		density = a.calculateKeywordDensity(words)
	}
	keywords := []string{}
	if wordCount > keywordsMinWords {
		keywords = a.extractKeywords(words)
	}

	return Result{
		Words:          wordCount,
		UniqueWords:    countUnique(words),
		Characters:     characters,
		Sentences:      len(tokens.Sentences),
		Paragraphs:     len(tokens.Paragraphs),
		AvgWordLength:  averageWordLength(words),
		ReadingTime:    readingTime(wordCount),
		FleschScore:    readability.Flesch,
		GradeLevel:     readability.FleschGrade,
		Keywords:       keywords,
		KeywordDensity: density,
		Readability:    readability,
		WritingStyle:   style,
		SEOScore:       calculateSEOScore(density, readability.Flesch, style),
	}
}

// CountSyllables exposes the analyzer's cached syllable estimate
func (a *Analyzer) CountSyllables(word string) int {
	return a.syllables.Count(word)
}

// CacheStats returns statistics about the syllable cache
func (a *Analyzer) CacheStats() CacheStats {
	return a.syllables.Stats()
}

func countUnique(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(w)] = struct{}{}
	}
	return len(seen)
}

// averageWordLength uses the same whitespace tokens as the word count
func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return round1(float64(total) / float64(len(words)))
}

func readingTime(wordCount int) string {
	switch {
	case wordCount == 0:
		return "0"
	case wordCount < 100:
		return "<1"
	default:
		minutes := int(math.Ceil(float64(wordCount) / wordsPerMinute))
		return strconv.Itoa(minutes)
	}
}
