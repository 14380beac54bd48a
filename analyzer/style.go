package analyzer

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	rePassiveVoice     = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+\w+ed\b`)
	rePassiveAbility   = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(able|unable)\s+to\b`)
	reComplexConnector = regexp.MustCompile(`(?i)\b(although|however|because|therefore)\b`)
)

// NonAdverbs are common words ending in "ly" that are not adverbs
var NonAdverbs = map[string]struct{}{
	"only": {}, "early": {}, "daily": {}, "holy": {}, "ugly": {}, "family": {}, "supply": {},
	"apply": {}, "reply": {}, "likely": {}, "lovely": {}, "lonely": {}, "friendly": {},
}

var (
	formalMarkers = []string{"therefore", "thus", "furthermore", "moreover", "consequently", "nevertheless"}
	casualMarkers = []string{"yeah", "gonna", "wanna", "kinda", "sorta", "cool", "awesome", "really"}
)

// IsAdverb reports whether a lowercased word looks like an adverb
func IsAdverb(word string) bool {
	if len(word) <= 4 || !strings.HasSuffix(word, "ly") {
		return false
	}
	_, excluded := NonAdverbs[word]
	return !excluded
}

func analyzeWritingStyle(text string, words, sentences []string) WritingStyle {
	wordCount := len(words)
	sentenceCount := len(sentences)
	if wordCount == 0 || sentenceCount == 0 {
		return WritingStyle{ToneIndicator: ToneNeutral}
	}

	passive := len(rePassiveVoice.FindAllStringIndex(text, -1)) +
		len(rePassiveAbility.FindAllStringIndex(text, -1))

	adverbs := 0
	for _, w := range words {
		if IsAdverb(trimPunctuation(strings.ToLower(w))) {
			adverbs++
		}
	}

	complexSentences := 0
	for _, s := range sentences {
		if strings.Count(s, ",") >= 2 || reComplexConnector.MatchString(s) {
			complexSentences++
		}
	}

	avgSentenceLength := int(math.Round(float64(wordCount) / float64(sentenceCount)))

	return WritingStyle{
		PassiveVoicePercentage:    percentage(passive, sentenceCount),
		AdverbCount:               adverbs,
		ComplexSentencePercentage: percentage(complexSentences, sentenceCount),
		AvgSentenceLength:         avgSentenceLength,
		ToneIndicator:             detectTone(strings.ToLower(text), avgSentenceLength),
	}
}

func detectTone(lower string, avgSentenceLength int) Tone {
	formal := countMarkers(lower, formalMarkers)
	casual := countMarkers(lower, casualMarkers)

	switch {
	case formal > casual && avgSentenceLength > 20:
		return ToneFormal
	case casual > formal || avgSentenceLength < 15:
		return ToneCasual
	default:
		return ToneNeutral
	}
}

// countMarkers counts how many markers occur anywhere in text
func countMarkers(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

func trimPunctuation(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func percentage(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
