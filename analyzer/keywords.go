package analyzer

import "slices"

const (
	// maxDensityEntries caps the density table
	maxDensityEntries = 15
	// keywordsMinWords and densityMinWords are the word counts a text must
	// exceed before keywords or densities are reported
	keywordsMinWords = 20
	densityMinWords  = 10
)

type wordFrequency struct {
	word  string
	count int
}

// frequencies counts cleaned keyword candidates in first-seen order
func frequencies(words []string) []wordFrequency {
	index := make(map[string]int)
	var result []wordFrequency

	for _, w := range words {
		clean := cleanToken(w)
		if len(clean) <= 2 || IsStopWord(clean) || reDigitsOnly.MatchString(clean) {
			continue
		}
		if i, ok := index[clean]; ok {
			result[i].count++
			continue
		}
		index[clean] = len(result)
		result = append(result, wordFrequency{word: clean, count: 1})
	}

	return result
}

// repeated keeps words seen at least minCount times, most frequent first.
// Ties keep first-seen order.
func repeated(freqs []wordFrequency, minCount int) []wordFrequency {
	result := make([]wordFrequency, 0, len(freqs))
	for _, f := range freqs {
		if f.count >= minCount {
			result = append(result, f)
		}
	}
	slices.SortStableFunc(result, func(a, b wordFrequency) int {
		return b.count - a.count
	})
	return result
}

func (a *Analyzer) extractKeywords(words []string) []string {
	top := repeated(frequencies(words), a.cfg.MinKeywordFrequency)
	if len(top) > a.cfg.KeywordCount {
		top = top[:a.cfg.KeywordCount]
	}

	keywords := make([]string, 0, len(top))
	for _, f := range top {
		keywords = append(keywords, f.word)
	}
	return keywords
}

func (a *Analyzer) calculateKeywordDensity(words []string) []KeywordDensity {
	total := len(words)
	top := repeated(frequencies(words), a.cfg.MinKeywordFrequency)
	if len(top) > maxDensityEntries {
		top = top[:maxDensityEntries]
	}

	entries := make([]KeywordDensity, 0, len(top))
	for _, f := range top {
		entries = append(entries, KeywordDensity{
			Word:    f.word,
			Count:   f.count,
			Density: float64(f.count) / float64(total) * 100,
			Status:  densityStatus(f.count, total),
		})
	}
	return entries
}

// densityStatus compares count/total against the 3% and 5% thresholds
// without floating point error at the boundaries
func densityStatus(count, total int) DensityStatus {
	switch {
	case count*100 > 5*total:
		return StatusCritical
	case count*100 > 3*total:
		return StatusWarning
	default:
		return StatusOptimal
	}
}

// CriticalKeywords returns the words whose density is critical
func CriticalKeywords(entries []KeywordDensity) []string {
	var words []string
	for _, e := range entries {
		if e.Status == StatusCritical {
			words = append(words, e.Word)
		}
	}
	return words
}

// calculateSEOScore combines density, readability and style into 0-100.
// flesch is the rounded Flesch score.
func calculateSEOScore(density []KeywordDensity, flesch int, style WritingStyle) int {
	score := 0

	// Keyword density (40 points)
	optimal, critical := 0, 0
	for _, e := range density {
		switch e.Status {
		case StatusOptimal:
			optimal++
		case StatusCritical:
			critical++
		}
	}
	score += min(40, optimal*5) - critical*10

	// Readability (30 points)
	switch {
	case flesch >= 60 && flesch <= 80:
		score += 30
	case flesch >= 50:
		score += 20
	case flesch >= 40:
		score += 10
	}

	// Writing style (30 points)
	if style.PassiveVoicePercentage < 20 {
		score += 10
	}
	if style.AdverbCount < 5 {
		score += 10
	}
	if style.AvgSentenceLength >= 15 && style.AvgSentenceLength <= 25 {
		score += 10
	}

	return max(0, min(100, score))
}
