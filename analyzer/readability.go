package analyzer

import "math"

// minGradedWords is the smallest text that gets a grade level
const minGradedWords = 10

// calculateReadability computes the classical readability formulas.
// characters is the rune length of the whole text.
func (a *Analyzer) calculateReadability(words, sentences []string, characters int) ReadabilityScores {
	wordCount := len(words)
	sentenceCount := len(sentences)
	if wordCount == 0 || sentenceCount == 0 {
		return emptyReadability()
	}

	syllables := 0
	complexWords := 0
	for _, w := range words {
		n := a.syllables.Count(w)
		syllables += n
		if n >= 3 {
			complexWords++
		}
	}

	avgWordsPerSentence := float64(wordCount) / float64(sentenceCount)
	avgSyllablesPerWord := float64(syllables) / float64(wordCount)
	avgCharsPerWord := float64(characters) / float64(wordCount)

	flesch := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord
	flesch = math.Max(0, math.Min(100, flesch))

	gunningFog := 0.4 * (avgWordsPerSentence + 100*(float64(complexWords)/float64(wordCount)))

	// polysyllables use the same three-syllable rule as complex words
	smog := 1.0430*math.Sqrt(float64(complexWords)*(30/float64(sentenceCount))) + 3.1291

	l := avgCharsPerWord * 100
	s := float64(sentenceCount) / float64(wordCount) * 100
	colemanLiau := 0.0588*l - 0.296*s - 15.8

	ari := 4.71*avgCharsPerWord + 0.5*avgWordsPerSentence - 21.43

	grade := gradeLevel(flesch)
	if wordCount <= minGradedWords {
		grade = GradeUndefined
	}

	return ReadabilityScores{
		Flesch:               int(math.Round(flesch)),
		FleschGrade:          grade,
		GunningFog:           roundScore(gunningFog),
		SMOG:                 roundScore(smog),
		ColemanLiau:          roundScore(colemanLiau),
		AutomatedReadability: roundScore(ari),
	}
}

// gradeLevel maps an unrounded Flesch score to a school grade
func gradeLevel(score float64) string {
	switch {
	case math.IsNaN(score) || score <= 0:
		return GradeUndefined
	case score >= 100:
		return "Pre-school"
	case score >= 90:
		return "5th Grade"
	case score >= 80:
		return "6th Grade"
	case score >= 70:
		return "7th Grade"
	case score >= 60:
		return "8th-9th Grade"
	case score >= 50:
		return "10th-12th Grade"
	case score >= 30:
		return "College"
	default:
		return "Graduate"
	}
}

// roundScore rounds to one decimal and floors at zero
func roundScore(v float64) float64 {
	return math.Max(0, math.Round(v*10)/10)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
