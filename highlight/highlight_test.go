package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longSentence(words int, middle string) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = "word"
	}
	parts[0] = "The"
	if middle != "" {
		parts[words/2] = middle
	}
	return strings.Join(parts, " ") + "."
}

func TestDetectEmpty(t *testing.T) {
	assert.Empty(t, Detect("", []string{"seo"}))
	assert.NotNil(t, Detect("", nil))
	assert.Empty(t, Detect("Nothing to see", nil))
}

func TestDetectPassive(t *testing.T) {
	text := "The report was written by the team. Results were analyzed. She is able to help."

	highlights := Detect(text, nil)
	require.Len(t, highlights, 3)
	assert.Equal(t, Highlight{
		Start:      11,
		End:        22,
		Type:       TypePassive,
		Text:       "was written",
		Suggestion: passiveSuggestion,
	}, highlights[0])
	assert.Equal(t, "were analyzed", highlights[1].Text)
	assert.Equal(t, "is able to", highlights[2].Text)
}

func TestDetectAdverbs(t *testing.T) {
	text := "She ran quickly, but only family came daily."

	highlights := Detect(text, nil)
	require.Len(t, highlights, 1)
	assert.Equal(t, TypeAdverb, highlights[0].Type)
	assert.Equal(t, 8, highlights[0].Start)
	assert.Equal(t, 15, highlights[0].End)
	assert.Equal(t, "quickly", highlights[0].Text)
}

func TestDetectKeywords(t *testing.T) {
	text := "SEO tips: seo, Seo and seoul."

	highlights := Detect(text, []string{"seo"})
	require.Len(t, highlights, 3)
	starts := []int{0, 10, 15}
	for i, h := range highlights {
		assert.Equal(t, TypeKeyword, h.Type)
		assert.Equal(t, starts[i], h.Start)
		assert.Equal(t, text[h.Start:h.End], h.Text)
		assert.Equal(t, keywordSuggestion, h.Suggestion)
	}
}

func TestDetectKeywordsQuotesPattern(t *testing.T) {
	assert.Empty(t, Detect("aab is not a match", []string{"a+b", "  "}))
}

func TestDetectComplexSentence(t *testing.T) {
	long := longSentence(26, "")
	text := "Short one. " + long

	highlights := Detect(text, nil)
	require.Len(t, highlights, 1)
	h := highlights[0]
	assert.Equal(t, TypeComplex, h.Type)
	assert.Equal(t, 11, h.Start)
	assert.Equal(t, len(text), h.End)
	assert.Equal(t, long, h.Text)
	assert.Equal(t, "This sentence has 26 words. Consider breaking it into shorter sentences", h.Suggestion)

	assert.Empty(t, Detect(longSentence(25, ""), nil))
}

func TestDetectorThreshold(t *testing.T) {
	d := &Detector{ComplexSentenceWords: 3}

	highlights := d.Detect("One two three four. One two.", nil)
	require.Len(t, highlights, 1)
	assert.Equal(t, "One two three four.", highlights[0].Text)
}

func TestDetectSortsByStart(t *testing.T) {
	text := "Honestly, the cake was baked slowly by the seo team."

	highlights := Detect(text, []string{"seo"})
	require.Len(t, highlights, 4)
	for i := 1; i < len(highlights); i++ {
		assert.LessOrEqual(t, highlights[i-1].Start, highlights[i].Start)
	}
	assert.Equal(t, []Type{TypeAdverb, TypePassive, TypeAdverb, TypeKeyword}, []Type{
		highlights[0].Type, highlights[1].Type, highlights[2].Type, highlights[3].Type,
	})
}

func TestDetectUsesByteOffsets(t *testing.T) {
	text := "Café staff ran happily."

	highlights := Detect(text, nil)
	require.Len(t, highlights, 1)
	assert.Equal(t, "happily", text[highlights[0].Start:highlights[0].End])
}

func TestResolve(t *testing.T) {
	in := []Highlight{
		{Start: 0, End: 10, Type: TypeComplex},
		{Start: 5, End: 12, Type: TypeAdverb},
		{Start: 10, End: 15, Type: TypePassive},
		{Start: 12, End: 20, Type: TypeKeyword},
	}

	out := Resolve(in)
	assert.Equal(t, []Highlight{in[0], in[2]}, out)
	assert.Equal(t, out, Resolve(out))
}

func TestAnnotateKeepsFirstOverlap(t *testing.T) {
	text := longSentence(30, "really")

	all := Detect(text, nil)
	require.Len(t, all, 2)

	kept := NewDetector().Annotate(text, nil)
	require.Len(t, kept, 1)
	assert.Equal(t, TypeComplex, kept[0].Type)
}
