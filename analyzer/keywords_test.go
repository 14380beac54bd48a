package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensityStatusBoundaries(t *testing.T) {
	tests := []struct {
		count, total int
		want         DensityStatus
	}{
		{1, 100, StatusOptimal},
		{3, 100, StatusOptimal},
		{301, 10000, StatusWarning},
		{4, 100, StatusWarning},
		{5, 100, StatusWarning},
		{501, 10000, StatusCritical},
		{10, 100, StatusCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, densityStatus(tt.count, tt.total), "%d/%d", tt.count, tt.total)
	}
}

func TestFrequenciesFilterCandidates(t *testing.T) {
	words := strings.Fields("The SEO, seo! 2024 2024 an it go Go-lang golang 42nd 42nd")

	freqs := frequencies(words)
	assert.Equal(t, []wordFrequency{
		{word: "seo", count: 2},
		{word: "golang", count: 2},
		{word: "42nd", count: 2},
	}, freqs)
}

func TestCalculateKeywordDensity(t *testing.T) {
	a := New(DefaultConfig())
	words := strings.Fields("widget gadget widget gadget " + strings.Repeat("the ", 16))
	require.Len(t, words, 20)

	entries := a.calculateKeywordDensity(words)
	require.Len(t, entries, 2)
	assert.Equal(t, "widget", entries[0].Word)
	assert.Equal(t, "gadget", entries[1].Word)
	for _, e := range entries {
		assert.Equal(t, 2, e.Count)
		assert.InDelta(t, float64(e.Count)/float64(len(words))*100, e.Density, 1e-9)
		assert.Equal(t, StatusCritical, e.Status)
	}
	assert.Equal(t, []string{"widget", "gadget"}, CriticalKeywords(entries))
}

func TestCalculateKeywordDensityStatuses(t *testing.T) {
	a := New(DefaultConfig())

	optimal := a.calculateKeywordDensity(strings.Fields(strings.Repeat("widget ", 3) + strings.Repeat("the ", 97)))
	require.Len(t, optimal, 1)
	assert.Equal(t, StatusOptimal, optimal[0].Status)
	assert.Empty(t, CriticalKeywords(optimal))

	warning := a.calculateKeywordDensity(strings.Fields(strings.Repeat("widget ", 4) + strings.Repeat("the ", 96)))
	require.Len(t, warning, 1)
	assert.Equal(t, StatusWarning, warning[0].Status)
}

func TestCalculateKeywordDensityCapsEntries(t *testing.T) {
	a := New(DefaultConfig())

	var b strings.Builder
	for i := 0; i < 20; i++ {
		word := "term" + strings.Repeat("x", i)
		b.WriteString(word + " " + word + " ")
	}
	entries := a.calculateKeywordDensity(strings.Fields(b.String()))
	assert.Len(t, entries, maxDensityEntries)
	assert.Equal(t, "term", entries[0].Word)
}

func TestCalculateSEOScore(t *testing.T) {
	optimal := make([]KeywordDensity, 9)
	for i := range optimal {
		optimal[i].Status = StatusOptimal
	}
	good := WritingStyle{PassiveVoicePercentage: 0, AdverbCount: 0, AvgSentenceLength: 20}
	assert.Equal(t, 100, calculateSEOScore(optimal, 70, good))

	tests := []struct {
		name    string
		density []KeywordDensity
		flesch  int
		style   WritingStyle
		want    int
	}{
		{"readability 60-80", nil, 60, WritingStyle{PassiveVoicePercentage: 50, AdverbCount: 9}, 30},
		{"readability above 80", nil, 81, WritingStyle{PassiveVoicePercentage: 50, AdverbCount: 9}, 20},
		{"readability 40-49", nil, 45, WritingStyle{PassiveVoicePercentage: 50, AdverbCount: 9}, 10},
		{"style only", nil, 10, good, 30},
		{
			"critical keywords clamp to zero",
			[]KeywordDensity{{Status: StatusCritical}, {Status: StatusCritical}},
			10,
			WritingStyle{PassiveVoicePercentage: 50, AdverbCount: 10, AvgSentenceLength: 5},
			0,
		},
		{
			"warnings do not count",
			[]KeywordDensity{{Status: StatusWarning}, {Status: StatusOptimal}},
			0,
			WritingStyle{PassiveVoicePercentage: 50, AdverbCount: 10},
			5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateSEOScore(tt.density, tt.flesch, tt.style))
		})
	}
}
