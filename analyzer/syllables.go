package analyzer

import (
	"regexp"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSyllableCacheSize is the number of words the syllable cache keeps
const DefaultSyllableCacheSize = 2000

var (
	reDigitsOnly   = regexp.MustCompile(`^\d+$`)
	reSilentEnding = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	reLeadingY     = regexp.MustCompile(`^y`)
	reVowelGroup   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// SyllableCounter estimates syllable counts and remembers recent answers.
// The cache only ever stores what countSyllables would compute, so hits
// and misses return the same value.
type SyllableCounter struct {
	cache    *lru.Cache[string, int]
	capacity int
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// NewSyllableCounter creates a counter whose cache holds at most capacity words
func NewSyllableCounter(capacity int) *SyllableCounter {
	if capacity <= 0 {
		capacity = DefaultSyllableCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, int](capacity)
	return &SyllableCounter{
		cache:    cache,
		capacity: capacity,
	}
}

// Count returns the estimated number of syllables in word
func (s *SyllableCounter) Count(word string) int {
	if word == "" {
		return 0
	}

	key := strings.ToLower(strings.TrimSpace(word))
	if n, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return n
	}
	s.misses.Add(1)

	n := countSyllables(key)
	s.cache.Add(key, n)
	return n
}

// Stats returns the current cache occupancy and hit counters
func (s *SyllableCounter) Stats() CacheStats {
	return CacheStats{
		Entries:  s.cache.Len(),
		Capacity: s.capacity,
		Hits:     s.hits.Load(),
		Misses:   s.misses.Load(),
	}
}

// countSyllables expects a lowercased, trimmed word
func countSyllables(clean string) int {
	switch {
	case clean == "":
		return 0
	case reDigitsOnly.MatchString(clean):
		return len(clean)
	case len(clean) <= 3:
		return 1
	}

	processed := reSilentEnding.ReplaceAllString(clean, "")
	processed = reLeadingY.ReplaceAllString(processed, "")
	return max(1, len(reVowelGroup.FindAllStringIndex(processed, -1)))
}
