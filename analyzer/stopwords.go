package analyzer

// stopWords are common English words excluded from keyword statistics
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "to": {}, "of": {}, "a": {}, "in": {}, "for": {}, "is": {}, "on": {}, "that": {},
	"by": {}, "this": {}, "with": {}, "i": {}, "you": {}, "it": {}, "not": {}, "or": {}, "be": {}, "are": {},
	"from": {}, "at": {}, "as": {}, "your": {}, "all": {}, "any": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {}, "him": {}, "his": {}, "how": {}, "man": {},
	"new": {}, "now": {}, "old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "boy": {}, "did": {}, "its": {},
	"let": {}, "put": {}, "say": {}, "she": {}, "too": {}, "use": {}, "have": {}, "been": {}, "other": {}, "were": {},
	"which": {}, "their": {}, "what": {}, "there": {}, "when": {}, "will": {}, "would": {}, "about": {}, "into": {}, "than": {},
	"them": {}, "these": {}, "some": {}, "could": {}, "only": {}, "may": {}, "then": {}, "such": {}, "an": {}, "but": {},
	"we": {}, "he": {}, "me": {}, "my": {}, "so": {}, "up": {}, "if": {}, "no": {}, "do": {}, "just": {},
	"they": {}, "very": {}, "more": {}, "even": {}, "also": {}, "well": {}, "back": {}, "after": {}, "should": {}, "each": {},
	"where": {}, "those": {}, "much": {}, "own": {}, "most": {}, "through": {}, "being": {}, "over": {}, "here": {}, "both": {},
	"while": {}, "under": {}, "same": {}, "us": {},
}

// IsStopWord reports whether the lowercased word is a stop word
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
