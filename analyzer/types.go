package analyzer

// GradeUndefined marks a grade level that cannot be derived from the text
const GradeUndefined = "—"

// Result represents the complete analysis of a piece of text
type Result struct {
	Words          int               `json:"words"`
	UniqueWords    int               `json:"uniqueWords"`
	Characters     int               `json:"characters"`
	Sentences      int               `json:"sentences"`
	Paragraphs     int               `json:"paragraphs"`
	AvgWordLength  float64           `json:"avgWordLength"`
	ReadingTime    string            `json:"readingTime"`
	FleschScore    int               `json:"fleschScore"`
	GradeLevel     string            `json:"gradeLevel"`
	Keywords       []string          `json:"keywords"`
	KeywordDensity []KeywordDensity  `json:"keywordDensity"`
	Readability    ReadabilityScores `json:"readability"`
	WritingStyle   WritingStyle      `json:"writingStyle"`
	SEOScore       int               `json:"seoScore"`
}

// DensityStatus classifies how heavily a keyword is used
type DensityStatus string

const (
	StatusOptimal  DensityStatus = "optimal"
	StatusWarning  DensityStatus = "warning"
	StatusCritical DensityStatus = "critical"
)

type KeywordDensity struct {
	Word    string        `json:"word"`
	Count   int           `json:"count"`
	Density float64       `json:"density"` // percentage of total words
	Status  DensityStatus `json:"status"`
}

type ReadabilityScores struct {
	Flesch               int     `json:"flesch"`
	FleschGrade          string  `json:"fleschGrade"`
	GunningFog           float64 `json:"gunningFog"`
	SMOG                 float64 `json:"smog"`
	ColemanLiau          float64 `json:"colemanLiau"`
	AutomatedReadability float64 `json:"automatedReadability"`
}

// Tone is a coarse register estimate
type Tone string

const (
	ToneFormal  Tone = "formal"
	ToneNeutral Tone = "neutral"
	ToneCasual  Tone = "casual"
)

type WritingStyle struct {
	PassiveVoicePercentage    int  `json:"passiveVoicePercentage"`
	AdverbCount               int  `json:"adverbCount"`
	ComplexSentencePercentage int  `json:"complexSentencePercentage"`
	AvgSentenceLength         int  `json:"avgSentenceLength"`
	ToneIndicator             Tone `json:"toneIndicator"`
}

// CacheStats provides statistics about the syllable cache
type CacheStats struct {
	Entries  int    `json:"entries"`
	Capacity int    `json:"capacity"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// EmptyResult is the analysis of text without any words
func EmptyResult() Result {
	return Result{
		ReadingTime:    "0",
		GradeLevel:     GradeUndefined,
		Keywords:       []string{},
		KeywordDensity: []KeywordDensity{},
		Readability:    emptyReadability(),
		WritingStyle:   WritingStyle{ToneIndicator: ToneNeutral},
	}
}

func emptyReadability() ReadabilityScores {
	return ReadabilityScores{FleschGrade: GradeUndefined}
}
