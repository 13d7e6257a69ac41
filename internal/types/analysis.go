package types

// AnalysisKind tags the variant held by an AnalysisResult.
type AnalysisKind string

// Analysis kinds produced by the AI task gateway.
const (
	AnalysisKeywords          AnalysisKind = "Keywords"
	AnalysisSkills            AnalysisKind = "Skills"
	AnalysisATS               AnalysisKind = "ATS"
	AnalysisMatch             AnalysisKind = "Match"
	AnalysisContentSuggestion AnalysisKind = "ContentSuggestion"
)

// MatchResult is the payload of a job-match analysis.
type MatchResult struct {
	Score    int    `json:"score"`    // 0-100
	Analysis string `json:"analysis"` // markdown
}

// ContentSuggestion is the payload of a content-suggestion analysis. The
// suggestions target one experience item and are only merged into the
// document when the user explicitly accepts one.
type ContentSuggestion struct {
	ExperienceID int64    `json:"experienceId"`
	Suggestions  []string `json:"suggestions"`
}

// AnalysisResult is a tagged union over the analysis kinds. Exactly one
// payload field matching Kind is populated.
type AnalysisResult struct {
	Kind       AnalysisKind       `json:"kind"`
	Keywords   []string           `json:"keywords,omitempty"`
	Skills     []string           `json:"skills,omitempty"`
	ATS        string             `json:"ats,omitempty"`
	Match      *MatchResult       `json:"match,omitempty"`
	Suggestion *ContentSuggestion `json:"suggestion,omitempty"`
}

// NewKeywordsResult builds a Keywords-tagged result.
func NewKeywordsResult(keywords []string) AnalysisResult {
	return AnalysisResult{Kind: AnalysisKeywords, Keywords: keywords}
}

// NewSkillsResult builds a Skills-tagged result.
func NewSkillsResult(skills []string) AnalysisResult {
	return AnalysisResult{Kind: AnalysisSkills, Skills: skills}
}

// NewATSResult builds an ATS-tagged result.
func NewATSResult(feedback string) AnalysisResult {
	return AnalysisResult{Kind: AnalysisATS, ATS: feedback}
}

// NewMatchResult builds a Match-tagged result.
func NewMatchResult(score int, analysis string) AnalysisResult {
	return AnalysisResult{Kind: AnalysisMatch, Match: &MatchResult{Score: score, Analysis: analysis}}
}

// NewContentSuggestionResult builds a ContentSuggestion-tagged result.
func NewContentSuggestionResult(experienceID int64, suggestions []string) AnalysisResult {
	return AnalysisResult{
		Kind:       AnalysisContentSuggestion,
		Suggestion: &ContentSuggestion{ExperienceID: experienceID, Suggestions: suggestions},
	}
}
