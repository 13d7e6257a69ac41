package gateway

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/jonathan/resume-studio/internal/upload"
)

const promptFile = "gateway.json"

// GenerateSummary drafts a professional summary from the current document and
// replaces the summary field wholesale. On failure the summary is left
// unchanged.
func (g *Gateway) GenerateSummary(ctx context.Context) error {
	g.setFlag(func(l *LoadingState) { l.Summary = true })
	defer g.setFlag(func(l *LoadingState) { l.Summary = false })
	g.cache.Clear()

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "generate-summary"), map[string]string{
		"ResumeText": ResumeText(g.store.Snapshot(), true),
	})

	summary, err := g.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[GATEWAY] generate-summary %s failed: %v", reqID, err)
		return &ServiceError{Op: "generate-summary", Cause: err}
	}

	return g.store.MutateField("summary", summary)
}

// GenerateExperienceBullets drafts bullet points for one experience item and
// replaces that item's description wholesale. A missing id is a no-op; if the
// item is removed while the request is in flight, the id-keyed merge degrades
// to a no-op in the store.
func (g *Gateway) GenerateExperienceBullets(ctx context.Context, id int64) error {
	g.setFlag(func(l *LoadingState) { l.Experience = id })
	defer g.setFlag(func(l *LoadingState) { l.Experience = 0 })
	g.cache.Clear()

	item, ok := g.findExperience(id)
	if !ok {
		return nil
	}

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "generate-experience"), map[string]string{
		"Title":   item.Title,
		"Company": item.Company,
	})

	points, err := g.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[GATEWAY] generate-experience %s failed: %v", reqID, err)
		return &ServiceError{Op: "generate-experience", Cause: err}
	}

	return g.store.MutateCollectionItem(store.CollectionExperience, id, "description", points)
}

// ContentSuggestions produces example bullet points for the targeted
// experience item. The result only populates the analysis slot; nothing
// touches the document until the user explicitly accepts a suggestion.
func (g *Gateway) ContentSuggestions(ctx context.Context, id int64) error {
	g.setFlag(func(l *LoadingState) { l.Suggestions = id })
	defer g.setFlag(func(l *LoadingState) { l.Suggestions = 0 })
	g.cache.Clear()

	item, ok := g.findExperience(id)
	if !ok || strings.TrimSpace(item.Title) == "" {
		return &ValidationRejectedError{Reason: "please enter a job title first"}
	}
	g.cache.Begin()

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "content-suggestions"), map[string]string{
		"Title": item.Title,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GATEWAY] content-suggestions %s failed: %v", reqID, err)
		svcErr := &ServiceError{Op: "content-suggestions", Cause: err}
		g.cache.Fail(svcErr)
		return svcErr
	}

	suggestions, err := parseStringArray(raw)
	if err != nil {
		// Downgraded: the panel still renders something.
		log.Printf("[GATEWAY] content-suggestions %s parse failed: %v", reqID, err)
		suggestions = []string{"Error: could not parse content suggestions."}
	}
	g.cache.Resolve(types.NewContentSuggestionResult(id, suggestions))
	return nil
}

// AcceptSuggestion appends the chosen suggestion text as a new bullet line to
// the targeted experience item's description. This is the only additive
// merge; every other operation replaces wholesale.
func (g *Gateway) AcceptSuggestion(id int64, suggestion string) {
	g.store.AppendExperienceBullet(id, suggestion)
}

// AnalyzeKeywords identifies job-description keywords missing from the
// resume. Rejected before dispatch when no job context is set.
func (g *Gateway) AnalyzeKeywords(ctx context.Context) error {
	jobContext := g.store.JobContext()
	if strings.TrimSpace(jobContext) == "" {
		return &ValidationRejectedError{Reason: "please paste a job description first"}
	}

	g.setFlag(func(l *LoadingState) { l.Keywords = true })
	defer g.setFlag(func(l *LoadingState) { l.Keywords = false })
	g.cache.Begin()

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "optimize-keywords"), map[string]string{
		"ResumeText":     ResumeText(g.store.Snapshot(), true),
		"JobDescription": jobContext,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GATEWAY] optimize-keywords %s failed: %v", reqID, err)
		svcErr := &ServiceError{Op: "optimize-keywords", Cause: err}
		g.cache.Fail(svcErr)
		return svcErr
	}

	keywords, err := parseStringArray(raw)
	if err != nil {
		log.Printf("[GATEWAY] optimize-keywords %s parse failed: %v", reqID, err)
		keywords = []string{"Error: could not parse keyword suggestions."}
	}
	g.cache.Resolve(types.NewKeywordsResult(keywords))
	return nil
}

// SuggestSkills proposes skills to add, excluding skills already present
// (case-insensitive). Rejected before dispatch when no job context is set.
func (g *Gateway) SuggestSkills(ctx context.Context) error {
	jobContext := g.store.JobContext()
	if strings.TrimSpace(jobContext) == "" {
		return &ValidationRejectedError{Reason: "please paste a job description first"}
	}

	g.setFlag(func(l *LoadingState) { l.Skills = true })
	defer g.setFlag(func(l *LoadingState) { l.Skills = false })
	g.cache.Begin()

	doc := g.store.Snapshot()
	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "suggest-skills"), map[string]string{
		"ExperienceText": ExperienceText(doc),
		"JobDescription": jobContext,
		"CurrentSkills":  strings.Join(doc.Skills, ", "),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GATEWAY] suggest-skills %s failed: %v", reqID, err)
		svcErr := &ServiceError{Op: "suggest-skills", Cause: err}
		g.cache.Fail(svcErr)
		return svcErr
	}

	suggested, err := parseStringArray(raw)
	if err != nil {
		log.Printf("[GATEWAY] suggest-skills %s parse failed: %v", reqID, err)
		g.cache.Resolve(types.NewSkillsResult([]string{"Error: could not parse skill suggestions."}))
		return nil
	}

	// The prompt already asks the model to skip existing skills; filter again
	// so the exclusion holds even when it ignores the instruction.
	existing := make(map[string]bool, len(doc.Skills))
	for _, skill := range doc.Skills {
		existing[strings.ToLower(skill)] = true
	}
	fresh := make([]string, 0, len(suggested))
	for _, skill := range suggested {
		if !existing[strings.ToLower(skill)] {
			fresh = append(fresh, skill)
		}
	}
	g.cache.Resolve(types.NewSkillsResult(fresh))
	return nil
}

// CheckATS produces markdown feedback on ATS compatibility. No precondition.
func (g *Gateway) CheckATS(ctx context.Context) error {
	g.setFlag(func(l *LoadingState) { l.ATS = true })
	defer g.setFlag(func(l *LoadingState) { l.ATS = false })
	g.cache.Begin()

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "ats-check"), map[string]string{
		"ResumeText": ResumeText(g.store.Snapshot(), true),
	})

	feedback, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GATEWAY] ats-check %s failed: %v", reqID, err)
		svcErr := &ServiceError{Op: "ats-check", Cause: err}
		g.cache.Fail(svcErr)
		return svcErr
	}

	g.cache.Resolve(types.NewATSResult(feedback))
	return nil
}

// MatchJob scores the resume against the job description. A response that
// does not match the expected schema escalates as a hard failure with no
// partial result.
func (g *Gateway) MatchJob(ctx context.Context) error {
	jobContext := g.store.JobContext()
	if strings.TrimSpace(jobContext) == "" {
		return &ValidationRejectedError{Reason: "please paste a job description first"}
	}

	g.setFlag(func(l *LoadingState) { l.Match = true })
	defer g.setFlag(func(l *LoadingState) { l.Match = false })
	g.cache.Begin()

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "match-job"), map[string]string{
		"ResumeText":     ResumeText(g.store.Snapshot(), true),
		"JobDescription": jobContext,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		log.Printf("[GATEWAY] match-job %s failed: %v", reqID, err)
		svcErr := &ServiceError{Op: "match-job", Cause: err}
		g.cache.Fail(svcErr)
		return svcErr
	}

	if err := schemas.Validate(schemas.MatchReport, raw); err != nil {
		log.Printf("[GATEWAY] match-job %s parse failed: %v", reqID, err)
		parseErr := &ResponseParseError{Op: "match-job", Cause: err}
		g.cache.Fail(parseErr)
		return parseErr
	}

	var report struct {
		Score    float64 `json:"score"`
		Analysis string  `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		parseErr := &ResponseParseError{Op: "match-job", Cause: err}
		g.cache.Fail(parseErr)
		return parseErr
	}
	if report.Analysis == "" {
		report.Analysis = "No analysis provided."
	}

	g.cache.Resolve(types.NewMatchResult(int(report.Score), report.Analysis))
	return nil
}

// GenerateCoverLetter drafts a cover letter into the independent content
// slot; it is never merged into the document. On service failure the slot
// shows an inline error message instead of returning an error.
func (g *Gateway) GenerateCoverLetter(ctx context.Context) error {
	jobContext := g.store.JobContext()
	if strings.TrimSpace(jobContext) == "" {
		return &ValidationRejectedError{Reason: "please paste a job description first to generate a cover letter"}
	}

	g.setFlag(func(l *LoadingState) { l.CoverLetter = true })
	defer g.setFlag(func(l *LoadingState) { l.CoverLetter = false })
	g.setCoverLetter("")

	reqID := uuid.New()
	prompt := prompts.Format(prompts.MustGet(promptFile, "cover-letter"), map[string]string{
		"ResumeText":     ResumeText(g.store.Snapshot(), true),
		"JobDescription": jobContext,
	})

	letter, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GATEWAY] cover-letter %s failed: %v", reqID, err)
		g.setCoverLetter("Sorry, there was an error generating your cover letter. Please try again.")
		return nil
	}

	g.setCoverLetter(letter)
	return nil
}

// ParseResume extracts structured content from an uploaded resume file and
// merges it into the document under the import merge policy. Schema failures
// escalate as hard failures and the document is left unchanged.
func (g *Gateway) ParseResume(ctx context.Context, file upload.Payload) error {
	g.setFlag(func(l *LoadingState) { l.Parsing = true })
	defer g.setFlag(func(l *LoadingState) { l.Parsing = false })

	reqID := uuid.New()
	prompt := prompts.MustGet(promptFile, "parse-resume")

	raw, err := g.client.GenerateJSONWithFile(ctx, prompt, llm.FilePart{
		MIMEType: file.MIMEType,
		Data:     file.Data,
	}, llm.TierAdvanced)
	if err != nil {
		log.Printf("[GATEWAY] parse-resume %s failed: %v", reqID, err)
		return &ServiceError{Op: "parse-resume", Cause: err}
	}

	if err := schemas.Validate(schemas.ParsedResume, raw); err != nil {
		log.Printf("[GATEWAY] parse-resume %s parse failed: %v", reqID, err)
		return &ResponseParseError{Op: "parse-resume", Cause: err}
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return &ResponseParseError{Op: "parse-resume", Cause: err}
	}

	g.store.Replace(MergeParsed(g.store.Snapshot(), parsed))
	return nil
}

// findExperience looks up an experience item in the current snapshot.
func (g *Gateway) findExperience(id int64) (types.ExperienceItem, bool) {
	for _, item := range g.store.Snapshot().Experience {
		if item.ID == id {
			return item, true
		}
	}
	return types.ExperienceItem{}, false
}

// parseStringArray decodes and schema-checks a JSON string-array response.
func parseStringArray(raw string) ([]string, error) {
	if err := schemas.Validate(schemas.StringArray, raw); err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
