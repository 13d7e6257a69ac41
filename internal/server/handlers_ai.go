package server

import (
	"io"
	"net/http"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/upload"
)

// maxUploadBytes caps resume uploads; the AI service rejects larger payloads
// anyway.
const maxUploadBytes = 20 << 20

// AcceptSuggestionRequest carries the suggestion text being accepted into an
// experience item.
type AcceptSuggestionRequest struct {
	Suggestion string `json:"suggestion" validate:"required"`
}

// handleAISummary drafts a professional summary and merges it into the
// document.
func (s *Server) handleAISummary(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.GenerateSummary(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleAIExperience drafts bullet points for one experience item.
func (s *Server) handleAIExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.gateway.GenerateExperienceBullets(r.Context(), id); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleAISuggestions produces content suggestions for one experience item
// into the analysis slot.
func (s *Server) handleAISuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.gateway.ContentSuggestions(r.Context(), id); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleAcceptSuggestion appends an accepted suggestion to its experience
// item.
func (s *Server) handleAcceptSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var req AcceptSuggestionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.gateway.AcceptSuggestion(id, req.Suggestion)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleAIKeywords runs the keyword gap analysis.
func (s *Server) handleAIKeywords(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.AnalyzeKeywords(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleAISkills runs the skill suggestion analysis.
func (s *Server) handleAISkills(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.SuggestSkills(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleAIATS runs the ATS compatibility check.
func (s *Server) handleAIATS(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.CheckATS(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleAIMatch runs the job-match scoring analysis.
func (s *Server) handleAIMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.MatchJob(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleAICoverLetter drafts a cover letter into the content slot.
func (s *Server) handleAICoverLetter(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.GenerateCoverLetter(r.Context()); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"coverLetter": s.gateway.CoverLetter()})
}

// handleAIParse accepts a multipart resume upload, extracts structured
// content through the AI service and merges it into the document.
func (s *Server) handleAIParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Could not read upload")
		return
	}

	payload, err := upload.FromBytes(header.Filename, data)
	if err != nil {
		s.operationError(w, err)
		return
	}

	if err := s.gateway.ParseResume(r.Context(), payload); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleGetAnalysis returns the analysis slot.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, analysisPayload(s.cache.Get()))
}

// handleGetLoading returns the per-operation loading flags.
func (s *Server) handleGetLoading(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.gateway.Loading())
}

// handleGetCoverLetter returns the cover-letter content slot.
func (s *Server) handleGetCoverLetter(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"coverLetter": s.gateway.CoverLetter()})
}

// analysisPayload shapes an analysis snapshot for the wire.
func analysisPayload(snap analysis.Snapshot) map[string]any {
	payload := map[string]any{"state": snap.State.String()}
	if snap.Result != nil {
		payload["result"] = snap.Result
	}
	if snap.Err != nil {
		payload["error"] = snap.Err.Error()
	}
	return payload
}
