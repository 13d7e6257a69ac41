package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// SetFieldRequest is a top-level or personal-info field edit.
type SetFieldRequest struct {
	Path  string `json:"path" validate:"required"`
	Value string `json:"value"`
}

// SetItemFieldRequest is a field edit on one id-keyed collection item.
type SetItemFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// AddSkillRequest adds one skill to the flat skill list.
type AddSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// JobContextRequest replaces the target-job description text.
type JobContextRequest struct {
	Text string `json:"text"`
}

// decodeAndValidate decodes a JSON body into req and runs struct validation.
// A false return means a response has already been written.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage flattens validator errors into one user-facing line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// pathCollection reads and checks the {collection} path segment. A false
// return means a response has already been written.
func (s *Server) pathCollection(w http.ResponseWriter, r *http.Request) (store.Collection, bool) {
	col := store.Collection(r.PathValue("collection"))
	if !col.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown collection: "+string(col))
		return "", false
	}
	return col, true
}

// pathID reads and parses the {id} path segment.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid item id")
		return 0, false
	}
	return id, true
}

// handleGetResume returns the current document snapshot.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceResume swaps in a whole new document.
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request) {
	var doc types.ResumeDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.store.Replace(doc)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleSetField edits the summary or a personal-info field.
func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if err := s.bridge.SetField(req.Path, req.Value); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleAddItem appends a blank item to a collection and returns its id.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	col, ok := s.pathCollection(w, r)
	if !ok {
		return
	}

	var id int64
	switch col {
	case store.CollectionExperience:
		id = s.bridge.AddExperience()
	case store.CollectionEducation:
		id = s.bridge.AddEducation()
	case store.CollectionCertificates:
		id = s.bridge.AddCertificate()
	}
	s.jsonResponse(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleSetItemField edits one field of one collection item. A missing id is
// a silent no-op per the store's merge rules.
func (s *Server) handleSetItemField(w http.ResponseWriter, r *http.Request) {
	col, ok := s.pathCollection(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req SetItemFieldRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if err := s.bridge.SetItemField(col, id, req.Field, req.Value); err != nil {
		s.operationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleRemoveItem deletes one collection item. Deleting an absent id is a
// no-op and still returns the snapshot.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	col, ok := s.pathCollection(w, r)
	if !ok {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	s.bridge.RemoveItem(col, id)
	s.jsonResponse(w, http.StatusOK, s.store.Snapshot())
}

// handleAddSkill commits one skill; a case-insensitive duplicate is silently
// dropped and reported as added=false.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var req AddSkillRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	s.bridge.SetSkillInput(req.Skill)
	added := s.bridge.CommitSkill()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"added":  added,
		"skills": s.store.Snapshot().Skills,
	})
}

// handleRemoveSkill removes the skill named by the ?skill= query parameter.
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	if skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'skill' query parameter")
		return
	}

	s.bridge.RemoveSkill(skill)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": s.store.Snapshot().Skills})
}

// handleGetJobContext returns the target-job description text.
func (s *Server) handleGetJobContext(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": s.store.JobContext()})
}

// handleSetJobContext replaces the target-job description text.
func (s *Server) handleSetJobContext(w http.ResponseWriter, r *http.Request) {
	var req JobContextRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.bridge.SetJobContext(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": s.store.JobContext()})
}
