package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/types"
)

// ExportRequest carries the presentation choices for an export. An empty body
// exports with the default style.
type ExportRequest struct {
	Template       string `json:"template,omitempty"`
	Font           string `json:"font,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

// style merges the request over the default style.
func (req ExportRequest) style() types.StyleOptions {
	style := types.DefaultStyle()
	if req.Template != "" {
		style.Template = types.Template(req.Template)
	}
	if req.Font != "" {
		style.Font = req.Font
	}
	if req.PrimaryColor != "" {
		style.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		style.SecondaryColor = req.SecondaryColor
	}
	return style
}

// decodeExportRequest tolerates an empty body. A false return means a
// response has already been written.
func (s *Server) decodeExportRequest(w http.ResponseWriter, r *http.Request) (types.StyleOptions, bool) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return types.StyleOptions{}, false
	}

	style := req.style()
	if !style.Template.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template: "+string(style.Template))
		return types.StyleOptions{}, false
	}
	return style, true
}

// handleExport writes the document in one format and returns the output path.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.PathValue("format"))
	if !format.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown export format: "+string(format))
		return
	}

	style, ok := s.decodeExportRequest(w, r)
	if !ok {
		return
	}

	path, err := s.exporter.Export(r.Context(), s.store.Snapshot(), style, format)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"path": path})
}

// handleExportAll produces all three formats concurrently.
func (s *Server) handleExportAll(w http.ResponseWriter, r *http.Request) {
	style, ok := s.decodeExportRequest(w, r)
	if !ok {
		return
	}

	paths, err := s.exporter.ExportAll(r.Context(), s.store.Snapshot(), style)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"paths": paths})
}
