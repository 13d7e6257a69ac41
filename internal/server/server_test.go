package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/gateway"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// scriptedClient returns canned AI responses for handler tests.
type scriptedClient struct {
	text string
	json string
	err  error
}

func (c *scriptedClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *scriptedClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return c.json, c.err
}

func (c *scriptedClient) GenerateJSONWithFile(context.Context, string, llm.FilePart, llm.ModelTier) (string, error) {
	return c.json, c.err
}

func (c *scriptedClient) Close() error { return nil }

func newTestServer(t *testing.T, client llm.Client) (*Server, *store.Store) {
	t.Helper()
	st := store.New(types.DefaultDocument(), "")
	cache := analysis.New()
	gw := gateway.New(st, cache, client)
	exporter, err := export.New(t.TempDir(), "")
	require.NoError(t, err)
	return New(Config{Port: 0}, st, cache, gw, exporter), st
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestGetResume(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodGet, "/api/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc types.ResumeDocument
	decodeBody(t, rec, &doc)
	assert.Equal(t, "Your Name", doc.PersonalInfo.Name)
}

func TestSetField(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPatch, "/api/resume/field", SetFieldRequest{
		Path: "personalInfo.name", Value: "Jane Q Public",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane Q Public", st.Snapshot().PersonalInfo.Name)
}

func TestSetField_UnknownPath(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPatch, "/api/resume/field", SetFieldRequest{
		Path: "experience.title", Value: "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetField_MissingPath(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPatch, "/api/resume/field", SetFieldRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCollectionLifecycle(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/resume/experience", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]int64
	decodeBody(t, rec, &created)
	id := created["id"]
	require.NotZero(t, id)

	rec = doJSON(t, s, http.MethodPatch, "/api/resume/experience/"+itoa(id), SetItemFieldRequest{
		Field: "title", Value: "SRE",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	found := false
	for _, item := range st.Snapshot().Experience {
		if item.ID == id {
			found = true
			assert.Equal(t, "SRE", item.Title)
		}
	}
	require.True(t, found)

	rec = doJSON(t, s, http.MethodDelete, "/api/resume/experience/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, item := range st.Snapshot().Experience {
		assert.NotEqual(t, id, item.ID)
	}
}

func TestUnknownCollection(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/resume/awards", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddSkill_DuplicateReportsNotAdded(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/resume/skills", AddSkillRequest{Skill: "Go"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, st.Snapshot().Skills, "Go")

	// Default document already has "React".
	rec = doJSON(t, s, http.MethodPost, "/api/resume/skills", AddSkillRequest{Skill: "react"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Added bool `json:"added"`
	}
	decodeBody(t, rec, &resp)
	assert.False(t, resp.Added)
}

func TestRemoveSkill(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodDelete, "/api/resume/skills?skill=React", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, st.Snapshot().Skills, "React")

	rec = doJSON(t, s, http.MethodDelete, "/api/resume/skills", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobContextRoundTrip(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPut, "/api/job-context", JobContextRequest{Text: "Go role"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/job-context", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go role")
}

func TestAISummary(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{text: "Drafted summary."})

	rec := doJSON(t, s, http.MethodPost, "/api/ai/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Drafted summary.", st.Snapshot().Summary)
}

func TestAIKeywords_RequiresJobContext(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{json: `["Go"]`})

	rec := doJSON(t, s, http.MethodPost, "/api/ai/keywords", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAIKeywords_Success(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{json: `["Terraform"]`})
	st.SetJobContext("Infra role")

	rec := doJSON(t, s, http.MethodPost, "/api/ai/keywords", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready"`)
	assert.Contains(t, rec.Body.String(), "Terraform")
}

func TestAIMatch_BadResponseIsBadGateway(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{json: `{"score": "high"}`})
	st.SetJobContext("Job")

	rec := doJSON(t, s, http.MethodPost, "/api/ai/match", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAICoverLetter_FailureStillOK(t *testing.T) {
	s, st := newTestServer(t, &scriptedClient{err: assert.AnError})
	st.SetJobContext("Job")

	rec := doJSON(t, s, http.MethodPost, "/api/ai/cover-letter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "error generating your cover letter")
}

func TestAIParse_MissingFile(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/ai/parse", strings.NewReader(""))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis_InitiallyIdle(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodGet, "/api/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"idle"`)
}

func TestGetLoading(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodGet, "/api/loading", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"summary":false`)
}

func TestExportHTML(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/export/html", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	_, err := os.Stat(resp["path"])
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(resp["path"], "Your_Name_Resume.html"))
}

func TestExport_UnknownFormat(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/export/rtf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport_UnknownTemplate(t *testing.T) {
	s, _ := newTestServer(t, &scriptedClient{})

	rec := doJSON(t, s, http.MethodPost, "/api/export/html", ExportRequest{Template: "brutalist"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
