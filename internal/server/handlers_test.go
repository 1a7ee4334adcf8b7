package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carematch/carematch-api/internal/llm"
	"github.com/carematch/carematch-api/internal/types"
)

// fakeLLM returns a canned generator response or error.
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeLLM) Close() error { return nil }

// fakeExtractor returns canned text or an error for any input.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText([]byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestServer(t *testing.T, client llm.Client, extractor *fakeExtractor) *Server {
	t.Helper()
	cfg := Config{
		Port:   0,
		Client: client,
	}
	if extractor != nil {
		cfg.Extractor = extractor
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeLLM{}, nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHandleParseResume(t *testing.T) {
	profileJSON := `{
		"candidate_name": "Jane Doe",
		"careTypes": ["eldercare", "kitten-care"],
		"totalYearsOfExperience": "8",
		"languages": ["English", "Spanish"],
		"skills": ["medication management"],
		"certifications": ["CNA"],
		"summary": "Experienced caregiver.",
		"caregiving_experience": {
			"eldercare": {"years": 8, "conditions_experienced": ["diabetes"], "tasks_performed": ["bathing"], "medical_care": "insulin support"}
		}
	}`
	client := &fakeLLM{response: "```json\n" + profileJSON + "\n```"}
	s := newTestServer(t, client, &fakeExtractor{text: "Jane Doe resume text"})

	body, contentType := multipartUpload(t, "resume.pdf", []byte("%PDF-1.7 fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp types.ParseResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe resume text", resp.ExtractedText)
	assert.Equal(t, "Jane Doe", resp.Profile.Name)
	// Unknown care types are filtered out.
	assert.Equal(t, []string{"eldercare"}, resp.Profile.CareTypes)
	assert.Equal(t, 8.0, resp.Profile.YearsOfExperience)
	require.NotNil(t, resp.Profile.CaregivingExperience)
	require.NotNil(t, resp.Profile.CaregivingExperience.Eldercare)
}

func TestHandleParseResumeRejectsNonPDF(t *testing.T) {
	s := newTestServer(t, &fakeLLM{}, &fakeExtractor{text: "ignored"})

	body, contentType := multipartUpload(t, "resume.docx", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "only PDF files are accepted")
}

func TestHandleParseResumeMissingFile(t *testing.T) {
	s := newTestServer(t, &fakeLLM{}, &fakeExtractor{text: "ignored"})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file field is required")
}

func TestHandleParseResumeNoTextContent(t *testing.T) {
	// Real extractor: scanned-image PDFs reach 422, not 400.
	s := newTestServer(t, &fakeLLM{}, nil)

	body, contentType := multipartUpload(t, "scan.pdf", []byte("plain text, no signature"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	// Missing %PDF signature is an upload problem.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParseResumeMalformedGeneratorOutput(t *testing.T) {
	client := &fakeLLM{response: "Sorry, I cannot help with that."}
	s := newTestServer(t, client, &fakeExtractor{text: "resume text"})

	body, contentType := multipartUpload(t, "resume.pdf", []byte("%PDF-1.7"))
	req := httptest.NewRequest(http.MethodPost, "/api/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI agent returned invalid JSON")
}

func TestHandleMatch(t *testing.T) {
	ranking := `[
		{"id": "cg-2", "match_score": 48, "match_report": {"why_match": "limited overlap"}},
		{"id": "cg-1", "match_score": 92, "match_report": {"why_match": "strong overlap"}}
	]`
	s := newTestServer(t, &fakeLLM{response: ranking}, nil)

	reqBody := `{
		"profiles": [
			{"id": "cg-1", "name": "Jane Doe", "careTypes": ["eldercare"], "yearsOfExperience": 10},
			{"id": "cg-2", "name": "Maria Santos", "careTypes": ["childcare"], "yearsOfExperience": 2}
		],
		"requirements": {"careType": "eldercare"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var results []types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Jane Doe", results[0].Caregiver.Name)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, types.BadgeTopMatch, results[0].MatchBadge)
	assert.Equal(t, "Maria Santos", results[1].Caregiver.Name)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, types.BadgeNoMatch, results[1].MatchBadge)
}

func TestHandleMatchValidation(t *testing.T) {
	s := newTestServer(t, &fakeLLM{response: "[]"}, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"empty profiles", `{"profiles": [], "requirements": {"careType": "eldercare"}}`},
		{"missing requirements", `{"profiles": [{"name": "Jane"}]}`},
		{"missing care type", `{"profiles": [{"name": "Jane"}], "requirements": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleMatchGeneratorFailure(t *testing.T) {
	s := newTestServer(t, &fakeLLM{err: errors.New("quota exceeded")}, nil)

	reqBody := `{
		"profiles": [{"name": "Jane Doe"}],
		"requirements": {"careType": "eldercare"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI generation failed")
	assert.NotContains(t, rec.Body.String(), "quota exceeded")
}

func TestCORSPreflightAndHeaders(t *testing.T) {
	s, err := New(Config{Client: &fakeLLM{}, AllowedOrigin: "http://localhost:8080"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/match", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:8080", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, "http://localhost:8080", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
