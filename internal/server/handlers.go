package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/matching"
	"github.com/carematch/carematch-api/internal/pdftext"
	"github.com/carematch/carematch-api/internal/schemas"
	"github.com/carematch/carematch-api/internal/types"
)

// maxUploadSize bounds resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// handleParseResume accepts a multipart PDF upload, extracts its text, and
// returns the structured caregiver profile the generator parsed from it.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, pdftext.ErrUnsupportedFormat.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		s.logger.Warn("pdf extraction failed",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	profile, err := extraction.ParseResume(r.Context(), s.client, s.logger, text)
	if err != nil {
		s.logger.Error("resume parsing failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ParseResumeResponse{
		ExtractedText: text,
		Profile:       *profile,
	})
}

// handleMatch ranks the submitted caregiver profiles against the employer's
// care requirements.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	if err := schemas.ValidateMatchRequest(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	var req types.MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	results, err := matching.MatchProfiles(r.Context(), s.client, s.logger, req.Profiles, req.Requirements)
	if err != nil {
		s.logger.Error("matching failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}
