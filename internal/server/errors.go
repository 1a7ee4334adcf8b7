// Package server provides the HTTP REST API for caregiver parsing and matching.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/carematch/carematch-api/internal/extraction"
	"github.com/carematch/carematch-api/internal/matching"
	"github.com/carematch/carematch-api/internal/pdftext"
	"github.com/carematch/carematch-api/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
//
// Rejected uploads and invalid request bodies are the caller's fault (400).
// A document that passed the upload checks but yielded nothing usable is a
// semantic failure (422). Generator and extraction failures are ours (500).
func HTTPStatus(err error) int {
	var (
		validationErr *schemas.ValidationError
		fieldErrs     validator.ValidationErrors
		extractionErr *pdftext.ExtractionError
	)

	switch {
	case errors.Is(err, pdftext.ErrUnsupportedFormat),
		errors.Is(err, pdftext.ErrEmptyInput),
		errors.Is(err, matching.ErrNoProfiles),
		errors.As(err, &validationErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.Is(err, pdftext.ErrNoTextContent),
		errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text safe to surface to API clients.
// Generator failures and malformed generator output get a generic message so
// prompt internals never leak into responses.
func PublicMessage(err error) string {
	var (
		generatorErr *extraction.GeneratorError
		malformedErr *extraction.MalformedOutputError
		shapeErr     *extraction.ExperienceShapeError
	)

	switch {
	case errors.As(err, &malformedErr), errors.As(err, &shapeErr):
		return "AI agent returned invalid JSON"
	case errors.As(err, &generatorErr):
		return "AI generation failed"
	case HTTPStatus(err) == http.StatusInternalServerError:
		return "internal server error"
	default:
		return err.Error()
	}
}
