package extraction

import (
	"fmt"

	"github.com/carematch/carematch-api/internal/types"
)

// GeneratorError represents a failed call to the external generator. The
// generator call is expensive and is never retried here; retry policy, if
// any, belongs to the caller.
type GeneratorError struct {
	Message string
	Cause   error
}

func (e *GeneratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generator call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generator call failed: %s", e.Message)
}

func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError indicates the generator returned text that does not
// decode to the expected JSON payload.
type MalformedOutputError struct {
	Message string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed generator output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed generator output: %s", e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// ExperienceShapeError indicates an experience slot's fields cannot be
// coerced to the declared shape. Fatal for the request.
type ExperienceShapeError struct {
	CareType types.CareType
	Cause    error
}

func (e *ExperienceShapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid experience shape for %s: %v", e.CareType, e.Cause)
	}
	return fmt.Sprintf("invalid experience shape for %s", e.CareType)
}

func (e *ExperienceShapeError) Unwrap() error {
	return e.Cause
}
