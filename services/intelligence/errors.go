package ai

import (
	"errors"
	"fmt"
)

var (
	ErrModelUnavailable = errors.New("language model unavailable")
	ErrInvalidJSON      = errors.New("model response is not valid JSON")
	ErrNotObject        = errors.New("model response is not a JSON object")
)

// ExtractionError reports why the model-backed extractor produced nothing usable.
type ExtractionError struct {
	Code    string
	Message string
	Kind    error
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExtractionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newExtractionError(kind error, cause error) error {
	code := "extractionError"
	switch kind {
	case ErrModelUnavailable:
		code = "modelUnavailable"
	case ErrInvalidJSON:
		code = "invalidJSON"
	case ErrNotObject:
		code = "notObject"
	}
	return &ExtractionError{
		Code:    code,
		Message: kind.Error(),
		Kind:    kind,
		Cause:   cause,
	}
}
