package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure taxonomy for a statement extraction attempt. Every failure the
// coordinator surfaces wraps exactly one of these sentinels.
var (
	// ErrOCRFailure: the OCR collaborator could not produce text.
	ErrOCRFailure = errors.New("ocr failure")
	// ErrNetworkFailure: transport-level error or non-success status from the model service.
	ErrNetworkFailure = errors.New("network failure")
	// ErrSchemaFailure: the model reply was not valid JSON or did not match the required shape.
	ErrSchemaFailure = errors.New("schema failure")
	// ErrExtractionInFlight: a submission arrived while another was still processing.
	ErrExtractionInFlight = errors.New("extraction already in flight")

	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// FailureReason maps an extraction error onto the short reason string shown
// to the caller. Unknown errors fall back to the raw message.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOCRFailure):
		return "OCR failed"
	case errors.Is(err, ErrNetworkFailure):
		return "network error"
	case errors.Is(err, ErrSchemaFailure):
		return "bad model reply"
	default:
		return err.Error()
	}
}
