package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
	KindBadRequest ErrorKind = "bad_request"

	// Pipeline error kinds. Each maps a distinct failure of the
	// ingest/transcribe/render pipeline so the transport layer can
	// report it without inspecting error strings.
	KindStorage             ErrorKind = "storage"
	KindUnsupportedMedia    ErrorKind = "unsupported_media"
	KindUnknownModel        ErrorKind = "unknown_model"
	KindTranscriptionFailed ErrorKind = "transcription_failed"
	KindMissingSource       ErrorKind = "missing_source"
	KindInvalidSpan         ErrorKind = "invalid_span"
	KindEncode              ErrorKind = "encode_error"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest, KindInvalidSpan, KindUnknownModel:
		return http.StatusBadRequest
	case KindNotFound, KindMissingSource:
		return http.StatusNotFound
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindTranscriptionFailed, KindEncode, KindStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewStorageError reports a session directory or artifact I/O failure.
func NewStorageError(err error) *APIError {
	return &APIError{
		Kind:    KindStorage,
		Message: fmt.Sprintf("session storage failure: %v", err),
	}
}

// NewUnsupportedMediaError reports an upload the codec service cannot decode.
func NewUnsupportedMediaError(err error) *APIError {
	return &APIError{
		Kind:    KindUnsupportedMedia,
		Message: fmt.Sprintf("cannot decode uploaded media: %v", err),
	}
}

// NewUnknownModelError reports an unresolvable language/size combination.
func NewUnknownModelError(lang string) *APIError {
	return &APIError{
		Kind:    KindUnknownModel,
		Message: fmt.Sprintf("no speech model for language %q", lang),
	}
}

// NewTranscriptionFailedError reports a speech engine failure.
func NewTranscriptionFailedError(err error) *APIError {
	return &APIError{
		Kind:    KindTranscriptionFailed,
		Message: fmt.Sprintf("transcription failed: %v", err),
	}
}

// NewMissingSourceError reports a render attempted before the required
// artifact was ingested.
func NewMissingSourceError(artifact string) *APIError {
	return &APIError{
		Kind:    KindMissingSource,
		Message: fmt.Sprintf("session has no %s artifact; ingest must run first", artifact),
	}
}

// NewInvalidSpanError reports a selection span that is inverted or outside
// the source duration.
func NewInvalidSpanError(err error) *APIError {
	return &APIError{
		Kind:    KindInvalidSpan,
		Message: fmt.Sprintf("invalid selection: %v", err),
	}
}

// NewEncodeError reports a failure writing the rendered output container.
func NewEncodeError(err error) *APIError {
	return &APIError{
		Kind:    KindEncode,
		Message: fmt.Sprintf("cannot encode output: %v", err),
	}
}

// Kind extracts the ErrorKind from an error, or KindInternal when the error
// did not originate in this package.
func Kind(err error) ErrorKind {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Kind
	}
	return KindInternal
}
