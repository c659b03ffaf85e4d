package utils

import (
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrorKindInvalidURL       ErrorKind = "invalid_url"
	ErrorKindMissingURL       ErrorKind = "missing_url"
	ErrorKindExtractionFailed ErrorKind = "extraction_failed"
	ErrorKindNoVideoURL       ErrorKind = "no_video_url"
	ErrorKindVideoUnavailable ErrorKind = "video_unavailable"
	ErrorKindAgeRestricted    ErrorKind = "age_restricted"
	ErrorKindPrivateVideo     ErrorKind = "private_video"
	ErrorKindExtractionError  ErrorKind = "extraction_error"
	ErrorKindFormatsError     ErrorKind = "formats_error"
	ErrorKindInternalError    ErrorKind = "internal_error"
	ErrorKindNotFound         ErrorKind = "not_found"
)

// APIError is the single error type crossing the handler boundary. It
// marshals to the public error body; the HTTP status stays server-side.
type APIError struct {
	Kind       ErrorKind `json:"error"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func NewAPIError(kind ErrorKind, message string, statusCode int) *APIError {
	return &APIError{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Common error constructors
func NewInvalidURLError() *APIError {
	return NewAPIError(
		ErrorKindInvalidURL,
		"The provided URL is not a valid YouTube URL",
		http.StatusBadRequest,
	)
}

func NewMissingURLError() *APIError {
	return NewAPIError(
		ErrorKindMissingURL,
		"Missing URL parameter in JSON body",
		http.StatusBadRequest,
	)
}

func NewExtractionFailedError() *APIError {
	return NewAPIError(
		ErrorKindExtractionFailed,
		"Could not extract video information",
		http.StatusBadRequest,
	)
}

func NewNoVideoURLError() *APIError {
	return NewAPIError(
		ErrorKindNoVideoURL,
		"Could not obtain a playable video URL",
		http.StatusBadRequest,
	)
}

func NewVideoUnavailableError() *APIError {
	return NewAPIError(
		ErrorKindVideoUnavailable,
		"The video is unavailable (it may be private, deleted or region restricted)",
		http.StatusNotFound,
	)
}

func NewAgeRestrictedError() *APIError {
	return NewAPIError(
		ErrorKindAgeRestricted,
		"The video is age restricted",
		http.StatusForbidden,
	)
}

func NewPrivateVideoError() *APIError {
	return NewAPIError(
		ErrorKindPrivateVideo,
		"The video is private",
		http.StatusForbidden,
	)
}

func NewExtractionError(detail string) *APIError {
	return NewAPIError(
		ErrorKindExtractionError,
		fmt.Sprintf("Error extracting the video: %s", detail),
		http.StatusInternalServerError,
	)
}

func NewFormatsError(detail string) *APIError {
	return NewAPIError(
		ErrorKindFormatsError,
		fmt.Sprintf("Error fetching formats: %s", detail),
		http.StatusInternalServerError,
	)
}

func NewInternalError() *APIError {
	return NewAPIError(
		ErrorKindInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)
}

func NewNotFoundError() *APIError {
	return NewAPIError(
		ErrorKindNotFound,
		"Endpoint not found",
		http.StatusNotFound,
	)
}
