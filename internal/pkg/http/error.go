package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
)

// GenericFailureMessage is shown when the server does not provide one
const GenericFailureMessage = "Something went wrong. Please try again."

// APIError carries the server-provided error message for a failed call
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// decodeAPIError extracts the server's {message} payload from an error
// response, falling back to a generic message
func decodeAPIError(resp *nethttp.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    GenericFailureMessage,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}

	return apiErr
}

// MessageFromError returns a user-facing message for any error coming
// out of the client layer: the server message when present, otherwise
// the given fallback
func MessageFromError(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}
