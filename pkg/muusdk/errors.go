package muusdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the gateway.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int

	// Code is the machine-readable error code when the gateway provides one
	Code string

	// Message is a human-readable description of the error
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// parseErrorResponse turns an HTTP error response into a typed *APIError.
// The gateway's services are not uniform about error bodies, so several
// shapes are tried before falling back to the status text.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		code := errResp.Code
		if code == "" {
			code = errResp.Error
		}
		if code != "" || errResp.Message != "" {
			msg := errResp.Message
			if msg == "" {
				msg = http.StatusText(resp.StatusCode)
			}
			return &APIError{
				StatusCode: resp.StatusCode,
				Code:       code,
				Message:    msg,
			}
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
