// Package common defines shared constants and sentinel errors used across
// the session, client and console layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Session errors. Both end the session: the console clears the
	// credential store and asks the user to log in again.
	ErrSessionExpired  = errors.New("session expired")
	ErrRefreshRejected = errors.New("refresh token rejected")

	// Transport-level failure while talking to the backend. Never a reason
	// to log the user out.
	ErrNetworkFailure = errors.New("network failure")

	// The authenticated request itself failed (validation, server error).
	ErrRequestFailed = errors.New("request failed")

	// Login rejected by the token endpoint.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Form validation.
	ErrValidation = errors.New("validation error")
)

// RequestError describes a non-2xx answer from a resource endpoint.
// It matches ErrRequestFailed with errors.Is.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// IsSessionEnded reports whether err means the user must authenticate again.
func IsSessionEnded(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrRefreshRejected)
}
