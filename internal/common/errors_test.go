package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestError_MatchesRequestFailed(t *testing.T) {
	var err error = &RequestError{Method: "GET", URL: "http://x/api", StatusCode: 500, Body: "boom\n"}

	require.ErrorIs(t, err, ErrRequestFailed)
	require.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "GET http://x/api: status 500: boom", err.Error())

	wrapped := fmt.Errorf("list groups: %w", err)
	require.ErrorIs(t, wrapped, ErrRequestFailed)

	var re *RequestError
	require.True(t, errors.As(wrapped, &re))
	assert.Equal(t, 500, re.StatusCode)
}

func TestRequestError_EmptyBody(t *testing.T) {
	err := &RequestError{Method: "DELETE", URL: "/x", StatusCode: 404}
	assert.Equal(t, "DELETE /x: status 404", err.Error())
}

func TestIsSessionEnded(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"expired", ErrSessionExpired, true},
		{"rejected wrapped", fmt.Errorf("refresh: %w", ErrRefreshRejected), true},
		{"network", ErrNetworkFailure, false},
		{"request", &RequestError{StatusCode: 400}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSessionEnded(tt.err))
		})
	}
}

func TestWipeBytes(t *testing.T) {
	b := []byte("secret")
	WipeBytes(b)
	assert.Equal(t, make([]byte, 6), b)

	assert.NotPanics(t, func() { WipeBytes(nil) })
}
