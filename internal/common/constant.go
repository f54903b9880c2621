// Package common contains shared constants and sentinel errors used across
// the console components.
package common

// Credential store keys. They mirror the cookie names the web console used,
// so a store dump reads the same way the browser jar did.
const (
	KeyAuthToken    = "authToken"
	KeyRefreshToken = "refreshToken"
	KeyUserEmail    = "userEmail"
)

// AuthorizationHeaderName carries the bearer access token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request for correlation with server logs.
const RequestIDHeaderName = "X-Request-ID"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "
