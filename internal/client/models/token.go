// Package models defines the data the console exchanges with the backend:
// token pairs, app groups, apps and the forms used to create or edit them.
package models

// TokenPair is what the token endpoint returns on login and refresh.
// RefreshToken is empty when the server did not rotate it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
