// Package services contains the application services of the console: login
// and session housekeeping, and the app catalog operations.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/client/session"
)

// AuthService defines the authentication operations of the console.
//
// Contract:
//   - Login: exchange username/password for tokens and start a session.
//   - Logout: forget every stored credential.
//   - CurrentUser: email of the signed-in user, or "".
//   - State: where the session stands, without a network call.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
	State(ctx context.Context) (session.State, error)
}

// PasswordGranter performs the password grant; *client.TokenClient satisfies it.
type PasswordGranter interface {
	PasswordGrant(ctx context.Context, username, password string) (models.TokenPair, error)
}

// Sessions stores and inspects the session; *session.Manager satisfies it.
type Sessions interface {
	StartSession(ctx context.Context, pair models.TokenPair, userEmail string) error
	EndSession(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
	State(ctx context.Context) (session.State, error)
}

type authService struct {
	tokens   PasswordGranter
	sessions Sessions
}

// NewAuthService constructs an AuthService bound to the token endpoint and
// the session manager.
func NewAuthService(tokens PasswordGranter, sessions Sessions) AuthService {
	return &authService{tokens: tokens, sessions: sessions}
}

// Login validates the input before calling the server. On success the
// previous session, if any, is replaced.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)

	var fields []models.FieldError
	if username == "" {
		fields = append(fields, models.FieldError{Field: "username", Message: "Username is required"})
	}
	if len(password) == 0 {
		fields = append(fields, models.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}

	pair, err := a.tokens.PasswordGrant(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.StartSession(ctx, pair, username); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.EndSession(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (string, error) {
	return a.sessions.CurrentUser(ctx)
}

func (a *authService) State(ctx context.Context) (session.State, error) {
	return a.sessions.State(ctx)
}
