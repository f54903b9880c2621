package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/common"
)

// handleError turns a command error into something the user can act on.
// A session that can no longer be refreshed is cleared and the user is sent
// back to the login prompt.
func (a *App) handleError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if common.IsSessionEnded(err) {
		a.sessionEnded(ctx, err)
		return
	}
	a.printError(ctx, err)
}

func (a *App) sessionEnded(ctx context.Context, err error) {
	if errors.Is(err, common.ErrRefreshRejected) {
		a.reporter.Report(ctx, err, map[string]string{"kind": "refresh_rejected"})
	}
	a.log.Warn(ctx, "session ended", "error", err)

	if lerr := a.auth.Logout(ctx); lerr != nil {
		a.log.Error(ctx, "clearing session", "error", lerr)
	}

	a.println("Session expired, please log in again.")
	if err := a.Login(ctx); err != nil {
		a.printError(ctx, err)
	}
}

func (a *App) printError(ctx context.Context, err error) {
	var reqErr *common.RequestError

	switch {
	case errors.Is(err, io.EOF):
		a.println("Cancelled")
		return
	case errors.Is(err, common.ErrValidation):
		a.println("Please fix the following:")
		for _, f := range models.FieldErrors(err) {
			a.printf("  - %s\n", f.Message)
		}
		return
	case errors.Is(err, common.ErrInvalidCredentials):
		a.println("Invalid username or password")
	case errors.Is(err, common.ErrNetworkFailure):
		a.println("Server unreachable, please try again later")
	case errors.As(err, &reqErr):
		if reqErr.Body != "" {
			a.printf("Request failed (status %d): %s\n", reqErr.StatusCode, reqErr.Body)
		} else {
			a.printf("Request failed (status %d)\n", reqErr.StatusCode)
		}
	default:
		a.printf("Error: %v\n", err)
	}
	a.log.Debug(ctx, "command failed", "error", err)
}
