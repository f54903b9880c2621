package cli

import (
	"context"

	"github.com/dmitrijs2005/versioncheck/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and starts a new session. The
// password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)

	if err := a.auth.Login(ctx, userName, password); err != nil {
		a.log.Info(ctx, "login unsuccessful", "user", userName, "error", err)
		return err
	}

	a.log.Info(ctx, "login successful", "user", userName)
	a.println("Login successful")
	return nil
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// Status prints who is signed in and where the session stands.
func (a *App) Status(ctx context.Context) error {
	st, err := a.auth.State(ctx)
	if err != nil {
		return err
	}
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == "" {
		user = "-"
	}
	a.printf("User:    %s\nSession: %s\n", user, st)
	return nil
}

