package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/versioncheck/internal/client/services"
	"github.com/dmitrijs2005/versioncheck/internal/client/session"
	"github.com/dmitrijs2005/versioncheck/internal/logging"
	"github.com/dmitrijs2005/versioncheck/internal/observability"
)

// App is the interactive console. It talks to the user through reader and
// out and to the backend through the services.
type App struct {
	auth     services.AuthService
	catalog  services.CatalogService
	reporter observability.Reporter
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(auth services.AuthService, catalog services.CatalogService, reporter observability.Reporter,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	if reporter == nil {
		reporter = observability.NewSentryReporter(nil)
	}
	return &App{
		auth:     auth,
		catalog:  catalog,
		reporter: reporter,
		log:      logger.With("component", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run asks for credentials when there is no session yet and then serves
// commands until the user exits, the input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to the version-check console (type 'help' for commands)")

	if !a.isLoggedIn(ctx) {
		a.handleError(ctx, a.Login(ctx))
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	st, err := a.auth.State(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session state", "error", err)
		return false
	}
	return st != session.Unauthenticated
}

// status is shown in the prompt, e.g. "(ops@example.com authenticated)".
func (a *App) status(ctx context.Context) string {
	st, err := a.auth.State(ctx)
	if err != nil || st == session.Unauthenticated {
		return ""
	}
	user, _ := a.auth.CurrentUser(ctx)
	if user == "" {
		return fmt.Sprintf("(%s)", st)
	}
	return fmt.Sprintf("(%s %s)", user, st)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
