package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	handleError(ctx context.Context, err error)

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error

	Groups(ctx context.Context) error
	AddGroup(ctx context.Context) error
	EditGroup(ctx context.Context, id string) error
	DeleteGroup(ctx context.Context, id string) error
	GroupImage(ctx context.Context, id, path string) error

	Apps(ctx context.Context, groupID string) error
	AddApp(ctx context.Context, groupID string) error
	EditApp(ctx context.Context, groupID, id string) error
	DeleteApp(ctx context.Context, id string) error
	AppImage(ctx context.Context, id, path string) error
}

type command struct {
	name string
	args []string
	// auth commands are only offered with a session.
	auth bool
	run  func(ctx context.Context, a execIface, args []string) error
}

var commands = []command{
	{name: "login", run: func(ctx context.Context, a execIface, _ []string) error { return a.Login(ctx) }},
	{name: "status", run: func(ctx context.Context, a execIface, _ []string) error { return a.Status(ctx) }},
	{name: "logout", auth: true, run: func(ctx context.Context, a execIface, _ []string) error { return a.Logout(ctx) }},

	{name: "groups", auth: true, run: func(ctx context.Context, a execIface, _ []string) error { return a.Groups(ctx) }},
	{name: "addgroup", auth: true, run: func(ctx context.Context, a execIface, _ []string) error { return a.AddGroup(ctx) }},
	{name: "editgroup", args: []string{"id"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.EditGroup(ctx, args[0])
	}},
	{name: "delgroup", args: []string{"id"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.DeleteGroup(ctx, args[0])
	}},
	{name: "groupimage", args: []string{"id", "path"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.GroupImage(ctx, args[0], args[1])
	}},

	{name: "apps", args: []string{"groupID"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.Apps(ctx, args[0])
	}},
	{name: "addapp", args: []string{"groupID"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.AddApp(ctx, args[0])
	}},
	{name: "editapp", args: []string{"groupID", "id"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.EditApp(ctx, args[0], args[1])
	}},
	{name: "delapp", args: []string{"id"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.DeleteApp(ctx, args[0])
	}},
	{name: "appimage", args: []string{"id", "path"}, auth: true, run: func(ctx context.Context, a execIface, args []string) error {
		return a.AppImage(ctx, args[0], args[1])
	}},
}

func (c command) usage() string {
	var b strings.Builder
	b.WriteString(c.name)
	for _, arg := range c.args {
		b.WriteString(" <" + arg + ">")
	}
	return b.String()
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(w io.Writer, loggedIn bool) {
	fmt.Fprintln(w, "Available commands:")
	for _, c := range commands {
		if c.auth && !loggedIn {
			continue
		}
		if c.name == "login" && loggedIn {
			continue
		}
		fmt.Fprintln(w, "  "+c.usage())
	}
	fmt.Fprintln(w, "  help")
	fmt.Fprintln(w, "  exit")
}

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on a. Errors returned by commands go through
// a.handleError. The loop exits on EOF, on "exit" or "quit", or when ctx
// is done.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, out io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(out, "vc %s> ", statusFn(ctx))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "help":
			printHelp(out, a.isLoggedIn(ctx))
			continue
		}

		c, ok := lookup(name)
		if !ok {
			fmt.Fprintln(out, "Unknown command:", name)
			continue
		}
		if c.auth && !a.isLoggedIn(ctx) {
			fmt.Fprintln(out, "Please log in first (type 'login')")
			continue
		}
		if len(args) != len(c.args) {
			fmt.Fprintln(out, "Usage:", c.usage())
			continue
		}

		a.handleError(ctx, c.run(ctx, a, args))
	}
}
