// Package cli provides the interactive version-check console.
//
// App prompts for credentials when no session is stored and then runs a
// REPL over the app catalog:
//
//   - login / logout / status
//   - groups, addgroup, editgroup <id>, delgroup <id>, groupimage <id> <path>
//   - apps <groupID>, addapp <groupID>, editapp <groupID> <id>, delapp <id>,
//     appimage <id> <path>
//
// Every catalog call goes through the session manager, which keeps the access
// token fresh. When the session cannot be refreshed the stored credentials
// are cleared, a rejected refresh is reported, and the user is asked to log
// in again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
