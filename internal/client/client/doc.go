// Package client talks to the version-check backend over JSON/HTTP.
//
// # Overview
//
//  1. TokenClient calls the OAuth-style token endpoints: the password grant
//     used at login and the refresh-token exchange used by the session
//     manager (it implements session.Refresher).
//  2. APIClient wraps the app and app-group resource endpoints. Every call
//     goes through session.Manager.Do, so it carries a valid bearer token
//     and gets the single refresh-and-retry on 401.
//
// # Error Handling
//
// Errors match the sentinels of package common with errors.Is:
// ErrInvalidCredentials (login rejected), ErrRefreshRejected (refresh
// rejected), ErrNetworkFailure (transport failure), ErrRequestFailed (any
// other non-2xx, carried by *common.RequestError), plus ErrSessionExpired
// surfaced from the session manager.
//
// Concurrency & Contexts
//
// Both clients are safe for concurrent use. All operations accept a
// context.Context and honor cancellation.
package client
