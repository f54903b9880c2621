// Package session keeps an authenticated session usable.
//
// The Manager owns the access/refresh token pair kept in a credstore.Store
// and holds no credential state of its own: every call re-reads the store.
//
// Callers either use Do, which handles everything, or compose the steps
// themselves:
//
//	token, err := m.ValidAccessToken(ctx) // refreshes only if expired or absent
//	resp, err := send(req, token)
//	if resp.StatusCode == http.StatusUnauthorized {
//	    resp, err = m.RetryOnUnauthorized(ctx, req) // one refresh, one resend
//	}
//
// # Guarantees
//
//   - An unexpired access token is returned without any network call.
//   - A request is retried at most once; a second 401 yields
//     common.ErrSessionExpired.
//   - Concurrent refreshes are coalesced: callers arriving while a refresh is
//     in flight wait for it and share its result, so a rotating refresh
//     token is presented exactly once.
//   - A rejected refresh (common.ErrRefreshRejected) leaves the store
//     untouched.
//
// # Errors
//
// common.ErrSessionExpired and common.ErrRefreshRejected end the session;
// the caller is expected to clear the store and ask for a new login.
// common.ErrNetworkFailure marks transport failures and never ends the
// session. Non-auth responses are returned unchanged.
package session
