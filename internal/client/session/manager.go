package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/versioncheck/internal/client/credstore"
	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/common"
	"github.com/dmitrijs2005/versioncheck/internal/logging"
	"golang.org/x/sync/singleflight"
)

// Default credential lifetimes, matching the cookies of the web console.
const (
	DefaultAccessMaxAge  = time.Hour
	DefaultRefreshMaxAge = 24 * time.Hour
)

// Refresher exchanges a refresh token for a new token pair.
//
// Implementations report a non-2xx answer as common.ErrRefreshRejected and a
// transport failure as common.ErrNetworkFailure.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
}

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options tunes a Manager. Zero values fall back to defaults.
type Options struct {
	AccessMaxAge    time.Duration
	RefreshMaxAge   time.Duration
	UserEmailMaxAge time.Duration
	Now             func() time.Time
	Logger          logging.Logger
}

// Manager keeps the session's access token valid. It is safe for concurrent use.
type Manager struct {
	store  credstore.Store
	tokens Refresher
	client Doer

	accessMaxAge    time.Duration
	refreshMaxAge   time.Duration
	userEmailMaxAge time.Duration
	now             func() time.Time
	log             logging.Logger

	flight     singleflight.Group
	refreshing atomic.Int32
}

const refreshFlightKey = "refresh"

// NewManager wires a Manager to its store, token endpoint and HTTP client.
func NewManager(store credstore.Store, tokens Refresher, client Doer, opts Options) *Manager {
	m := &Manager{
		store:           store,
		tokens:          tokens,
		client:          client,
		accessMaxAge:    opts.AccessMaxAge,
		refreshMaxAge:   opts.RefreshMaxAge,
		userEmailMaxAge: opts.UserEmailMaxAge,
		now:             opts.Now,
		log:             opts.Logger,
	}
	if m.accessMaxAge <= 0 {
		m.accessMaxAge = DefaultAccessMaxAge
	}
	if m.refreshMaxAge <= 0 {
		m.refreshMaxAge = DefaultRefreshMaxAge
	}
	if m.userEmailMaxAge <= 0 {
		m.userEmailMaxAge = m.refreshMaxAge
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = logging.Nop()
	}
	m.log = m.log.With("component", "session")
	return m
}

// ValidAccessToken returns a stored access token whose expiry is strictly in
// the future without touching the network. Otherwise it refreshes once and
// returns the new token.
func (m *Manager) ValidAccessToken(ctx context.Context) (string, error) {
	token, err := m.store.Get(ctx, common.KeyAuthToken)
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	if token != "" && m.unexpired(token) {
		return token, nil
	}
	return m.Refresh(ctx)
}

// unexpired reports whether token may still be sent. Tokens without a
// decodable exp are trusted for as long as the store keeps them.
func (m *Manager) unexpired(token string) bool {
	exp, ok := tokenExpiry(token)
	if !ok {
		return true
	}
	return exp.After(m.now())
}

// Refresh exchanges the stored refresh token for a new access token and
// persists the result. Concurrent calls share one in-flight exchange.
//
// It fails with common.ErrSessionExpired, before any network call, when no
// refresh token is stored, and with common.ErrRefreshRejected when the
// server declines it; in both cases the store is left as it was.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	ch := m.flight.DoChan(refreshFlightKey, func() (any, error) {
		m.refreshing.Add(1)
		defer m.refreshing.Add(-1)
		// shared by every waiter: it outlives the caller that started it
		return m.refresh(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (m *Manager) refresh(ctx context.Context) (string, error) {
	refreshToken, err := m.store.Get(ctx, common.KeyRefreshToken)
	if err != nil {
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	if refreshToken == "" {
		m.log.Info(ctx, "no refresh token stored")
		return "", common.ErrSessionExpired
	}

	pair, err := m.tokens.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrRefreshRejected) {
			m.log.Warn(ctx, "refresh token rejected", "error", err)
		} else {
			m.log.Error(ctx, "refresh failed", "error", err)
		}
		return "", err
	}
	if pair.AccessToken == "" {
		return "", fmt.Errorf("%w: refresh response carries no access token", common.ErrRefreshRejected)
	}

	entries := []credstore.Entry{{
		Key:    common.KeyAuthToken,
		Value:  pair.AccessToken,
		MaxAge: m.accessTokenMaxAge(pair.AccessToken),
	}}
	if pair.RefreshToken != "" {
		entries = append(entries, credstore.Entry{
			Key:    common.KeyRefreshToken,
			Value:  pair.RefreshToken,
			MaxAge: m.refreshMaxAge,
		})
	}
	if err := m.store.Set(ctx, entries...); err != nil {
		return "", fmt.Errorf("persist refreshed tokens: %w", err)
	}

	m.log.Info(ctx, "access token refreshed", "rotated", pair.RefreshToken != "", "max_age", entries[0].MaxAge)
	return pair.AccessToken, nil
}

// accessTokenMaxAge bounds the stored lifetime of token by its own expiry.
func (m *Manager) accessTokenMaxAge(token string) time.Duration {
	maxAge := m.accessMaxAge
	if exp, ok := tokenExpiry(token); ok {
		if until := exp.Sub(m.now()); until < maxAge {
			maxAge = until
		}
	}
	return maxAge
}

// RetryOnUnauthorized is called once after req came back 401. It refreshes
// once and resends req once with the new token. The second response is
// returned unmodified unless it is 401 again, which ends the session with
// common.ErrSessionExpired; there is no third attempt.
func (m *Manager) RetryOnUnauthorized(ctx context.Context, req *Request) (*http.Response, error) {
	token, err := m.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := m.dispatch(ctx, req, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		discard(resp)
		m.log.Warn(ctx, "request unauthorized after refresh", "method", req.Method, "url", req.URL)
		return nil, fmt.Errorf("%w: %s %s still unauthorized after refresh", common.ErrSessionExpired, req.Method, req.URL)
	}
	return resp, nil
}

// Do sends req with a valid access token and, if the server still answers
// 401, performs the single refresh-and-retry. Non-auth responses, including
// errors such as 400 or 500, are returned as they are; the caller owns the
// response body.
func (m *Manager) Do(ctx context.Context, req *Request) (*http.Response, error) {
	token, err := m.ValidAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := m.dispatch(ctx, req, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	discard(resp)
	m.log.Debug(ctx, "access token rejected by server", "method", req.Method, "url", req.URL)
	return m.RetryOnUnauthorized(ctx, req)
}

func (m *Manager) dispatch(ctx context.Context, req *Request, token string) (*http.Response, error) {
	httpReq, err := req.build(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.URL, err)
	}
	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", common.ErrNetworkFailure, req.Method, req.URL, err)
	}
	return resp, nil
}

// StartSession stores the tokens issued by a login together with the user's
// email, replacing whatever session was there.
func (m *Manager) StartSession(ctx context.Context, pair models.TokenPair, userEmail string) error {
	if pair.AccessToken == "" {
		return fmt.Errorf("%w: login response carries no access token", common.ErrInvalidCredentials)
	}
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}

	entries := []credstore.Entry{
		{Key: common.KeyAuthToken, Value: pair.AccessToken, MaxAge: m.accessTokenMaxAge(pair.AccessToken)},
		{Key: common.KeyUserEmail, Value: userEmail, MaxAge: m.userEmailMaxAge},
	}
	if pair.RefreshToken != "" {
		entries = append(entries, credstore.Entry{Key: common.KeyRefreshToken, Value: pair.RefreshToken, MaxAge: m.refreshMaxAge})
	}
	if err := m.store.Set(ctx, entries...); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.log.Info(ctx, "session started", "user", userEmail)
	return nil
}

// EndSession forgets every stored credential.
func (m *Manager) EndSession(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Info(ctx, "session ended")
	return nil
}

// CurrentUser returns the email of the signed-in user, or "".
func (m *Manager) CurrentUser(ctx context.Context) (string, error) {
	return m.store.Get(ctx, common.KeyUserEmail)
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
