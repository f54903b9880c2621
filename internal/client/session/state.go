package session

import (
	"context"

	"github.com/dmitrijs2005/versioncheck/internal/common"
)

// State is where a session stands.
//
//	Unauthenticated -> Authenticated -> Expiring -> Refreshing -> Authenticated
//
// Any state falls back to Unauthenticated once the session ends.
type State int

const (
	Unauthenticated State = iota
	// Authenticated: an unexpired access token is stored.
	Authenticated
	// Expiring: the access token is gone or expired but a refresh token is
	// stored, so the next call will refresh.
	Expiring
	// Refreshing: a refresh is in flight.
	Refreshing
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expiring:
		return "expiring"
	case Refreshing:
		return "refreshing"
	default:
		return "unauthenticated"
	}
}

// State inspects the store without any network call.
func (m *Manager) State(ctx context.Context) (State, error) {
	if m.refreshing.Load() > 0 {
		return Refreshing, nil
	}

	access, err := m.store.Get(ctx, common.KeyAuthToken)
	if err != nil {
		return Unauthenticated, err
	}
	if access != "" && m.unexpired(access) {
		return Authenticated, nil
	}

	refresh, err := m.store.Get(ctx, common.KeyRefreshToken)
	if err != nil {
		return Unauthenticated, err
	}
	if refresh != "" {
		return Expiring, nil
	}
	return Unauthenticated, nil
}
