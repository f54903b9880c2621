// Package credstore keeps the console's credentials: the access token, the
// refresh token and the signed-in user's email. Every value carries a
// max-age, like the browser cookies it replaces; an expired value reads as
// absent.
package credstore

import (
	"context"
	"time"
)

// Entry is one value to write.
// A MaxAge of zero or less removes the key instead of writing it.
type Entry struct {
	Key    string
	Value  string
	MaxAge time.Duration
}

// Store is the credential store contract.
//
// Get returns ("", nil) when the key is absent or expired. Set writes all
// entries or none of them. Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
