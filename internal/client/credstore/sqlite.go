package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/versioncheck/internal/dbx"
)

// SQLiteStore persists credentials in the credentials table created by the
// embedded migrations. Expiry instants are stored as Unix milliseconds.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore wraps an opened, migrated database. A nil now uses time.Now.
func NewSQLiteStore(db *sql.DB, now func() time.Time) *SQLiteStore {
	if now == nil {
		now = time.Now
	}
	return &SQLiteStore{db: db, now: now}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ? AND expires_at > ?`,
		key, s.now().UnixMilli(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	now := s.now()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range entries {
			if e.MaxAge <= 0 {
				if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, e.Key); err != nil {
					return fmt.Errorf("failed to delete credential[%s]: %w", e.Key, err)
				}
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO credentials (key, value, expires_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
			`, e.Key, e.Value, now.Add(e.MaxAge).UnixMilli())
			if err != nil {
				return fmt.Errorf("failed to set credential[%s]: %w", e.Key, err)
			}
		}

		// drop whatever has already expired
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE expires_at <= ?`, now.UnixMilli())
		return err
	})
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
