package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateSession stores an issued bearer token.
func (db *DB) CreateSession(ctx context.Context, s models.Session) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES ($1,$2,$3,$4)`,
		s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// GetSession looks up a token. Expired sessions are reported as ErrNotFound.
func (db *DB) GetSession(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	var s models.Session
	err := db.Pool.QueryRow(ctx,
		`SELECT token, user_id, created_at, expires_at FROM sessions
		 WHERE token = $1 AND expires_at > $2`,
		token, now).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return &s, nil
}

// DeleteSession removes a token on logout.
func (db *DB) DeleteSession(ctx context.Context, token string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions removes sessions past their expiry. Returns the count
// removed; called periodically from the server main loop.
func (db *DB) PurgeExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purging sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
