package store

import (
	"context"
	"fmt"
	"time"
)

// RevokeSession records a logged-out session ID until the session would
// have expired anyway.
func (s *Store) RevokeSession(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_sessions (session_id, expires_at) VALUES (?, ?)`,
		id, expiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}

	// Opportunistically clean up expired revocations.
	_, _ = s.db.ExecContext(ctx,
		`DELETE FROM revoked_sessions WHERE expires_at < ?`, time.Now().Unix(),
	)

	return nil
}

// IsSessionRevoked checks if a session ID has been revoked.
func (s *Store) IsSessionRevoked(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_sessions WHERE session_id = ?`, id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking session revocation: %w", err)
	}
	return count > 0, nil
}
