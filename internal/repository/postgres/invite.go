package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	inviteTokenByHashQuery = `
SELECT id, user_id, token_hash, expires_at, created_at
FROM invite_tokens
WHERE token_hash = $1`

	activateUserQuery = `
UPDATE users
SET password = $2, status = 'active', updated_at = now()
WHERE id = $1`

	deleteInviteTokenQuery = `DELETE FROM invite_tokens WHERE id = $1`
)

// GetInviteToken looks up a token by its hash.
func (p *Postgres) GetInviteToken(ctx context.Context, tokenHash string) (*entities.InviteToken, error) {
	var t entities.InviteToken
	err := p.db.QueryRow(ctx, inviteTokenByHashQuery, tokenHash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrInvalidToken
		}
		return nil, fmt.Errorf("get invite token: %w", err)
	}
	return &t, nil
}

// ActivateUser sets the password hash, flips the account to active and burns
// the invite token, all in one transaction. A token already consumed by a
// concurrent request surfaces as ErrInvalidToken.
func (p *Postgres) ActivateUser(ctx context.Context, tokenID, userID int64, passwordHash string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin activate tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, activateUserQuery, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("activate user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	tokenTag, err := tx.Exec(ctx, deleteInviteTokenQuery, tokenID)
	if err != nil {
		return fmt.Errorf("delete invite token: %w", err)
	}
	if tokenTag.RowsAffected() == 0 {
		return entities.ErrInvalidToken
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit activate tx: %w", err)
	}

	p.log.Infow("user activated", "user_id", userID)
	return nil
}
