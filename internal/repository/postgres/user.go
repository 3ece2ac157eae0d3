package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	userByEmailQuery = `
SELECT id, name, email, role, status
FROM users
WHERE lower(email) = lower($1)`

	insertInvitedUserQuery = `
INSERT INTO users (name, email, role, status)
VALUES ($1, $2, $3, 'invited')
RETURNING id, name, email, role, status`

	insertInviteTokenQuery = `
INSERT INTO invite_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)`

	userCredentialsQuery = `
SELECT id, name, email, password, role, status, COALESCE(story_point, 0)
FROM users
WHERE lower(email) = lower($1)`

	userByIDQuery = `
SELECT id, name, email, role, status, COALESCE(story_point, 0), created_at, updated_at
FROM users
WHERE id = $1`

	listUsersQuery = `
SELECT id, name, email, role, status, COALESCE(story_point, 0), created_at, updated_at
FROM users
ORDER BY id`

	deleteUserTokensQuery = `DELETE FROM invite_tokens WHERE user_id = $1`
	deleteUserQuery       = `DELETE FROM users WHERE id = $1`
)

// InviteUser creates an invited account (or reuses a still-invited one) and
// records a fresh invite token hash in the same transaction. The bool result
// reports whether this was an idempotent re-invite.
func (p *Postgres) InviteUser(ctx context.Context, name, email string, role entities.Role, tokenHash string, expiresAt time.Time) (*entities.User, bool, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("begin invite tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var u entities.User
	reinvite := false
	err = tx.QueryRow(ctx, userByEmailQuery, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status)
	switch {
	case err == nil:
		if u.Status != entities.UserInvited {
			return nil, false, entities.ErrEmailExists
		}
		reinvite = true
	case errors.Is(err, pgx.ErrNoRows):
		if err := tx.QueryRow(ctx, insertInvitedUserQuery, name, email, role).
			Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status); err != nil {
			return nil, false, fmt.Errorf("insert invited user: %w", err)
		}
	default:
		return nil, false, fmt.Errorf("lookup user by email: %w", err)
	}

	if _, err := tx.Exec(ctx, insertInviteTokenQuery, u.ID, tokenHash, expiresAt); err != nil {
		return nil, false, fmt.Errorf("insert invite token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit invite tx: %w", err)
	}

	p.log.Infow("user invited", "user_id", u.ID, "reinvite", reinvite)
	return &u, reinvite, nil
}

// UserCredentials returns the user and stored password hash for a login email.
func (p *Postgres) UserCredentials(ctx context.Context, email string) (*entities.User, string, error) {
	var (
		u    entities.User
		hash *string
	)
	err := p.db.QueryRow(ctx, userCredentialsQuery, email).
		Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role, &u.Status, &u.StoryPoint)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", entities.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("user credentials: %w", err)
	}
	if hash == nil {
		return &u, "", nil
	}
	return &u, *hash, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, userByIDQuery, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.StoryPoint, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns all accounts.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.StoryPoint, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// DeleteUser removes an account and any outstanding invite tokens.
func (p *Postgres) DeleteUser(ctx context.Context, userID int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteUserTokensQuery, userID); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteUserQuery, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete tx: %w", err)
	}

	p.log.Infow("user deleted", "user_id", userID)
	return nil
}
