// Package domain contains application services orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Pranshu-project/zyro/internal/auth"
	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/pkg/metrics"
)

const minPasswordLength = 8

// InviteUser creates an invited account and issues a single-use token.
// Re-inviting a still-invited email is idempotent and issues a fresh token.
func (u *Usecase) InviteUser(ctx context.Context, actor entities.Role, name, email string, role entities.Role) (*entities.Invitation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !actor.AtLeast(entities.RoleAdmin) {
		return nil, fmt.Errorf("%w: only admins can invite users", entities.ErrForbidden)
	}
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", entities.ErrInvalidArgument)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	raw, hash, err := auth.NewInviteToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(u.authCfg.InviteTTL)
	user, reinvite, err := u.repo.InviteUser(ctx, name, email, role, hash, expiresAt)
	if err != nil {
		return nil, err
	}

	inv := entities.Invitation{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		RawToken: raw,
		Reinvite: reinvite,
	}

	// Email delivery is best effort: a broker outage must not lose the
	// invitation, the raw token is still returned to the caller.
	if err := u.mailer.SendInvite(inv); err != nil {
		metrics.InviteEmailsPublished.WithLabelValues("error").Inc()
		u.log.Errorw("failed to publish invite email", "error", err, "user_id", user.ID)
	} else {
		metrics.InviteEmailsPublished.WithLabelValues("ok").Inc()
	}

	return &inv, nil
}

// VerifyToken checks a presented invite token and returns its user id.
func (u *Usecase) VerifyToken(ctx context.Context, rawToken string) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if rawToken == "" {
		return 0, fmt.Errorf("%w: token is required", entities.ErrInvalidArgument)
	}

	token, err := u.repo.GetInviteToken(ctx, auth.HashToken(rawToken))
	if err != nil {
		return 0, err
	}
	if token.Expired(time.Now()) {
		return 0, entities.ErrTokenExpired
	}
	return token.UserID, nil
}

// UpdatePassword consumes an invite token: it validates the token, sets the
// bcrypt password hash and flips the account to active. The token is deleted
// on success, so a second use fails.
func (u *Usecase) UpdatePassword(ctx context.Context, rawToken, newPassword string) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if rawToken == "" {
		return 0, fmt.Errorf("%w: token is required", entities.ErrInvalidArgument)
	}
	password := strings.TrimSpace(newPassword)
	if len(password) < minPasswordLength {
		return 0, fmt.Errorf("%w: password must be at least %d characters", entities.ErrWeakPassword, minPasswordLength)
	}

	token, err := u.repo.GetInviteToken(ctx, auth.HashToken(rawToken))
	if err != nil {
		return 0, err
	}
	if token.Expired(time.Now()) {
		return 0, entities.ErrTokenExpired
	}

	hash, err := auth.HashPassword(password, u.authCfg.BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	if err := u.repo.ActivateUser(ctx, token.ID, token.UserID, hash); err != nil {
		return 0, err
	}

	u.log.Infow("password set", "user_id", token.UserID)
	return token.UserID, nil
}

// Login verifies credentials and issues an access token. Invited accounts
// have no password yet and cannot log in.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	user, hash, err := u.repo.UserCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, entities.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Status != entities.UserActive || hash == "" {
		return "", nil, entities.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, hash) {
		return "", nil, entities.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Role, u.authCfg.JWTSecret, u.authCfg.AccessTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue access token: %w", err)
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return token, user, nil
}

// User returns one account by id.
func (u *Usecase) User(ctx context.Context, userID int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, userID)
}

// Users returns all accounts.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// DeleteUser removes an account.
func (u *Usecase) DeleteUser(ctx context.Context, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, userID)
}
