// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmailExists signals an active account already using the email.
	ErrEmailExists = errors.New("email exists")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSprintNotFound signals missing sprint.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrIssueNotFound signals missing issue.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrMemberExists signals a duplicate project membership.
	ErrMemberExists = errors.New("member exists")
	// ErrInvalidToken signals an unknown invite token hash.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired signals an invite token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrWeakPassword signals a password below the minimum length.
	ErrWeakPassword = errors.New("weak password")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden signals insufficient role for the operation.
	ErrForbidden = errors.New("forbidden")
)
