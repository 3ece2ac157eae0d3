// Package entities contains core business entities.
package entities

import "time"

// Role enumerates account roles.
type Role string

const (
	// RoleAdmin can manage accounts and everything below.
	RoleAdmin Role = "admin"
	// RoleManager can manage projects, sprints and issues.
	RoleManager Role = "manager"
	// RoleEmployee can work on assigned issues.
	RoleEmployee Role = "employee"
)

var roleRank = map[Role]int{
	RoleEmployee: 1,
	RoleManager:  2,
	RoleAdmin:    3,
}

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role grants at least the required role.
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// UserStatus enumerates account lifecycle states.
type UserStatus string

const (
	// UserActive marks a user with a password set.
	UserActive UserStatus = "active"
	// UserInvited marks a user awaiting password setup.
	UserInvited UserStatus = "invited"
)

// User is a domain representation of an account.
type User struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	StoryPoint int        `json:"story_point"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
