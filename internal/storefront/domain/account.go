package domain

import "time"

// UserType distinguishes the two account namespaces. It is stamped into
// bearer tokens and checked by the access guard.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

// Account is a credentialed identity. Admins and users share the shape but
// live in separate namespaces: the same email may exist once per namespace.
type Account struct {
	ID           string
	FirstName    string // optional display name
	LastName     string // optional display name
	Email        string // login key, unique among non-deleted rows
	PasswordHash string // argon2id PHC string, never exposed outward
	Banned       bool   // set by admin moderation; only consulted for users
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete marker, non-nil means logically absent
}
