package models

import "time"

// Account status values stored in the users.status column.
// Only active accounts may authenticate or be resolved from a token.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique user login identifier. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and never leaves the persistence/service layers.
	PasswordHash string `json:"-"`

	// Status is the account status, either [StatusActive] or [StatusInactive].
	Status string `json:"status"`

	// LastLogin is the timestamp of the last successful login, nil if the
	// user has never logged in.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// IsActive reports whether the account may authenticate.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// Public returns a copy of the user safe to serialize in API responses:
// the password hash is stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
