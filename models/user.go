package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest and must never leave the server; use
// [User.Public] when a user is returned to a caller.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users. Accounts created before emails became
	// mandatory are backfilled at startup.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the public-safe projection of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the representation of a [User] that is safe to expose over
// the API. It never carries the password hash.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest carries the credentials of a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64,excludes=@"`
	Email    string `json:"email" validate:"required,contains=@,max=254"`
	Password string `json:"password" validate:"min=6,bcryptlen"`
}

// LoginRequest carries login credentials. The identifier may be given either
// as Username or Email; the client used to pick the field by looking for "@",
// so both are accepted and normalised by [LoginRequest.Identifier].
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Identifier returns the login identifier and whether it is an email address.
func (r LoginRequest) Identifier() (string, bool) {
	identifier := strings.TrimSpace(r.Email)
	if identifier == "" {
		identifier = strings.TrimSpace(r.Username)
	}

	return identifier, strings.Contains(identifier, "@")
}
