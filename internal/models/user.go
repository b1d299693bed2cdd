package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of an app_users row.
type User struct {
	ID            int64          `db:"id"`
	Email         string         `db:"email"`
	PasswordHash  string         `db:"password_hash"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	IsActive      bool           `db:"is_active"`
	IsStaff       bool           `db:"is_staff"`
	IsSuperuser   bool           `db:"is_superuser"`
	AuthProvider  string         `db:"auth_provider"`
	GoogleSubject sql.NullString `db:"google_subject"`
	CreatedAt     time.Time      `db:"created_at"`
	LastLoginAt   sql.NullTime   `db:"last_login_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expires_at"`
}
