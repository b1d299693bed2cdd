package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/core/domain"
	"github.com/SscSPs/currency_rates_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:                     d.ID,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		FirstName:              d.FirstName,
		LastName:               d.LastName,
		IsActive:               d.IsActive,
		IsStaff:                d.IsStaff,
		IsSuperuser:            d.IsSuperuser,
		AuthProvider:           string(d.AuthProvider),
		GoogleSubject:          toNullString(d.GoogleSubject),
		CreatedAt:              d.CreatedAt,
		LastLoginAt:            toNullTime(d.LastLoginAt),
		RefreshTokenHash:       toNullString(d.RefreshTokenHash),
		RefreshTokenExpiryTime: toNullTime(d.RefreshTokenExpiryTime),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:                     m.ID,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		FirstName:              m.FirstName,
		LastName:               m.LastName,
		IsActive:               m.IsActive,
		IsStaff:                m.IsStaff,
		IsSuperuser:            m.IsSuperuser,
		AuthProvider:           domain.AuthProvider(m.AuthProvider),
		GoogleSubject:          fromNullString(m.GoogleSubject),
		CreatedAt:              m.CreatedAt,
		LastLoginAt:            fromNullTime(m.LastLoginAt),
		RefreshTokenHash:       fromNullString(m.RefreshTokenHash),
		RefreshTokenExpiryTime: fromNullTime(m.RefreshTokenExpiryTime),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
