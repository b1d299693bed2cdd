package models

import "time"

// UserCurrency is the persistence shape of a user_currencies row.
type UserCurrency struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Charcode  string    `db:"charcode"`
	Threshold int64     `db:"threshold"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
