package models

import "time"

// Currency is the persistence shape of a currencies row.
type Currency struct {
	ID        int64     `db:"id"`
	Charcode  string    `db:"charcode"`
	CreatedAt time.Time `db:"created_at"`
}
