package domain

import "time"

// Currency represents a currency code known to the registry.
// Rows are created by ingestion the first time the registry is populated and are never updated.
type Currency struct {
	ID        int64     `json:"id"`
	Charcode  string    `json:"charcode"` // Natural key (e.g., "USD"), at most 5 characters
	CreatedAt time.Time `json:"createdAt"`
}
