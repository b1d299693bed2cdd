package domain

import "time"

// UserCurrency is a watchlist entry: a currency a user tracks together with an alert threshold.
// There is at most one entry per (UserID, Charcode); Threshold is the mutable part.
type UserCurrency struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userID"`
	Charcode  string    `json:"charcode"`
	Threshold int64     `json:"threshold"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ThresholdsByCharcode indexes watchlist entries by charcode.
func ThresholdsByCharcode(entries []UserCurrency) map[string]int64 {
	m := make(map[string]int64, len(entries))
	for _, e := range entries {
		m[e.Charcode] = e.Threshold
	}
	return m
}
