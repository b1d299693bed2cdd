package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the persistence shape of a rates row. Value maps to NUMERIC(20,10).
type Rate struct {
	ID       int64           `db:"id"`
	Date     time.Time       `db:"date"`
	Charcode string          `db:"charcode"`
	Value    decimal.Decimal `db:"value"`
}
