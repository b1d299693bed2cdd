package ratefeed

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
)

// MaxCharcodeLength matches the width of the charcode columns.
const MaxCharcodeLength = 5

// Snapshot is one published day of rates.
type Snapshot struct {
	// Date is the calendar date the feed reports, at UTC midnight. Zero when the payload has none.
	Date time.Time
	// HasCurrencies is false when the payload lacks the currency-map key entirely.
	HasCurrencies bool
	// Rates maps charcode to value exactly as published.
	Rates map[string]decimal.Decimal
	// Skipped lists charcodes whose entry had no usable numeric Value.
	Skipped []string
}

// Charcodes returns the snapshot's codes in sorted order.
func (s *Snapshot) Charcodes() []string {
	codes := make([]string, 0, len(s.Rates))
	for code := range s.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParseSnapshot walks a feed payload without mirroring it in structs.
// Values are taken from the raw number literal so no precision is lost.
func ParseSnapshot(body []byte, currencyKey string) (*Snapshot, error) {
	if _, dataType, _, err := jsonparser.Get(body); err != nil || dataType != jsonparser.Object {
		return nil, fmt.Errorf("payload is not a JSON object")
	}

	snap := &Snapshot{Rates: map[string]decimal.Decimal{}}

	if rawDate, err := jsonparser.GetString(body, "Date"); err == nil {
		if published, perr := time.Parse(time.RFC3339, rawDate); perr == nil {
			// Keep the calendar date in the feed's own offset.
			y, m, d := published.Date()
			snap.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
	}

	currencies, dataType, _, err := jsonparser.Get(body, currencyKey)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", currencyKey, err)
	}
	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%q is not an object", currencyKey)
	}
	snap.HasCurrencies = true

	err = jsonparser.ObjectEach(currencies, func(key []byte, entry []byte, entryType jsonparser.ValueType, _ int) error {
		code := string(key)
		if entryType != jsonparser.Object || code == "" || len(code) > MaxCharcodeLength {
			snap.Skipped = append(snap.Skipped, code)
			return nil
		}

		raw, valueType, _, err := jsonparser.Get(entry, "Value")
		if err != nil || valueType != jsonparser.Number {
			snap.Skipped = append(snap.Skipped, code)
			return nil
		}

		value, err := decimal.NewFromString(string(raw))
		if err != nil {
			snap.Skipped = append(snap.Skipped, code)
			return nil
		}
		snap.Rates[code] = value
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", currencyKey, err)
	}

	sort.Strings(snap.Skipped)
	return snap, nil
}
