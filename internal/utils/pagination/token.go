package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tokens travel in query strings, so the URL-safe alphabet is used.
var encoding = base64.URLEncoding

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return encoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := encoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeRateCursor creates a keyset token for rates ordered by (value, id).
// The token points to the last row included in a page.
func EncodeRateCursor(value decimal.Decimal, id int64) string {
	return EncodeMultiFieldToken(value.String(), strconv.FormatInt(id, 10))
}

// DecodeRateCursor parses a token produced by EncodeRateCursor.
func DecodeRateCursor(token string) (decimal.Decimal, int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return decimal.Zero, 0, err
	}
	if len(parts) != 2 {
		return decimal.Zero, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	value, err := decimal.NewFromString(parts[0])
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("invalid pagination token format (value parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return value, id, nil
}
