package domain

import "strings"

// SortOrder is the requested ordering of rate rows by value.
type SortOrder string

const (
	SortByValueAsc  SortOrder = "value"
	SortByValueDesc SortOrder = "-value"
)

// ParseSortOrder maps the order_by query value to a SortOrder.
// Anything other than "-value" falls back to ascending.
func ParseSortOrder(raw string) SortOrder {
	if strings.TrimSpace(raw) == string(SortByValueDesc) {
		return SortByValueDesc
	}
	return SortByValueAsc
}

// Descending reports whether rows are ordered by value from largest to smallest.
func (o SortOrder) Descending() bool {
	return o == SortByValueDesc
}
