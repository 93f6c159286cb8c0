// Package pricing computes package totals from product price strings.
// Prices are stored as display strings ("25,000원"); this package is the
// single place that normalizes them to integer won.
package pricing

import (
	"strconv"
	"strings"

	"nuvita/internal/domain"
)

// Item is one product line as the calculator sees it.
type Item struct {
	Price      string
	PointValue int
	Quantity   int
}

// Totals is the aggregate over a product list.
type Totals struct {
	TotalPrice        int `json:"total_price"`
	TotalPoints       int `json:"total_points"`
	SubscriptionPrice int `json:"subscription_price"`
}

// ParsePrice extracts the integer won amount from a display string by
// stripping everything that is not a digit. Empty or digit-free input
// parses to 0; never errors.
func ParsePrice(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice renders an integer won amount as a comma-grouped display
// string with the 원 suffix, e.g. 118000 -> "118,000원".
func FormatPrice(n int) string {
	if n < 0 {
		n = 0
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString("원")
	return b.String()
}

// Calculate sums price and point contributions across items and derives the
// discounted subscription price. Pure: identical input yields identical
// output, empty input yields all zeros.
func Calculate(items []Item) Totals {
	var t Totals
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		t.TotalPrice += ParsePrice(it.Price) * qty
		t.TotalPoints += it.PointValue * qty
	}
	t.SubscriptionPrice = t.TotalPrice * (100 - domain.SubscriptionDiscountPercent) / 100
	return t
}
