// Package cart holds the shopper's cart: an ordered collection of line
// items with add/remove/empty operations and a recomputed total.
//
// Invariants:
//   - Prices are stored in cents and are always finite and non-negative.
//     Malformed input normalizes to zero instead of failing the whole cart.
//   - The total is recomputed from the items on every call, never
//     incrementally maintained.
package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a unit price in cents.
//
// Product feeds deliver prices as JSON numbers or as strings ("9.99"), and
// occasionally as junk. Decoding never fails: anything that does not parse
// to a finite non-negative number becomes zero.
type Price int64

// ParsePrice normalizes a textual price to cents, parse-or-zero.
func ParsePrice(s string) Price {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return fromFloat(v)
}

func fromFloat(v float64) Price {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	cents := math.Round(v * 100)
	// Converting a float at or beyond the int64 range is
	// platform-defined and can wrap negative. A price that large is junk.
	if cents >= math.MaxInt64 {
		return 0
	}
	return Price(cents)
}

// UnmarshalJSON accepts a number, a numeric string, or null. It never
// returns an error; unparseable input yields a zero price.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*p = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*p = 0
			return nil
		}
		*p = ParsePrice(str)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = fromFloat(v)
	return nil
}

// MarshalJSON renders the price as a decimal amount in major units, the
// shape the checkout backend expects for display purposes.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p)/100, 'f', 2, 64)), nil
}

// String formats the price as dollars, e.g. "$24.97".
func (p Price) String() string {
	return fmt.Sprintf("$%d.%02d", int64(p)/100, int64(p)%100)
}

// LineItem is one cart entry. The image reference is display metadata only.
type LineItem struct {
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

// Subtotal returns price times quantity for the line, saturating at
// math.MaxInt64 cents. Negative quantities count as zero.
func (li LineItem) Subtotal() Price {
	if li.Quantity <= 0 || li.Price <= 0 {
		return 0
	}
	if int64(li.Price) > math.MaxInt64/int64(li.Quantity) {
		return math.MaxInt64
	}
	return li.Price * Price(li.Quantity)
}

// Total recomputes the sum of line subtotals over items, saturating at
// math.MaxInt64 cents.
func Total(items []LineItem) Price {
	var sum Price
	for _, li := range items {
		sub := li.Subtotal()
		if sum > math.MaxInt64-sub {
			return math.MaxInt64
		}
		sum += sub
	}
	return sum
}
