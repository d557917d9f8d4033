/*
   Copyright 2025 The Railists Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package collecting implements the collecting side of the railists domain
// model: the owner's Collection with purchase records, the WishList with
// priorities and observed shop prices, and the derived read-only views
// computed from them (CollectionStats, Depot, WishListBudget).
//
// Collections and wish lists hold catalog items from the catalog package
// together with collecting metadata. The derived views are pure
// projections: they are recomputed on demand from a document and hold no
// back-references, so a stale view is simply discarded and rebuilt.
//
// Monetary amounts use github.com/shopspring/decimal throughout; float
// arithmetic never touches a price.
package collecting

import (
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// Price is a monetary amount with its currency. The only supported
// currency is the euro; prices in collections and wish lists are
// normalized to EUR before they reach this type.
//
// The zero Price means "no price recorded" and is distinct from a zero
// euro amount built with Euro(decimal.Zero).
type Price struct {
	amount   decimal.Decimal
	currency string
}

// EuroCurrency is the ISO 4217 code of the only supported currency.
const EuroCurrency = "EUR"

// Euro builds a Price of the given amount in euros.
func Euro(amount decimal.Decimal) Price {
	return Price{amount: amount, currency: EuroCurrency}
}

// ParsePrice converts a textual representation into a Price.
//
// The amount is the first whitespace-separated field; anything after it,
// such as a currency label, is ignored and the result is always a euro
// Price. A decimal comma is normalized to a decimal point, so "150,00 EUR",
// "150.00 EUR", "150.00 Euro" and a bare "150.00" all parse to the same
// value. Empty input yields a *BlankValueError; a malformed amount yields a
// *ParseError carrying the original input.
func ParsePrice(s string) (Price, error) {
	if s == "" {
		return Price{}, &errors.BlankValueError{Type: "Price"}
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Price{}, &errors.ParseError{Type: "Price", Value: s}
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(fields[0], ",", "."))
	if err != nil {
		return Price{}, &errors.ParseError{Type: "Price", Value: s}
	}

	return Price{amount: amount, currency: EuroCurrency}, nil
}

// Amount returns the monetary amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Currency returns the currency code; empty for the zero Price.
func (p Price) Currency() string {
	return p.currency
}

// Add returns the sum of two prices. Both MUST carry the same currency; a
// mismatch (including adding to the zero Price) yields a
// *ValidationError.
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, &errors.ValidationError{
			Type:   "Price",
			Field:  "Currency",
			Reason: "cannot add prices with different currencies",
			Value:  p.currency + " vs " + other.currency,
		}
	}
	return Price{amount: p.amount.Add(other.amount), currency: p.currency}, nil
}

// Cmp compares two prices by amount, returning -1, 0 or 1. Currencies are
// not consulted; callers compare only prices from the same document, which
// are all euros.
func (p Price) Cmp(other Price) int {
	return p.amount.Cmp(other.amount)
}

// SumPrices adds a slice of euro prices, treating zero Prices as zero
// euros. The result is always a euro Price, so summing an empty slice
// yields Euro(0).
func SumPrices(prices []Price) Price {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.amount)
	}
	return Euro(total)
}

// String renders the price as "<amount> <currency>" with two decimal
// places, for example "150.00 EUR". The zero Price renders as the empty
// string.
func (p Price) String() string {
	if p.currency == "" {
		return ""
	}
	return p.amount.StringFixed(2) + " " + p.currency
}

// Valid reports whether the price carries the supported currency.
func (p Price) Valid() bool {
	return p.currency == EuroCurrency
}

// TypeName returns "Price", the name of the type for logging and
// debugging.
func (p Price) TypeName() string {
	return "Price"
}

// Redacted returns the same string representation as String(). What the
// owner paid is personal data, but these documents never leave the owner's
// machine; masking happens at the presentation layer if ever needed.
func (p Price) Redacted() string {
	return p.String()
}

// IsZero reports whether no price was recorded.
func (p Price) IsZero() bool {
	return p.currency == ""
}

// Equal reports whether this Price is equal to another value: same
// currency and numerically equal amount.
func (p Price) Equal(other any) bool {
	switch v := other.(type) {
	case Price:
		return p.currency == v.currency && p.amount.Equal(v.amount)
	case *Price:
		if v == nil {
			return false
		}
		return p.currency == v.currency && p.amount.Equal(v.amount)
	default:
		return false
	}
}

// Validate checks that the price carries the supported currency.
func (p Price) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "Price",
			Field:  "Currency",
			Reason: "currency must be EUR",
			Value:  p.currency,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Price, serializing the textual
// form understood by ParsePrice.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Price"}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Price.
func (p *Price) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return &errors.UnmarshalError{Type: "Price", Data: data, Reason: "expected a string"}
	}
	parsed, err := ParsePrice(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Price.
func (p Price) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Price"}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Price.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Price", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePrice(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Price.
func (p Price) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Price"}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Price.
func (p *Price) UnmarshalText(text []byte) error {
	parsed, err := ParsePrice(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that Price implements model.Model interface.
var _ model.Model = (*Price)(nil)
