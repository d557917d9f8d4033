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

package collecting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	railerr "railists.dev/railists/railcore/errors"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"decimal point", "150.00 EUR", "150.00 EUR"},
		{"decimal comma normalized", "150,00 EUR", "150.00 EUR"},
		{"no fraction", "89 EUR", "89.00 EUR"},
		{"single fraction digit", "12.5 EUR", "12.50 EUR"},
		{"bare amount", "150.00", "150.00 EUR"},
		{"spelled-out currency ignored", "150,00 Euro", "150.00 EUR"},
		{"trailing text ignored", "150.00 EUR approx", "150.00 EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if err != nil {
				t.Fatalf("ParsePrice(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParsePrice(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
			}
			if got.Currency() != EuroCurrency {
				t.Errorf("Currency() = %q, want %q", got.Currency(), EuroCurrency)
			}
		})
	}
}

func TestParsePrice_Errors(t *testing.T) {
	t.Run("blank input", func(t *testing.T) {
		_, err := ParsePrice("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("ParsePrice(\"\") error = %v, want *BlankValueError", err)
		}
	})

	tests := []struct {
		name  string
		input string
	}{
		{"malformed amount", "abc EUR"},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrice(tt.input)
			var parseErr *railerr.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParsePrice(%q) error = %v, want *ParseError", tt.input, err)
			}
			if parseErr.Value != tt.input {
				t.Errorf("ParseError.Value = %q, want %q", parseErr.Value, tt.input)
			}
		})
	}
}

func TestPrice_Add(t *testing.T) {
	a := Euro(decimal.New(100, 0))
	b := Euro(decimal.New(505, -1))

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if sum.String() != "150.50 EUR" {
		t.Errorf("Add() = %q, want %q", sum.String(), "150.50 EUR")
	}

	t.Run("currency mismatch", func(t *testing.T) {
		_, err := a.Add(Price{})
		var valErr *railerr.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("Add() with zero Price error = %v, want *ValidationError", err)
		}
	})
}

func TestSumPrices(t *testing.T) {
	prices := []Price{
		Euro(decimal.New(100, 0)),
		{}, // no price recorded, counts as zero
		Euro(decimal.New(25, 0)),
	}

	total := SumPrices(prices)
	if total.String() != "125.00 EUR" {
		t.Errorf("SumPrices() = %q, want %q", total.String(), "125.00 EUR")
	}

	t.Run("empty slice yields zero euros", func(t *testing.T) {
		total := SumPrices(nil)
		if total.String() != "0.00 EUR" {
			t.Errorf("SumPrices(nil) = %q, want %q", total.String(), "0.00 EUR")
		}
	})
}

func TestPrice_Zero(t *testing.T) {
	var p Price
	if !p.IsZero() {
		t.Error("zero Price should report IsZero")
	}
	if p.String() != "" {
		t.Errorf("zero Price String() = %q, want empty", p.String())
	}
	if p.Equal(Euro(decimal.Zero)) {
		t.Error("the zero Price is not the same as zero euros")
	}
}

func TestPrice_Cmp(t *testing.T) {
	cheap := Euro(decimal.New(50, 0))
	dear := Euro(decimal.New(200, 0))

	if cheap.Cmp(dear) >= 0 {
		t.Error("50 EUR should compare below 200 EUR")
	}
	if dear.Cmp(cheap) <= 0 {
		t.Error("200 EUR should compare above 50 EUR")
	}
	if cheap.Cmp(Euro(decimal.New(50, 0))) != 0 {
		t.Error("equal amounts should compare equal")
	}
}

func TestPrice_JSONRoundTrip(t *testing.T) {
	p, err := ParsePrice("199.90 EUR")
	if err != nil {
		t.Fatalf("ParsePrice() error = %v", err)
	}

	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"199.90 EUR"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, `"199.90 EUR"`)
	}

	var decoded Price
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if !decoded.Equal(p) {
		t.Errorf("round trip changed value: %v != %v", decoded, p)
	}
}
