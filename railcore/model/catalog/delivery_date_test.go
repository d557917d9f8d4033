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

package catalog

import (
	"errors"
	"testing"

	railerr "railists.dev/railists/railcore/errors"
)

func TestParseDeliveryDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantYear    int
		wantQuarter int
	}{
		{"year only", "2021", 2021, 0},
		{"first quarter", "2021/Q1", 2021, 1},
		{"fourth quarter", "2024/Q4", 2024, 4},
		{"lower bound year", "1900", 1900, 0},
		{"upper bound year", "2999", 2999, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeliveryDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDeliveryDate(%q) error = %v", tt.input, err)
			}
			if got.Year() != tt.wantYear {
				t.Errorf("Year() = %d, want %d", got.Year(), tt.wantYear)
			}
			quarter, hasQuarter := got.Quarter()
			if tt.wantQuarter == 0 && hasQuarter {
				t.Errorf("Quarter() = %d, want none", quarter)
			}
			if tt.wantQuarter != 0 && quarter != tt.wantQuarter {
				t.Errorf("Quarter() = %d, want %d", quarter, tt.wantQuarter)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestParseDeliveryDate_Errors(t *testing.T) {
	t.Run("blank input", func(t *testing.T) {
		_, err := ParseDeliveryDate("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("ParseDeliveryDate(\"\") error = %v, want *BlankValueError", err)
		}
	})

	tests := []struct {
		name  string
		input string
	}{
		{"year below range", "1899"},
		{"year above range", "3000"},
		{"quarter zero", "2021/Q0"},
		{"quarter five", "2021/Q5"},
		{"not a year", "soon"},
		{"bad separator", "2021-Q1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeliveryDate(tt.input)
			var parseErr *railerr.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseDeliveryDate(%q) error = %v, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestNewDeliveryDateByQuarter(t *testing.T) {
	d, err := NewDeliveryDateByQuarter(2022, 3)
	if err != nil {
		t.Fatalf("NewDeliveryDateByQuarter(2022, 3) error = %v", err)
	}
	if d.String() != "2022/Q3" {
		t.Errorf("String() = %q, want %q", d.String(), "2022/Q3")
	}

	if _, err := NewDeliveryDateByQuarter(2022, 5); err == nil {
		t.Error("NewDeliveryDateByQuarter(2022, 5) expected error, got nil")
	}
	if _, err := NewDeliveryDateByYear(1850); err == nil {
		t.Error("NewDeliveryDateByYear(1850) expected error, got nil")
	}
}

func TestDeliveryDate_Zero(t *testing.T) {
	var d DeliveryDate
	if !d.IsZero() {
		t.Error("zero DeliveryDate should report IsZero")
	}
	if d.String() != "" {
		t.Errorf("zero DeliveryDate String() = %q, want empty", d.String())
	}
}
