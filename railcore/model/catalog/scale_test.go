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

	"github.com/shopspring/decimal"
	railerr "railists.dev/railists/railcore/errors"
)

func TestScaleH0(t *testing.T) {
	s := ScaleH0()

	if s.Name() != "H0" {
		t.Errorf("Name() = %q, want %q", s.Name(), "H0")
	}
	if !s.Ratio().Equal(decimal.New(87, 0)) {
		t.Errorf("Ratio() = %s, want 87", s.Ratio())
	}
	gauge, ok := s.Gauge()
	if !ok || !gauge.Equal(decimal.New(165, -1)) {
		t.Errorf("Gauge() = %s, %v, want 16.5, true", gauge, ok)
	}
	if s.TrackGaugeType() != TrackGaugeStandard {
		t.Errorf("TrackGaugeType() = %v, want standard", s.TrackGaugeType())
	}
	if s.String() != "H0 (1:87)" {
		t.Errorf("String() = %q, want %q", s.String(), "H0 (1:87)")
	}
}

func TestScaleN(t *testing.T) {
	s := ScaleN()

	if s.Name() != "N" {
		t.Errorf("Name() = %q, want %q", s.Name(), "N")
	}
	if !s.Ratio().Equal(decimal.New(160, 0)) {
		t.Errorf("Ratio() = %s, want 160", s.Ratio())
	}
	gauge, ok := s.Gauge()
	if !ok || !gauge.Equal(decimal.New(9, 0)) {
		t.Errorf("Gauge() = %s, %v, want 9, true", gauge, ok)
	}
	if s.String() != "N (1:160)" {
		t.Errorf("String() = %q, want %q", s.String(), "N (1:160)")
	}
}

func TestScaleFromName(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantOK   bool
	}{
		{"H0", "H0", true},
		{"h0", "H0", true},
		{"N", "N", true},
		{"n", "N", true},
		{"Z", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ScaleFromName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ScaleFromName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got.Name() != tt.wantName {
				t.Errorf("ScaleFromName(%q).Name() = %q, want %q", tt.input, got.Name(), tt.wantName)
			}
		})
	}
}

func TestScale_Equal(t *testing.T) {
	h0 := ScaleH0()

	// Identity is the name alone: a different ratio does not matter.
	other, err := NewScale("H0", decimal.New(90, 0), TrackGaugeStandard)
	if err != nil {
		t.Fatalf("NewScale() error = %v", err)
	}
	if !h0.Equal(other) {
		t.Error("scales with the same name should be equal")
	}
	if !h0.Equal(&other) {
		t.Error("Equal should accept a pointer operand")
	}
	if h0.Equal(ScaleN()) {
		t.Error("H0 should not equal N")
	}
	if h0.Equal("H0") {
		t.Error("Equal should reject non-Scale operands")
	}
}

func TestNewScale_Errors(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		_, err := NewScale("", decimal.New(87, 0), TrackGaugeStandard)
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("error = %v, want *BlankValueError", err)
		}
	})

	t.Run("non-positive ratio", func(t *testing.T) {
		_, err := NewScale("H0", decimal.Zero, TrackGaugeStandard)
		var valErr *railerr.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if valErr.Field != "Ratio" {
			t.Errorf("ValidationError.Field = %q, want %q", valErr.Field, "Ratio")
		}
	})

	t.Run("invalid track gauge", func(t *testing.T) {
		if _, err := NewScale("H0", decimal.New(87, 0), TrackGauge(0)); err == nil {
			t.Fatal("expected error for zero track gauge, got nil")
		}
	})

	t.Run("non-positive gauge", func(t *testing.T) {
		_, err := NewScaleWithGauge("H0", decimal.New(87, 0), decimal.Zero, TrackGaugeStandard)
		var valErr *railerr.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if valErr.Field != "Gauge" {
			t.Errorf("ValidationError.Field = %q, want %q", valErr.Field, "Gauge")
		}
	})
}

func TestScale_JSONRoundTrip(t *testing.T) {
	original := ScaleH0()

	data, err := original.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var decoded Scale
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip changed value: %v != %v", decoded, original)
	}
	if !decoded.Ratio().Equal(original.Ratio()) {
		t.Errorf("round trip changed ratio: %s != %s", decoded.Ratio(), original.Ratio())
	}
	gauge, ok := decoded.Gauge()
	if !ok || !gauge.Equal(decimal.New(165, -1)) {
		t.Errorf("round trip changed gauge: %s, %v", gauge, ok)
	}
}

func TestScale_MarshalInvalid(t *testing.T) {
	var zero Scale
	_, err := zero.MarshalJSON()
	var marshalErr *railerr.MarshalError
	if !errors.As(err, &marshalErr) {
		t.Fatalf("MarshalJSON() on zero Scale error = %v, want *MarshalError", err)
	}
}
