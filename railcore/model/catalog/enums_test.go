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

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"LOCOMOTIVE", CategoryLocomotives},
		{"TRAIN", CategoryTrains},
		{"PASSENGER_CAR", CategoryPassengerCars},
		{"FREIGHT_CAR", CategoryFreightCars},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if err != nil {
				t.Fatalf("ParseCategory(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}

	t.Run("blank input", func(t *testing.T) {
		_, err := ParseCategory("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("ParseCategory(\"\") error = %v, want *BlankValueError", err)
		}
	})

	t.Run("lowercase rejected", func(t *testing.T) {
		_, err := ParseCategory("locomotive")
		var parseErr *railerr.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseCategory(\"locomotive\") error = %v, want *ParseError", err)
		}
	})
}

func TestCategory_Symbol(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryLocomotives, "L"},
		{CategoryTrains, "T"},
		{CategoryPassengerCars, "P"},
		{CategoryFreightCars, "F"},
		{Category(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.category.Symbol(); got != tt.want {
			t.Errorf("Category(%d).Symbol() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestParsePowerMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    PowerMethod
		wantErr bool
	}{
		{"DC", PowerMethodDC, false},
		{"AC", PowerMethodAC, false},
		{"dc", 0, true},
		{"ac", 0, true},
		{"", 0, true},
		{"DCC", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePowerMethod(tt.input)
			if tt.wantErr {
				var parseErr *railerr.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParsePowerMethod(%q) error = %v, want *ParseError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePowerMethod(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePowerMethod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseControl(t *testing.T) {
	tests := []struct {
		input string
		want  Control
	}{
		{"DCC_READY", ControlDccReady},
		{"DCC", ControlDcc},
		{"DCC_SOUND", ControlDccSound},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseControl(tt.input)
			if err != nil {
				t.Fatalf("ParseControl(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseControl(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}

	t.Run("blank input", func(t *testing.T) {
		_, err := ParseControl("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("ParseControl(\"\") error = %v, want *BlankValueError", err)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := ParseControl("ANALOG")
		var parseErr *railerr.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseControl(\"ANALOG\") error = %v, want *ParseError", err)
		}
	})
}

func TestParseDccInterface(t *testing.T) {
	inputs := []string{"NEM_651", "NEM_652", "PLUX_8", "PLUX_16", "PLUX_22", "NEXT_18", "MTC_21"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDccInterface(input)
			if err != nil {
				t.Fatalf("ParseDccInterface(%q) error = %v", input, err)
			}
			if got.String() != input {
				t.Errorf("String() = %q, want %q", got.String(), input)
			}
		})
	}

	t.Run("unknown socket", func(t *testing.T) {
		_, err := ParseDccInterface("NEM_999")
		var parseErr *railerr.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseDccInterface(\"NEM_999\") error = %v, want *ParseError", err)
		}
	})
}

func TestSubCategories_RoundTrip(t *testing.T) {
	t.Run("locomotive types", func(t *testing.T) {
		for _, s := range []string{"ELECTRIC_LOCOMOTIVE", "DIESEL_LOCOMOTIVE", "STEAM_LOCOMOTIVE"} {
			v, err := ParseLocomotiveType(s)
			if err != nil {
				t.Fatalf("ParseLocomotiveType(%q) error = %v", s, err)
			}
			if v.String() != s {
				t.Errorf("String() = %q, want %q", v.String(), s)
			}
		}
	})

	t.Run("train types", func(t *testing.T) {
		for _, s := range []string{"ELECTRIC_MULTIPLE_UNITS", "DIESEL_MULTIPLE_UNITS", "HIGH_SPEED_TRAIN"} {
			v, err := ParseTrainType(s)
			if err != nil {
				t.Fatalf("ParseTrainType(%q) error = %v", s, err)
			}
			if v.String() != s {
				t.Errorf("String() = %q, want %q", v.String(), s)
			}
		}
	})

	t.Run("passenger car types", func(t *testing.T) {
		for _, s := range []string{"OPEN_COACH", "COMPARTMENT_COACH", "DINING_CAR", "SLEEPING_CAR", "BAGGAGE_CAR", "DOUBLE_DECKER", "DRIVING_TRAILER"} {
			v, err := ParsePassengerCarType(s)
			if err != nil {
				t.Fatalf("ParsePassengerCarType(%q) error = %v", s, err)
			}
			if v.String() != s {
				t.Errorf("String() = %q, want %q", v.String(), s)
			}
		}
	})

	t.Run("freight car types", func(t *testing.T) {
		for _, s := range []string{"SWING_ROOF_WAGON", "GONDOLA", "TANK_WAGON", "COVERED_FREIGHT_CAR", "FLAT_WAGON", "SLIDING_WALL_BOXCAR"} {
			v, err := ParseFreightCarType(s)
			if err != nil {
				t.Fatalf("ParseFreightCarType(%q) error = %v", s, err)
			}
			if v.String() != s {
				t.Errorf("String() = %q, want %q", v.String(), s)
			}
		}
	})

	t.Run("unknown sub-category", func(t *testing.T) {
		if _, err := ParseLocomotiveType("HYDROGEN_LOCOMOTIVE"); err == nil {
			t.Error("expected error for unknown locomotive type")
		}
	})
}
