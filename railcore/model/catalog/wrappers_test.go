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

func TestNewBrand(t *testing.T) {
	b, err := NewBrand("Roco")
	if err != nil {
		t.Fatalf("NewBrand(\"Roco\") error = %v", err)
	}
	if b.String() != "Roco" {
		t.Errorf("String() = %q, want %q", b.String(), "Roco")
	}

	t.Run("blank name", func(t *testing.T) {
		_, err := NewBrand("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("NewBrand(\"\") error = %v, want *BlankValueError", err)
		}
	})
}

func TestBrand_Compare(t *testing.T) {
	acme, _ := NewBrand("ACME")
	roco, _ := NewBrand("Roco")

	if acme.Compare(roco) >= 0 {
		t.Error("ACME should sort before Roco")
	}
	if roco.Compare(acme) <= 0 {
		t.Error("Roco should sort after ACME")
	}
	if acme.Compare(acme) != 0 {
		t.Error("a brand should compare equal to itself")
	}
}

func TestNewItemNumber(t *testing.T) {
	n, err := NewItemNumber("62391")
	if err != nil {
		t.Fatalf("NewItemNumber(\"62391\") error = %v", err)
	}
	if n.String() != "62391" {
		t.Errorf("String() = %q, want %q", n.String(), "62391")
	}

	t.Run("blank number", func(t *testing.T) {
		_, err := NewItemNumber("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("NewItemNumber(\"\") error = %v, want *BlankValueError", err)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		a, _ := NewItemNumber("62390")
		b, _ := NewItemNumber("62391")
		if a.Compare(b) >= 0 {
			t.Error("62390 should sort before 62391")
		}
	})
}

func TestNewRailway(t *testing.T) {
	r, err := NewRailway("FS")
	if err != nil {
		t.Fatalf("NewRailway(\"FS\") error = %v", err)
	}
	if r.String() != "FS" {
		t.Errorf("String() = %q, want %q", r.String(), "FS")
	}
	if r.IsZero() {
		t.Error("a named railway should not be zero")
	}

	t.Run("blank name", func(t *testing.T) {
		_, err := NewRailway("")
		var blank *railerr.BlankValueError
		if !errors.As(err, &blank) {
			t.Fatalf("NewRailway(\"\") error = %v, want *BlankValueError", err)
		}
	})
}

func TestNewLengthOverBuffer(t *testing.T) {
	l, err := NewLengthOverBuffer(210)
	if err != nil {
		t.Fatalf("NewLengthOverBuffer(210) error = %v", err)
	}
	if l.Millimetres() != 210 {
		t.Errorf("Millimetres() = %d, want 210", l.Millimetres())
	}
	if l.String() != "210 mm" {
		t.Errorf("String() = %q, want %q", l.String(), "210 mm")
	}

	tests := []struct {
		name  string
		value int
	}{
		{"zero", 0},
		{"negative", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLengthOverBuffer(tt.value)
			var valErr *railerr.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("NewLengthOverBuffer(%d) error = %v, want *ValidationError", tt.value, err)
			}
		})
	}

	t.Run("zero value renders empty", func(t *testing.T) {
		var zero LengthOverBuffer
		if !zero.IsZero() {
			t.Error("zero LengthOverBuffer should report IsZero")
		}
		if zero.String() != "" {
			t.Errorf("zero String() = %q, want empty", zero.String())
		}
	})
}
