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

package model_test

import (
	"strings"
	"testing"

	"railists.dev/railists/railcore/model"
	"railists.dev/railists/railcore/model/catalog"
)

func mustParseEpoch(t *testing.T, s string) catalog.Epoch {
	t.Helper()
	e, err := catalog.ParseEpoch(s)
	if err != nil {
		t.Fatalf("ParseEpoch(%q) error = %v", s, err)
	}
	return e
}

func TestValidateAll(t *testing.T) {
	valid := mustParseEpoch(t, "IV")
	other := mustParseEpoch(t, "IIIb")

	t.Run("all valid", func(t *testing.T) {
		if err := model.ValidateAll([]*catalog.Epoch{&valid, &other}); err != nil {
			t.Errorf("ValidateAll() error = %v", err)
		}
	})

	t.Run("empty slice", func(t *testing.T) {
		if err := model.ValidateAll([]*catalog.Epoch{}); err != nil {
			t.Errorf("ValidateAll() on empty slice error = %v", err)
		}
	})

	t.Run("failures carry positions", func(t *testing.T) {
		var broken catalog.Epoch
		var alsoBroken catalog.Epoch

		err := model.ValidateAll([]*catalog.Epoch{&valid, &broken, &alsoBroken})
		if err == nil {
			t.Fatal("ValidateAll() expected error, got nil")
		}
		msg := err.Error()
		if !strings.Contains(msg, "model[1] (Epoch)") {
			t.Errorf("error %q should name position 1", msg)
		}
		if !strings.Contains(msg, "model[2] (Epoch)") {
			t.Errorf("error %q should name position 2, all failures reported", msg)
		}
		if strings.Contains(msg, "model[0]") {
			t.Errorf("error %q should not name the valid entry", msg)
		}
	})
}

func TestFilterZero(t *testing.T) {
	valid := mustParseEpoch(t, "IV")
	var zero catalog.Epoch

	got := model.FilterZero([]*catalog.Epoch{&zero, &valid, &zero})
	if len(got) != 1 {
		t.Fatalf("len(FilterZero()) = %d, want 1", len(got))
	}
	if !got[0].Equal(valid) {
		t.Errorf("FilterZero() kept %v, want %v", got[0], valid)
	}

	t.Run("nil input yields empty slice", func(t *testing.T) {
		got := model.FilterZero[*catalog.Epoch](nil)
		if got == nil || len(got) != 0 {
			t.Errorf("FilterZero(nil) = %v, want empty non-nil slice", got)
		}
	})
}

func TestMustValidate(t *testing.T) {
	valid := mustParseEpoch(t, "IV")
	if got := model.MustValidate(&valid); !got.Equal(valid) {
		t.Error("MustValidate() should return the model unchanged")
	}

	t.Run("panics on invalid model", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustValidate() should panic on an invalid model")
			}
		}()
		var zero catalog.Epoch
		model.MustValidate(&zero)
	})
}

func TestToJSONFromJSON(t *testing.T) {
	epoch := mustParseEpoch(t, "IV/V")

	data, err := model.ToJSON(&epoch)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `"IV/V"` {
		t.Errorf("ToJSON() = %s, want %q", data, `"IV/V"`)
	}

	decoded := new(catalog.Epoch)
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if !decoded.Equal(epoch) {
		t.Errorf("round trip changed value: %v != %v", decoded, epoch)
	}

	t.Run("invalid model refuses to marshal", func(t *testing.T) {
		var zero catalog.Epoch
		if _, err := model.ToJSON(&zero); err == nil {
			t.Error("ToJSON() on invalid model expected error, got nil")
		}
	})
}

func TestClone(t *testing.T) {
	original := mustParseEpoch(t, "IIIa/IIIb")

	clone, err := model.Clone(&original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !clone.Equal(original) {
		t.Errorf("Clone() = %v, want %v", clone, original)
	}
}

func TestEqual(t *testing.T) {
	a := mustParseEpoch(t, "IV")
	b := mustParseEpoch(t, "IV")
	c := mustParseEpoch(t, "V")

	if !model.Equal(&a, &b) {
		t.Error("identical epochs should be equal")
	}
	if model.Equal(&a, &c) {
		t.Error("different epochs should not be equal")
	}
}

func TestSafeString(t *testing.T) {
	epoch := mustParseEpoch(t, "IV")

	if got := model.SafeString(&epoch, false); got != epoch.Redacted() {
		t.Errorf("SafeString(false) = %q, want the redacted form %q", got, epoch.Redacted())
	}
	if got := model.SafeString(&epoch, true); got != epoch.String() {
		t.Errorf("SafeString(true) = %q, want %q", got, epoch.String())
	}
}
