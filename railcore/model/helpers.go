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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one. Each failing model's error is wrapped
// with its position in the slice (zero-indexed) and its type name, so callers
// can pinpoint exactly which entries of a loaded document are broken.
//
// Errors are aggregated with multierr; the function always processes the
// entire slice even when early elements fail, ensuring complete error
// reporting. An empty slice is valid and returns nil.
//
// Example usage for batch validation of loaded catalog entries:
//
//	if err := ValidateAll(items); err != nil {
//	    slog.Error("document validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	var result error

	for i, m := range models {
		if err := m.Validate(); err != nil {
			result = multierr.Append(result, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return result
}

// FilterZero returns a new slice containing only the models for which IsZero
// reports false. Use it to drop empty placeholder values before processing or
// serializing a collection.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If every model is zero, or the input is empty or
// nil, the function returns an empty non-nil slice. FilterZero does not
// validate models; it only checks for zero values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It is meant
// for test code and initialization sequences where an invalid model is a
// programming error rather than a recoverable runtime condition, such as
// hardcoded fixtures or predefined constants.
//
// When validation succeeds the model is returned unchanged, enabling inline
// initialization patterns. When it fails, the panic message includes the
// model's type name and the validation error.
//
// Callers MUST NOT use MustValidate on data loaded from user documents; that
// path goes through the datasource adapter, which reports typed errors.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	scale := MustValidate(catalog.ScaleH0())
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default. When unsafe is false it invokes Redacted; when unsafe
// is true it invokes String, which MAY include details such as shop names and
// purchase prices that the owner may not want in shared logs.
//
// Production logging SHOULD always pass false. Debugging tools MAY pass true
// when the output destination is controlled.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it. Validation
// failures are returned wrapped with the model's type name, and no marshaling
// is attempted, so invalid data never reaches the encoder.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it. Validation
// failures are returned wrapped with the model's type name, and no marshaling
// is attempted, so invalid data never reaches the encoder.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result, so that
// malformed or incomplete data from external sources is rejected at the
// boundary rather than causing downstream processing errors.
//
// Callers MUST provide a pointer to a zero-initialized model variable. If
// FromJSON returns an error, the variable's state is undefined and MUST NOT
// be used.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result, so that
// documents with missing required fields or invalid values are rejected when
// loaded rather than causing incorrect behavior later.
//
// Callers MUST provide a pointer to a zero-initialized model variable. If
// FromYAML returns an error, the variable's state is undefined and MUST NOT
// be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model through a JSON round-trip. The clone
// shares no storage with the original, including nested slices and maps.
//
// The round-trip has encoding overhead; types cloned on hot paths SHOULD
// implement Cloneable[T] with hand-written copy logic instead. If Clone
// returns an error, the returned model is a zero value and MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models by serializing both to JSON and comparing the
// resulting bytes. If either marshal fails, Equal returns false rather than
// mistaking an encoding error for inequality.
//
// Because the comparison happens on JSON output, unexported fields and
// custom identity semantics are not honored. Types with documented identity
// (for example CatalogItem, compared by brand and item number) implement
// Comparable[T] themselves; this helper covers the generic case.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
