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
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// Railway is the operating railway company a rolling stock is lettered
// for, such as "FS", "DB" or "SNCF".
type Railway struct {
	name string
}

// NewRailway builds a Railway from the company name. Empty input yields a
// *BlankValueError.
func NewRailway(name string) (Railway, error) {
	if name == "" {
		return Railway{}, &errors.BlankValueError{Type: "Railway"}
	}
	return Railway{name: name}, nil
}

// Name returns the railway company name.
func (r Railway) Name() string {
	return r.name
}

// String returns the railway company name.
func (r Railway) String() string {
	return r.name
}

// Compare orders railways lexicographically by name.
func (r Railway) Compare(other Railway) int {
	return strings.Compare(r.name, other.name)
}

// Valid reports whether the railway name is non-empty.
func (r Railway) Valid() bool {
	return r.name != ""
}

// TypeName returns "Railway", the name of the type for logging and
// debugging.
func (r Railway) TypeName() string {
	return "Railway"
}

// Redacted returns the same string representation as String().
func (r Railway) Redacted() string {
	return r.name
}

// IsZero reports whether the Railway is empty.
func (r Railway) IsZero() bool {
	return r.name == ""
}

// Equal reports whether this Railway is equal to another value.
func (r Railway) Equal(other any) bool {
	switch v := other.(type) {
	case Railway:
		return r == v
	case *Railway:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks that the railway name is non-empty.
func (r Railway) Validate() error {
	if !r.Valid() {
		return &errors.ValidationError{
			Type:   "Railway",
			Reason: "railway name must not be empty",
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Railway.
func (r Railway) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Railway"}
	}
	return json.Marshal(r.name)
}

// UnmarshalJSON implements json.Unmarshaler for Railway.
func (r *Railway) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Railway", Data: data, Reason: err.Error()}
	}
	parsed, err := NewRailway(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Railway.
func (r Railway) MarshalYAML() (any, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Railway"}
	}
	return r.name, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Railway.
func (r *Railway) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Railway", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewRailway(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Railway.
func (r Railway) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Railway"}
	}
	return []byte(r.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Railway.
func (r *Railway) UnmarshalText(text []byte) error {
	parsed, err := NewRailway(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Compile-time check that Railway implements model.Model interface.
var _ model.Model = (*Railway)(nil)
