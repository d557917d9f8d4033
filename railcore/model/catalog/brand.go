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

// Brand is the name of a model railway manufacturer, such as "ACME",
// "Roco" or "Märklin". Brands order lexicographically; together with the
// ItemNumber a Brand forms the identity of a CatalogItem.
type Brand struct {
	name string
}

// NewBrand builds a Brand from the manufacturer name. Empty input yields a
// *BlankValueError.
func NewBrand(name string) (Brand, error) {
	if name == "" {
		return Brand{}, &errors.BlankValueError{Type: "Brand"}
	}
	return Brand{name: name}, nil
}

// Name returns the manufacturer name.
func (b Brand) Name() string {
	return b.name
}

// String returns the manufacturer name.
func (b Brand) String() string {
	return b.name
}

// Compare orders brands lexicographically by name, in the manner of
// strings.Compare.
func (b Brand) Compare(other Brand) int {
	return strings.Compare(b.name, other.name)
}

// Valid reports whether the brand name is non-empty.
func (b Brand) Valid() bool {
	return b.name != ""
}

// TypeName returns "Brand", the name of the type for logging and debugging.
func (b Brand) TypeName() string {
	return "Brand"
}

// Redacted returns the same string representation as String().
func (b Brand) Redacted() string {
	return b.name
}

// IsZero reports whether the Brand is empty.
func (b Brand) IsZero() bool {
	return b.name == ""
}

// Equal reports whether this Brand is equal to another value.
func (b Brand) Equal(other any) bool {
	switch v := other.(type) {
	case Brand:
		return b == v
	case *Brand:
		if v == nil {
			return false
		}
		return b == *v
	default:
		return false
	}
}

// Validate checks that the brand name is non-empty.
func (b Brand) Validate() error {
	if !b.Valid() {
		return &errors.ValidationError{
			Type:   "Brand",
			Reason: "brand name must not be empty",
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Brand.
func (b Brand) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Brand"}
	}
	return json.Marshal(b.name)
}

// UnmarshalJSON implements json.Unmarshaler for Brand.
func (b *Brand) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Brand", Data: data, Reason: err.Error()}
	}
	parsed, err := NewBrand(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Brand.
func (b Brand) MarshalYAML() (any, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Brand"}
	}
	return b.name, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Brand.
func (b *Brand) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Brand", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewBrand(str)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Brand.
func (b Brand) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Brand"}
	}
	return []byte(b.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Brand.
func (b *Brand) UnmarshalText(text []byte) error {
	parsed, err := NewBrand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Compile-time check that Brand implements model.Model interface.
var _ model.Model = (*Brand)(nil)
