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

// ItemNumber is the manufacturer's catalog number for an item, such as
// "62391" (Roco) or "E656" (ACME). It is an opaque non-empty string;
// together with the Brand it forms the identity of a CatalogItem.
type ItemNumber struct {
	value string
}

// NewItemNumber builds an ItemNumber from its textual form. Empty input
// yields a *BlankValueError.
func NewItemNumber(s string) (ItemNumber, error) {
	if s == "" {
		return ItemNumber{}, &errors.BlankValueError{Type: "ItemNumber"}
	}
	return ItemNumber{value: s}, nil
}

// String returns the item number text.
func (n ItemNumber) String() string {
	return n.value
}

// Compare orders item numbers lexicographically, returning a negative
// value, zero, or a positive value in the manner of strings.Compare.
func (n ItemNumber) Compare(other ItemNumber) int {
	return strings.Compare(n.value, other.value)
}

// Valid reports whether the item number is non-empty.
func (n ItemNumber) Valid() bool {
	return n.value != ""
}

// TypeName returns "ItemNumber", the name of the type for logging and
// debugging.
func (n ItemNumber) TypeName() string {
	return "ItemNumber"
}

// Redacted returns the same string representation as String().
func (n ItemNumber) Redacted() string {
	return n.value
}

// IsZero reports whether the ItemNumber is empty.
func (n ItemNumber) IsZero() bool {
	return n.value == ""
}

// Equal reports whether this ItemNumber is equal to another value.
func (n ItemNumber) Equal(other any) bool {
	switch v := other.(type) {
	case ItemNumber:
		return n == v
	case *ItemNumber:
		if v == nil {
			return false
		}
		return n == *v
	default:
		return false
	}
}

// Validate checks that the item number is non-empty.
func (n ItemNumber) Validate() error {
	if !n.Valid() {
		return &errors.ValidationError{
			Type:   "ItemNumber",
			Reason: "item number must not be empty",
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ItemNumber.
func (n ItemNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "ItemNumber"}
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON implements json.Unmarshaler for ItemNumber.
func (n *ItemNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "ItemNumber", Data: data, Reason: err.Error()}
	}
	parsed, err := NewItemNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ItemNumber.
func (n ItemNumber) MarshalYAML() (any, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "ItemNumber"}
	}
	return n.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ItemNumber. Numeric item
// numbers appear as YAML integers, so the node is decoded as a string.
func (n *ItemNumber) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ItemNumber", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewItemNumber(str)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for ItemNumber.
func (n ItemNumber) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "ItemNumber"}
	}
	return []byte(n.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for ItemNumber.
func (n *ItemNumber) UnmarshalText(text []byte) error {
	parsed, err := NewItemNumber(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compile-time check that ItemNumber implements model.Model interface.
var _ model.Model = (*ItemNumber)(nil)
