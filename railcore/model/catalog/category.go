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

// Package catalog implements the catalog side of the railists domain model:
// the strongly typed values that describe what a manufacturer sells (item
// numbers, scales, epochs, power methods, decoder sockets, service levels,
// delivery dates), the rolling stock elements contained in a boxed set, and
// the CatalogItem aggregate that ties them together.
//
// Every value type in this package follows the same contract: a ParseX
// function converts the external textual form into the typed value and
// reports blank input and vocabulary misses as distinct typed errors; String
// returns the canonical form; and Parse(v.String()) == v holds for every
// valid value. Most types additionally implement the full model.Model
// interface so they participate in validation, serialization and logging
// uniformly.
//
// Values in this package are immutable once constructed and safe for
// concurrent reads. Invalid states are rejected at construction or parse
// time with typed errors from railcore/errors; nothing in this package
// panics on bad input.
package catalog

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// Category classifies a catalog item or a rolling stock element by what it
// fundamentally is: a locomotive, a complete train set, a passenger car, or
// a freight car.
//
// For a single rolling stock the category is declared in the source
// document. For a catalog item the category is never declared; it is derived
// at construction time from the categories of the contained rolling stocks
// (see NewCatalogItem). A boxed set mixing several categories is classified
// as CategoryTrains.
type Category int

const (
	// CategoryLocomotives identifies powered locomotives of any kind
	// (electric, diesel or steam). Only rolling stocks in this category
	// contribute cards to the depot view.
	CategoryLocomotives Category = iota + 1

	// CategoryTrains identifies complete train sets sold as a single item,
	// such as electric multiple units, and is also the composite category
	// assigned to catalog items whose rolling stocks span several
	// categories.
	CategoryTrains

	// CategoryPassengerCars identifies unpowered passenger coaches.
	CategoryPassengerCars

	// CategoryFreightCars identifies unpowered freight wagons.
	CategoryFreightCars
)

// String constants for Category values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable external representation of Category and
// appear in YAML documents, CSV exports, and table renderings. Changing
// them is a breaking change for every existing document.
const (
	CategoryLocomotivesStr   = "LOCOMOTIVE"
	CategoryTrainsStr        = "TRAIN"
	CategoryPassengerCarsStr = "PASSENGER_CAR"
	CategoryFreightCarsStr   = "FREIGHT_CAR"
)

// ParseCategory converts a textual representation into a Category value.
//
// The vocabulary is closed and case-sensitive:
//
//	"LOCOMOTIVE"    -> CategoryLocomotives
//	"TRAIN"         -> CategoryTrains
//	"PASSENGER_CAR" -> CategoryPassengerCars
//	"FREIGHT_CAR"   -> CategoryFreightCars
//
// Empty input yields a *BlankValueError; any other unrecognized input yields
// a *ParseError carrying the offending string.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "Category"}
	}
	switch s {
	case CategoryLocomotivesStr:
		return CategoryLocomotives, nil
	case CategoryTrainsStr:
		return CategoryTrains, nil
	case CategoryPassengerCarsStr:
		return CategoryPassengerCars, nil
	case CategoryFreightCarsStr:
		return CategoryFreightCars, nil
	default:
		return 0, &errors.ParseError{Type: "Category", Value: s}
	}
}

// String returns the canonical string representation of the Category value,
// the same uppercase token accepted by ParseCategory.
//
// If the Category is not one of the defined constants, String returns
// "unknown". Callers that need a guarantee SHOULD call Valid first.
func (c Category) String() string {
	switch c {
	case CategoryLocomotives:
		return CategoryLocomotivesStr
	case CategoryTrains:
		return CategoryTrainsStr
	case CategoryPassengerCars:
		return CategoryPassengerCarsStr
	case CategoryFreightCars:
		return CategoryFreightCarsStr
	default:
		return "unknown"
	}
}

// Symbol returns a single-letter abbreviation of the category for compact
// table renderings: "L", "T", "P" or "F". Invalid values yield "?".
func (c Category) Symbol() string {
	switch c {
	case CategoryLocomotives:
		return "L"
	case CategoryTrains:
		return "T"
	case CategoryPassengerCars:
		return "P"
	case CategoryFreightCars:
		return "F"
	default:
		return "?"
	}
}

// Valid reports whether the Category value is one of the defined constants.
//
// Category values may originate from deserialization or numeric casts; code
// that assumes a known semantic meaning SHOULD call Valid first.
func (c Category) Valid() bool {
	return c >= CategoryLocomotives && c <= CategoryFreightCars
}

// TypeName returns "Category", the name of the type for logging and
// debugging. This method implements part of the model.Model interface.
func (c Category) TypeName() string {
	return "Category"
}

// Redacted returns the same string representation as String(). Category
// values carry no sensitive information.
func (c Category) Redacted() string {
	return c.String()
}

// IsZero reports whether the Category has its zero value. The zero value is
// not a valid category; a zero Category means the field was never set.
func (c Category) IsZero() bool {
	return c == 0
}

// Equal reports whether this Category is equal to another value. The method
// accepts any type and uses type assertion to check for Category or
// *Category.
func (c Category) Equal(other any) bool {
	switch v := other.(type) {
	case Category:
		return c == v
	case *Category:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate checks whether the Category value is one of the defined
// constants, returning a *ValidationError otherwise.
func (c Category) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Category",
			Reason: "invalid Category value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Category. A valid Category is
// serialized as its canonical uppercase token; an invalid value yields a
// *MarshalError and no output.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Category. It accepts the
// canonical string tokens; numeric input is accepted for compatibility with
// documents that store enum values as integers.
func (c *Category) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseCategory(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
	}
	*c = Category(i)
	if !c.Valid() {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Category.
func (c Category) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Category, resolving string
// nodes via ParseCategory.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Category.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Category", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Category, using
// ParseCategory as the single source of truth.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time check that Category implements model.Model interface.
var _ model.Model = (*Category)(nil)
