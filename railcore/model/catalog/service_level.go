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
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// ServiceLevel describes the travel classes offered by a passenger car:
// a single class, a mixed car with two adjacent classes, or all three.
//
// The external form is a "/"-separated combination of the atomic tokens
// "1cl", "2cl" and "3cl". Input order does not matter and duplicates are
// tolerated; the canonical form always lists classes in ascending order.
// Only adjacent combinations exist as real cars, so "1cl/3cl" is rejected
// while "1cl/2cl", "2cl/3cl" and "1cl/2cl/3cl" are accepted.
type ServiceLevel int

const (
	// ServiceLevelFirstClass identifies a first class only car.
	ServiceLevelFirstClass ServiceLevel = iota + 1

	// ServiceLevelSecondClass identifies a second class only car.
	ServiceLevelSecondClass

	// ServiceLevelThirdClass identifies a third class only car, found on
	// historic stock from epochs I through III.
	ServiceLevelThirdClass

	// ServiceLevelFirstSecondClass identifies a mixed first/second class
	// car.
	ServiceLevelFirstSecondClass

	// ServiceLevelSecondThirdClass identifies a mixed second/third class
	// car.
	ServiceLevelSecondThirdClass

	// ServiceLevelFirstSecondThirdClass identifies a car carrying all three
	// classes.
	ServiceLevelFirstSecondThirdClass
)

// Atomic service level tokens. Composite forms are built by joining them
// with "/" in ascending order.
const (
	serviceLevelFirstStr  = "1cl"
	serviceLevelSecondStr = "2cl"
	serviceLevelThirdStr  = "3cl"
)

// ParseServiceLevel converts a textual representation into a ServiceLevel.
//
// The input is split on "/"; each token MUST be one of "1cl", "2cl" or
// "3cl". Tokens are sorted and deduplicated before matching, so
// "2cl/1cl" and "1cl/1cl/2cl" both parse to ServiceLevelFirstSecondClass.
//
// Empty input yields a *BlankValueError. An unknown token, or a combination
// that does not correspond to a real car (the non-adjacent pair "1cl/3cl"),
// yields a *ParseError carrying the original input.
func ParseServiceLevel(s string) (ServiceLevel, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "ServiceLevel"}
	}

	tokens := strings.Split(s, "/")
	sort.Strings(tokens)

	// Dedupe in place; tokens are already sorted.
	uniq := tokens[:0]
	for i, t := range tokens {
		if i == 0 || t != tokens[i-1] {
			uniq = append(uniq, t)
		}
	}

	for _, t := range uniq {
		switch t {
		case serviceLevelFirstStr, serviceLevelSecondStr, serviceLevelThirdStr:
		default:
			return 0, &errors.ParseError{Type: "ServiceLevel", Value: s}
		}
	}

	switch strings.Join(uniq, "/") {
	case serviceLevelFirstStr:
		return ServiceLevelFirstClass, nil
	case serviceLevelSecondStr:
		return ServiceLevelSecondClass, nil
	case serviceLevelThirdStr:
		return ServiceLevelThirdClass, nil
	case serviceLevelFirstStr + "/" + serviceLevelSecondStr:
		return ServiceLevelFirstSecondClass, nil
	case serviceLevelSecondStr + "/" + serviceLevelThirdStr:
		return ServiceLevelSecondThirdClass, nil
	case serviceLevelFirstStr + "/" + serviceLevelSecondStr + "/" + serviceLevelThirdStr:
		return ServiceLevelFirstSecondThirdClass, nil
	default:
		return 0, &errors.ParseError{Type: "ServiceLevel", Value: s}
	}
}

// String returns the canonical string representation of the ServiceLevel,
// with classes in ascending order. Invalid values yield "unknown".
func (s ServiceLevel) String() string {
	switch s {
	case ServiceLevelFirstClass:
		return serviceLevelFirstStr
	case ServiceLevelSecondClass:
		return serviceLevelSecondStr
	case ServiceLevelThirdClass:
		return serviceLevelThirdStr
	case ServiceLevelFirstSecondClass:
		return serviceLevelFirstStr + "/" + serviceLevelSecondStr
	case ServiceLevelSecondThirdClass:
		return serviceLevelSecondStr + "/" + serviceLevelThirdStr
	case ServiceLevelFirstSecondThirdClass:
		return serviceLevelFirstStr + "/" + serviceLevelSecondStr + "/" + serviceLevelThirdStr
	default:
		return "unknown"
	}
}

// Valid reports whether the ServiceLevel is one of the defined constants.
func (s ServiceLevel) Valid() bool {
	return s >= ServiceLevelFirstClass && s <= ServiceLevelFirstSecondThirdClass
}

// TypeName returns "ServiceLevel", the name of the type for logging and
// debugging.
func (s ServiceLevel) TypeName() string {
	return "ServiceLevel"
}

// Redacted returns the same string representation as String().
func (s ServiceLevel) Redacted() string {
	return s.String()
}

// IsZero reports whether the ServiceLevel has its zero value. Service level
// is only meaningful for passenger cars; the zero value means none was
// recorded.
func (s ServiceLevel) IsZero() bool {
	return s == 0
}

// Equal reports whether this ServiceLevel is equal to another value.
func (s ServiceLevel) Equal(other any) bool {
	switch v := other.(type) {
	case ServiceLevel:
		return s == v
	case *ServiceLevel:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate checks whether the ServiceLevel is one of the defined constants,
// returning a *ValidationError otherwise.
func (s ServiceLevel) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "ServiceLevel",
			Reason: "invalid ServiceLevel value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ServiceLevel.
func (s ServiceLevel) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "ServiceLevel", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for ServiceLevel. It accepts
// the textual combinations understood by ParseServiceLevel.
func (s *ServiceLevel) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ServiceLevel", Data: data, Reason: "empty data"}
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "ServiceLevel", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseServiceLevel(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ServiceLevel.
func (s ServiceLevel) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "ServiceLevel", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ServiceLevel.
func (s *ServiceLevel) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ServiceLevel", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseServiceLevel(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for ServiceLevel.
func (s ServiceLevel) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "ServiceLevel", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for ServiceLevel.
func (s *ServiceLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseServiceLevel(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time check that ServiceLevel implements model.Model interface.
var _ model.Model = (*ServiceLevel)(nil)
