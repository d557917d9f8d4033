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

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// PowerMethod identifies the electrical system a model runs on: two-rail
// direct current (the common system, used by Roco, Piko and most European
// manufacturers) or three-rail alternating current (the Märklin system).
//
// The power method is a property of the whole catalog item, not of the
// individual rolling stocks: a DC boxed set contains only DC elements.
type PowerMethod int

const (
	// PowerMethodDC identifies two-rail direct current operation.
	PowerMethodDC PowerMethod = iota + 1

	// PowerMethodAC identifies three-rail alternating current operation.
	PowerMethodAC
)

// String constants for PowerMethod values used in serialization, parsing,
// and human-facing output.
const (
	PowerMethodDCStr = "DC"
	PowerMethodACStr = "AC"
)

// ParsePowerMethod converts a textual representation into a PowerMethod.
//
// The vocabulary is exact and case-sensitive: "DC" and "AC". Lowercase
// variants such as "dc" are rejected. Any unrecognized input, including the
// empty string, yields a *ParseError.
func ParsePowerMethod(s string) (PowerMethod, error) {
	switch s {
	case PowerMethodDCStr:
		return PowerMethodDC, nil
	case PowerMethodACStr:
		return PowerMethodAC, nil
	default:
		return 0, &errors.ParseError{Type: "PowerMethod", Value: s}
	}
}

// String returns the canonical string representation of the PowerMethod,
// "DC" or "AC". Invalid values yield "unknown".
func (p PowerMethod) String() string {
	switch p {
	case PowerMethodDC:
		return PowerMethodDCStr
	case PowerMethodAC:
		return PowerMethodACStr
	default:
		return "unknown"
	}
}

// Valid reports whether the PowerMethod is one of the defined constants.
func (p PowerMethod) Valid() bool {
	return p == PowerMethodDC || p == PowerMethodAC
}

// TypeName returns "PowerMethod", the name of the type for logging and
// debugging.
func (p PowerMethod) TypeName() string {
	return "PowerMethod"
}

// Redacted returns the same string representation as String().
func (p PowerMethod) Redacted() string {
	return p.String()
}

// IsZero reports whether the PowerMethod has its zero value. The zero value
// is not a valid power method.
func (p PowerMethod) IsZero() bool {
	return p == 0
}

// Equal reports whether this PowerMethod is equal to another value.
func (p PowerMethod) Equal(other any) bool {
	switch v := other.(type) {
	case PowerMethod:
		return p == v
	case *PowerMethod:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate checks whether the PowerMethod is one of the defined constants,
// returning a *ValidationError otherwise.
func (p PowerMethod) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "PowerMethod",
			Reason: "invalid PowerMethod value",
			Value:  int(p),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for PowerMethod.
func (p PowerMethod) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PowerMethod", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for PowerMethod. It accepts the
// canonical string tokens; numeric input is accepted for compatibility.
func (p *PowerMethod) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "PowerMethod", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "PowerMethod", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePowerMethod(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "PowerMethod", Data: data, Reason: err.Error()}
	}
	*p = PowerMethod(i)
	if !p.Valid() {
		return &errors.UnmarshalError{Type: "PowerMethod", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for PowerMethod.
func (p PowerMethod) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PowerMethod", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for PowerMethod.
func (p *PowerMethod) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "PowerMethod", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePowerMethod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for PowerMethod.
func (p PowerMethod) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PowerMethod", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for PowerMethod.
func (p *PowerMethod) UnmarshalText(text []byte) error {
	parsed, err := ParsePowerMethod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that PowerMethod implements model.Model interface.
var _ model.Model = (*PowerMethod)(nil)
