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

// Control describes the digital command control fitment of a powered
// rolling stock: prepared for a decoder, fitted with one, or fitted with a
// sound decoder.
//
// Control is optional on a rolling stock. The zero value means "no decoder
// information recorded", which is distinct from ControlDccReady: a DCC-ready
// model has an empty socket, while a zero Control says nothing at all.
type Control int

const (
	// ControlDccReady identifies a model with a decoder socket but no
	// decoder installed. A DCC-ready model does not count as having a
	// decoder (see RollingStock.WithDecoder).
	ControlDccReady Control = iota + 1

	// ControlDcc identifies a model with a motion decoder installed.
	ControlDcc

	// ControlDccSound identifies a model with a sound decoder installed.
	ControlDccSound
)

// String constants for Control values used in serialization, parsing, and
// human-facing output.
const (
	ControlDccReadyStr = "DCC_READY"
	ControlDccStr      = "DCC"
	ControlDccSoundStr = "DCC_SOUND"
)

// ParseControl converts a textual representation into a Control value.
//
// The vocabulary is closed and case-sensitive:
//
//	"DCC_READY" -> ControlDccReady
//	"DCC"       -> ControlDcc
//	"DCC_SOUND" -> ControlDccSound
//
// Empty input yields a *BlankValueError; any other unrecognized input yields
// a *ParseError. Callers handling optional document fields MUST therefore
// test for field absence themselves before calling ParseControl; a present
// but empty value is an error, not a default.
func ParseControl(s string) (Control, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "Control"}
	}
	switch s {
	case ControlDccReadyStr:
		return ControlDccReady, nil
	case ControlDccStr:
		return ControlDcc, nil
	case ControlDccSoundStr:
		return ControlDccSound, nil
	default:
		return 0, &errors.ParseError{Type: "Control", Value: s}
	}
}

// String returns the canonical string representation of the Control value.
// Invalid values yield "unknown".
func (c Control) String() string {
	switch c {
	case ControlDccReady:
		return ControlDccReadyStr
	case ControlDcc:
		return ControlDccStr
	case ControlDccSound:
		return ControlDccSoundStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Control value is one of the defined constants.
func (c Control) Valid() bool {
	return c >= ControlDccReady && c <= ControlDccSound
}

// TypeName returns "Control", the name of the type for logging and
// debugging.
func (c Control) TypeName() string {
	return "Control"
}

// Redacted returns the same string representation as String().
func (c Control) Redacted() string {
	return c.String()
}

// IsZero reports whether the Control has its zero value. A zero Control
// means no decoder information was recorded for the rolling stock; it is
// a legitimate state for unpowered stock and incomplete records.
func (c Control) IsZero() bool {
	return c == 0
}

// Equal reports whether this Control is equal to another value.
func (c Control) Equal(other any) bool {
	switch v := other.(type) {
	case Control:
		return c == v
	case *Control:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate checks whether the Control value is one of the defined
// constants, returning a *ValidationError otherwise.
func (c Control) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Control",
			Reason: "invalid Control value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Control.
func (c Control) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Control", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Control. It accepts the
// canonical string tokens; numeric input is accepted for compatibility.
func (c *Control) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Control", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Control", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseControl(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Control", Data: data, Reason: err.Error()}
	}
	*c = Control(i)
	if !c.Valid() {
		return &errors.UnmarshalError{Type: "Control", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Control.
func (c Control) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Control", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Control.
func (c *Control) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Control", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseControl(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Control.
func (c Control) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Control", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Control.
func (c *Control) UnmarshalText(text []byte) error {
	parsed, err := ParseControl(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Compile-time check that Control implements model.Model interface.
var _ model.Model = (*Control)(nil)
