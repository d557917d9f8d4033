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

// DccInterface identifies the physical decoder socket standard fitted to a
// powered rolling stock, following the NEM / NMRA connector families.
//
// Like Control, DccInterface is optional: the zero value means no socket
// information was recorded.
type DccInterface int

const (
	// DccInterfaceNem651 identifies the 6-pin NEM 651 socket.
	DccInterfaceNem651 DccInterface = iota + 1

	// DccInterfaceNem652 identifies the 8-pin NEM 652 socket.
	DccInterfaceNem652

	// DccInterfacePlux8 identifies the PluX8 socket.
	DccInterfacePlux8

	// DccInterfacePlux16 identifies the PluX16 socket.
	DccInterfacePlux16

	// DccInterfacePlux22 identifies the PluX22 socket.
	DccInterfacePlux22

	// DccInterfaceNext18 identifies the Next18 socket.
	DccInterfaceNext18

	// DccInterfaceMtc21 identifies the 21-pin MTC socket.
	DccInterfaceMtc21
)

// String constants for DccInterface values used in serialization, parsing,
// and human-facing output.
const (
	DccInterfaceNem651Str = "NEM_651"
	DccInterfaceNem652Str = "NEM_652"
	DccInterfacePlux8Str  = "PLUX_8"
	DccInterfacePlux16Str = "PLUX_16"
	DccInterfacePlux22Str = "PLUX_22"
	DccInterfaceNext18Str = "NEXT_18"
	DccInterfaceMtc21Str  = "MTC_21"
)

// ParseDccInterface converts a textual representation into a DccInterface
// value.
//
// The vocabulary is closed and case-sensitive. Empty input yields a
// *BlankValueError; any other unrecognized input yields a *ParseError.
func ParseDccInterface(s string) (DccInterface, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "DccInterface"}
	}
	switch s {
	case DccInterfaceNem651Str:
		return DccInterfaceNem651, nil
	case DccInterfaceNem652Str:
		return DccInterfaceNem652, nil
	case DccInterfacePlux8Str:
		return DccInterfacePlux8, nil
	case DccInterfacePlux16Str:
		return DccInterfacePlux16, nil
	case DccInterfacePlux22Str:
		return DccInterfacePlux22, nil
	case DccInterfaceNext18Str:
		return DccInterfaceNext18, nil
	case DccInterfaceMtc21Str:
		return DccInterfaceMtc21, nil
	default:
		return 0, &errors.ParseError{Type: "DccInterface", Value: s}
	}
}

// String returns the canonical string representation of the DccInterface.
// Invalid values yield "unknown".
func (d DccInterface) String() string {
	switch d {
	case DccInterfaceNem651:
		return DccInterfaceNem651Str
	case DccInterfaceNem652:
		return DccInterfaceNem652Str
	case DccInterfacePlux8:
		return DccInterfacePlux8Str
	case DccInterfacePlux16:
		return DccInterfacePlux16Str
	case DccInterfacePlux22:
		return DccInterfacePlux22Str
	case DccInterfaceNext18:
		return DccInterfaceNext18Str
	case DccInterfaceMtc21:
		return DccInterfaceMtc21Str
	default:
		return "unknown"
	}
}

// Valid reports whether the DccInterface is one of the defined constants.
func (d DccInterface) Valid() bool {
	return d >= DccInterfaceNem651 && d <= DccInterfaceMtc21
}

// TypeName returns "DccInterface", the name of the type for logging and
// debugging.
func (d DccInterface) TypeName() string {
	return "DccInterface"
}

// Redacted returns the same string representation as String().
func (d DccInterface) Redacted() string {
	return d.String()
}

// IsZero reports whether the DccInterface has its zero value, meaning no
// socket information was recorded.
func (d DccInterface) IsZero() bool {
	return d == 0
}

// Equal reports whether this DccInterface is equal to another value.
func (d DccInterface) Equal(other any) bool {
	switch v := other.(type) {
	case DccInterface:
		return d == v
	case *DccInterface:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks whether the DccInterface is one of the defined constants,
// returning a *ValidationError otherwise.
func (d DccInterface) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "DccInterface",
			Reason: "invalid DccInterface value",
			Value:  int(d),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for DccInterface.
func (d DccInterface) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DccInterface", Value: int(d)}
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for DccInterface. It accepts
// the canonical string tokens; numeric input is accepted for compatibility.
func (d *DccInterface) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DccInterface", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "DccInterface", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDccInterface(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "DccInterface", Data: data, Reason: err.Error()}
	}
	*d = DccInterface(i)
	if !d.Valid() {
		return &errors.UnmarshalError{Type: "DccInterface", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for DccInterface.
func (d DccInterface) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DccInterface", Value: int(d)}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for DccInterface.
func (d *DccInterface) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DccInterface", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDccInterface(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for DccInterface.
func (d DccInterface) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DccInterface", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for DccInterface.
func (d *DccInterface) UnmarshalText(text []byte) error {
	parsed, err := ParseDccInterface(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that DccInterface implements model.Model interface.
var _ model.Model = (*DccInterface)(nil)
