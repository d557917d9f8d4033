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

package collecting

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// Priority ranks how much the owner wants a wish list item.
//
// An absent priority field defaults to PriorityNormal, but the default
// applies to absence only: a present field holding an empty or unknown
// value is an error, never silently normalized.
type Priority int

const (
	// PriorityHigh marks items to buy as soon as possible.
	PriorityHigh Priority = iota + 1

	// PriorityNormal is the default ranking.
	PriorityNormal

	// PriorityLow marks items that can wait.
	PriorityLow
)

// String constants for Priority values used in serialization, parsing, and
// human-facing output.
const (
	PriorityHighStr   = "HIGH"
	PriorityNormalStr = "NORMAL"
	PriorityLowStr    = "LOW"
)

// ParsePriority converts a textual representation into a Priority.
//
// The vocabulary is closed and case-sensitive: "HIGH", "NORMAL", "LOW".
// Empty input yields a *BlankValueError; any other unrecognized input
// yields a *ParseError.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "Priority"}
	}
	switch s {
	case PriorityHighStr:
		return PriorityHigh, nil
	case PriorityNormalStr:
		return PriorityNormal, nil
	case PriorityLowStr:
		return PriorityLow, nil
	default:
		return 0, &errors.ParseError{Type: "Priority", Value: s}
	}
}

// String returns the canonical string representation of the Priority.
// Invalid values yield "unknown".
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return PriorityHighStr
	case PriorityNormal:
		return PriorityNormalStr
	case PriorityLow:
		return PriorityLowStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Priority is one of the defined constants.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// TypeName returns "Priority", the name of the type for logging and
// debugging.
func (p Priority) TypeName() string {
	return "Priority"
}

// Redacted returns the same string representation as String().
func (p Priority) Redacted() string {
	return p.String()
}

// IsZero reports whether the Priority has its zero value, meaning none was
// set.
func (p Priority) IsZero() bool {
	return p == 0
}

// Equal reports whether this Priority is equal to another value.
func (p Priority) Equal(other any) bool {
	switch v := other.(type) {
	case Priority:
		return p == v
	case *Priority:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate checks whether the Priority is one of the defined constants,
// returning a *ValidationError otherwise.
func (p Priority) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "Priority",
			Reason: "invalid Priority value",
			Value:  int(p),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Priority.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Priority", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Priority. It accepts the
// canonical string tokens; numeric input is accepted for compatibility.
func (p *Priority) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Priority", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Priority", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePriority(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Priority", Data: data, Reason: err.Error()}
	}
	*p = Priority(i)
	if !p.Valid() {
		return &errors.UnmarshalError{Type: "Priority", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Priority.
func (p Priority) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Priority", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Priority.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Priority", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePriority(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Priority.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Priority", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Priority.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that Priority implements model.Model interface.
var _ model.Model = (*Priority)(nil)
