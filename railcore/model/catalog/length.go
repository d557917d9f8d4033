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
	"strconv"

	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// LengthOverBuffer is the length of a model measured over its buffers, in
// millimetres. The value is strictly positive; the zero value means no
// length was recorded.
type LengthOverBuffer struct {
	millimetres int
}

// NewLengthOverBuffer builds a LengthOverBuffer from a measurement in
// millimetres. Zero or negative lengths yield a *ValidationError.
func NewLengthOverBuffer(millimetres int) (LengthOverBuffer, error) {
	if millimetres <= 0 {
		return LengthOverBuffer{}, &errors.ValidationError{
			Type:   "LengthOverBuffer",
			Reason: "must be positive",
			Value:  millimetres,
		}
	}
	return LengthOverBuffer{millimetres: millimetres}, nil
}

// Millimetres returns the length in millimetres.
func (l LengthOverBuffer) Millimetres() int {
	return l.millimetres
}

// String renders the length as "<n> mm". The zero value renders as the
// empty string.
func (l LengthOverBuffer) String() string {
	if l.millimetres == 0 {
		return ""
	}
	return strconv.Itoa(l.millimetres) + " mm"
}

// Valid reports whether the length is strictly positive.
func (l LengthOverBuffer) Valid() bool {
	return l.millimetres > 0
}

// TypeName returns "LengthOverBuffer", the name of the type for logging and
// debugging.
func (l LengthOverBuffer) TypeName() string {
	return "LengthOverBuffer"
}

// Redacted returns the same string representation as String().
func (l LengthOverBuffer) Redacted() string {
	return l.String()
}

// IsZero reports whether no length was recorded.
func (l LengthOverBuffer) IsZero() bool {
	return l.millimetres == 0
}

// Equal reports whether this LengthOverBuffer is equal to another value.
func (l LengthOverBuffer) Equal(other any) bool {
	switch v := other.(type) {
	case LengthOverBuffer:
		return l == v
	case *LengthOverBuffer:
		if v == nil {
			return false
		}
		return l == *v
	default:
		return false
	}
}

// Validate checks that the length is strictly positive.
func (l LengthOverBuffer) Validate() error {
	if !l.Valid() {
		return &errors.ValidationError{
			Type:   "LengthOverBuffer",
			Reason: "must be positive",
			Value:  l.millimetres,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for LengthOverBuffer, serializing
// the bare millimetre count.
func (l LengthOverBuffer) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "LengthOverBuffer", Value: l.millimetres}
	}
	return json.Marshal(l.millimetres)
}

// UnmarshalJSON implements json.Unmarshaler for LengthOverBuffer.
func (l *LengthOverBuffer) UnmarshalJSON(data []byte) error {
	var mm int
	if err := json.Unmarshal(data, &mm); err != nil {
		return &errors.UnmarshalError{Type: "LengthOverBuffer", Data: data, Reason: err.Error()}
	}
	parsed, err := NewLengthOverBuffer(mm)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for LengthOverBuffer.
func (l LengthOverBuffer) MarshalYAML() (any, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "LengthOverBuffer", Value: l.millimetres}
	}
	return l.millimetres, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for LengthOverBuffer.
func (l *LengthOverBuffer) UnmarshalYAML(node *yaml.Node) error {
	var mm int
	if err := node.Decode(&mm); err != nil {
		return &errors.UnmarshalError{Type: "LengthOverBuffer", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewLengthOverBuffer(mm)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for LengthOverBuffer.
func (l LengthOverBuffer) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &errors.MarshalError{Type: "LengthOverBuffer", Value: l.millimetres}
	}
	return []byte(strconv.Itoa(l.millimetres)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for LengthOverBuffer.
func (l *LengthOverBuffer) UnmarshalText(text []byte) error {
	mm, err := strconv.Atoi(string(text))
	if err != nil {
		return &errors.UnmarshalError{Type: "LengthOverBuffer", Data: text, Reason: err.Error()}
	}
	parsed, err := NewLengthOverBuffer(mm)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Compile-time check that LengthOverBuffer implements model.Model interface.
var _ model.Model = (*LengthOverBuffer)(nil)
