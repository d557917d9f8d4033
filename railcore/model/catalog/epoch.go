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

// Epoch places a rolling stock in the historical eras of European railway
// modelling, following the NEM 800 classification: epochs I through VI,
// with optional sub-periods (IIa, IIIb, Vm and so on).
//
// An Epoch is either a single period or a combination of exactly two
// distinct periods, written "IV/V", for stock that ran unchanged across an
// era boundary. The two periods of a combination are always stored and
// rendered in lexicographic order, so "V/IV" parses to the same value as
// "IV/V".
type Epoch struct {
	lower string
	upper string
}

// epochPeriods is the closed set of atomic epoch tokens.
var epochPeriods = map[string]bool{
	"I":    true,
	"II":   true,
	"IIa":  true,
	"IIb":  true,
	"III":  true,
	"IIIa": true,
	"IIIb": true,
	"IV":   true,
	"IVa":  true,
	"IVb":  true,
	"V":    true,
	"Va":   true,
	"Vb":   true,
	"Vm":   true,
	"VI":   true,
}

// ParseEpoch converts a textual representation into an Epoch value.
//
// The input is split on "/"; each token MUST be one of the atomic NEM 800
// periods (I, II, IIa, IIb, III, IIIa, IIIb, IV, IVa, IVb, V, Va, Vb, Vm,
// VI). Tokens are matched case-sensitively. A slash form MUST name exactly
// two distinct periods; the pair is sorted before interpretation, so "V/IV"
// normalizes to "IV/V", while "IV/IV" is rejected.
//
// Errors are reported by kind: empty input yields a *BlankValueError, an
// unknown token yields a *ParseError carrying that token, and a slash form
// that does not name exactly two distinct periods yields a
// *ValidationError.
func ParseEpoch(s string) (Epoch, error) {
	if s == "" {
		return Epoch{}, &errors.BlankValueError{Type: "Epoch"}
	}

	tokens := strings.Split(s, "/")
	for _, t := range tokens {
		if !epochPeriods[t] {
			return Epoch{}, &errors.ParseError{Type: "Epoch", Value: t}
		}
	}

	if len(tokens) == 1 {
		return Epoch{lower: tokens[0]}, nil
	}

	sort.Strings(tokens)
	uniq := tokens[:0]
	for i, t := range tokens {
		if i == 0 || t != tokens[i-1] {
			uniq = append(uniq, t)
		}
	}

	if len(uniq) != 2 {
		return Epoch{}, &errors.ValidationError{
			Type:   "Epoch",
			Reason: "a combined epoch must span exactly two distinct periods",
			Value:  s,
		}
	}
	return Epoch{lower: uniq[0], upper: uniq[1]}, nil
}

// Lower returns the first (or only) period of the epoch.
func (e Epoch) Lower() string {
	return e.lower
}

// Upper returns the second period of a combined epoch and whether one is
// present.
func (e Epoch) Upper() (string, bool) {
	return e.upper, e.upper != ""
}

// IsMultiple reports whether the epoch combines two periods.
func (e Epoch) IsMultiple() bool {
	return e.upper != ""
}

// String returns the canonical string representation: the single period, or
// both periods joined with "/" in lexicographic order.
func (e Epoch) String() string {
	if e.upper != "" {
		return e.lower + "/" + e.upper
	}
	return e.lower
}

// Valid reports whether the epoch holds known periods in canonical order.
func (e Epoch) Valid() bool {
	if !epochPeriods[e.lower] {
		return false
	}
	if e.upper == "" {
		return true
	}
	return epochPeriods[e.upper] && e.lower < e.upper
}

// TypeName returns "Epoch", the name of the type for logging and debugging.
func (e Epoch) TypeName() string {
	return "Epoch"
}

// Redacted returns the same string representation as String().
func (e Epoch) Redacted() string {
	return e.String()
}

// IsZero reports whether the Epoch has its zero value, meaning no epoch was
// recorded.
func (e Epoch) IsZero() bool {
	return e.lower == "" && e.upper == ""
}

// Equal reports whether this Epoch is equal to another value. The method
// accepts any type and uses type assertion to check for Epoch or *Epoch.
func (e Epoch) Equal(other any) bool {
	switch v := other.(type) {
	case Epoch:
		return e == v
	case *Epoch:
		if v == nil {
			return false
		}
		return e == *v
	default:
		return false
	}
}

// Validate checks whether the epoch holds known periods in canonical order,
// returning a *ValidationError otherwise. The zero value is invalid; use
// IsZero to detect an absent epoch before validating.
func (e Epoch) Validate() error {
	if !e.Valid() {
		return &errors.ValidationError{
			Type:   "Epoch",
			Reason: "invalid Epoch value",
			Value:  e.lower + "/" + e.upper,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Epoch, serializing the
// canonical textual form.
func (e Epoch) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Epoch"}
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON implements json.Unmarshaler for Epoch.
func (e *Epoch) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Epoch", Data: data, Reason: "empty data"}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Epoch", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseEpoch(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Epoch.
func (e Epoch) MarshalYAML() (any, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Epoch"}
	}
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Epoch. YAML documents
// sometimes carry bare roman numerals that the scanner would not quote, so
// the node is decoded as a string before parsing.
func (e *Epoch) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Epoch", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseEpoch(str)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Epoch.
func (e Epoch) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &errors.MarshalError{Type: "Epoch"}
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Epoch.
func (e *Epoch) UnmarshalText(text []byte) error {
	parsed, err := ParseEpoch(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Compile-time check that Epoch implements model.Model interface.
var _ model.Model = (*Epoch)(nil)
