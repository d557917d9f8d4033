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

// TrackGauge classifies the track width of a scale relative to the
// prototype standard gauge of 1435 mm.
type TrackGauge int

const (
	// TrackGaugeStandard models the 1435 mm standard gauge.
	TrackGaugeStandard TrackGauge = iota + 1

	// TrackGaugeBroad models gauges wider than standard.
	TrackGaugeBroad

	// TrackGaugeMedium models gauges between narrow and standard.
	TrackGaugeMedium

	// TrackGaugeNarrow models narrow gauges.
	TrackGaugeNarrow
)

// String constants for TrackGauge values.
const (
	TrackGaugeStandardStr = "STANDARD"
	TrackGaugeBroadStr    = "BROAD"
	TrackGaugeMediumStr   = "MEDIUM"
	TrackGaugeNarrowStr   = "NARROW"
)

// ParseTrackGauge converts a textual representation into a TrackGauge.
// Empty input yields a *BlankValueError; unrecognized input yields a
// *ParseError.
func ParseTrackGauge(s string) (TrackGauge, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "TrackGauge"}
	}
	switch s {
	case TrackGaugeStandardStr:
		return TrackGaugeStandard, nil
	case TrackGaugeBroadStr:
		return TrackGaugeBroad, nil
	case TrackGaugeMediumStr:
		return TrackGaugeMedium, nil
	case TrackGaugeNarrowStr:
		return TrackGaugeNarrow, nil
	default:
		return 0, &errors.ParseError{Type: "TrackGauge", Value: s}
	}
}

// String returns the canonical string representation of the TrackGauge.
func (t TrackGauge) String() string {
	switch t {
	case TrackGaugeStandard:
		return TrackGaugeStandardStr
	case TrackGaugeBroad:
		return TrackGaugeBroadStr
	case TrackGaugeMedium:
		return TrackGaugeMediumStr
	case TrackGaugeNarrow:
		return TrackGaugeNarrowStr
	default:
		return "unknown"
	}
}

// Valid reports whether the TrackGauge is one of the defined constants.
func (t TrackGauge) Valid() bool {
	return t >= TrackGaugeStandard && t <= TrackGaugeNarrow
}

// TypeName returns "TrackGauge", the name of the type for logging and
// debugging.
func (t TrackGauge) TypeName() string {
	return "TrackGauge"
}

// Redacted returns the same string representation as String().
func (t TrackGauge) Redacted() string {
	return t.String()
}

// IsZero reports whether the TrackGauge has its zero value.
func (t TrackGauge) IsZero() bool {
	return t == 0
}

// Equal reports whether this TrackGauge is equal to another value.
func (t TrackGauge) Equal(other any) bool {
	switch v := other.(type) {
	case TrackGauge:
		return t == v
	case *TrackGauge:
		if v == nil {
			return false
		}
		return t == *v
	default:
		return false
	}
}

// Validate checks whether the TrackGauge is one of the defined constants.
func (t TrackGauge) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "TrackGauge",
			Reason: "invalid TrackGauge value",
			Value:  int(t),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for TrackGauge.
func (t TrackGauge) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "TrackGauge", Value: int(t)}
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for TrackGauge.
func (t *TrackGauge) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "TrackGauge", Data: data, Reason: "empty data"}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "TrackGauge", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseTrackGauge(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for TrackGauge.
func (t TrackGauge) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "TrackGauge", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for TrackGauge.
func (t *TrackGauge) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "TrackGauge", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseTrackGauge(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TrackGauge.
func (t TrackGauge) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "TrackGauge", Value: int(t)}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TrackGauge.
func (t *TrackGauge) UnmarshalText(text []byte) error {
	parsed, err := ParseTrackGauge(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Compile-time check that TrackGauge implements model.Model interface.
var _ model.Model = (*TrackGauge)(nil)
