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

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"railists.dev/railists/railcore/errors"
	"railists.dev/railists/railcore/model"
)

// Scale is a modelling scale: a short name ("H0", "N"), the reduction
// ratio expressed by its denominator (87 for 1:87), an optional track
// gauge in millimetres, and a TrackGauge classification.
//
// Scale identity is the name alone: two scales with the same name compare
// equal even when their ratio or gauge differ. The ratio and gauge are
// descriptive attributes, not part of the identity.
type Scale struct {
	name       string
	ratio      decimal.Decimal
	gauge      decimal.Decimal
	gaugeSet   bool
	trackGauge TrackGauge
}

// NewScale builds a Scale without gauge information. The name MUST be
// non-empty, the ratio denominator strictly positive and the track gauge a
// defined constant.
func NewScale(name string, ratio decimal.Decimal, trackGauge TrackGauge) (Scale, error) {
	if name == "" {
		return Scale{}, &errors.BlankValueError{Type: "Scale"}
	}
	if !ratio.IsPositive() {
		return Scale{}, &errors.ValidationError{
			Type:   "Scale",
			Field:  "Ratio",
			Reason: "ratio must be positive",
			Value:  ratio.String(),
		}
	}
	if err := trackGauge.Validate(); err != nil {
		return Scale{}, err
	}
	return Scale{name: name, ratio: ratio, trackGauge: trackGauge}, nil
}

// NewScaleWithGauge builds a Scale carrying a track gauge measurement in
// millimetres, which MUST be strictly positive.
func NewScaleWithGauge(name string, ratio, gaugeMillimetres decimal.Decimal, trackGauge TrackGauge) (Scale, error) {
	s, err := NewScale(name, ratio, trackGauge)
	if err != nil {
		return Scale{}, err
	}
	if !gaugeMillimetres.IsPositive() {
		return Scale{}, &errors.ValidationError{
			Type:   "Scale",
			Field:  "Gauge",
			Reason: "gauge must be positive",
			Value:  gaugeMillimetres.String(),
		}
	}
	s.gauge = gaugeMillimetres
	s.gaugeSet = true
	return s, nil
}

// ScaleH0 returns the predefined half-zero scale: 1:87, 16.5 mm gauge.
func ScaleH0() Scale {
	return Scale{
		name:       "H0",
		ratio:      decimal.New(87, 0),
		gauge:      decimal.New(165, -1),
		gaugeSet:   true,
		trackGauge: TrackGaugeStandard,
	}
}

// ScaleN returns the predefined N scale: 1:160, 9 mm gauge.
func ScaleN() Scale {
	return Scale{
		name:       "N",
		ratio:      decimal.New(160, 0),
		gauge:      decimal.New(9, 0),
		gaugeSet:   true,
		trackGauge: TrackGaugeStandard,
	}
}

// ScaleFromName resolves a predefined scale by name, case-insensitively.
// It reports false for names without a predefined scale.
func ScaleFromName(name string) (Scale, bool) {
	switch strings.ToUpper(name) {
	case "H0":
		return ScaleH0(), true
	case "N":
		return ScaleN(), true
	default:
		return Scale{}, false
	}
}

// Name returns the scale name.
func (s Scale) Name() string {
	return s.name
}

// Ratio returns the denominator of the reduction ratio.
func (s Scale) Ratio() decimal.Decimal {
	return s.ratio
}

// Gauge returns the track gauge in millimetres and whether one was
// recorded.
func (s Scale) Gauge() (decimal.Decimal, bool) {
	return s.gauge, s.gaugeSet
}

// TrackGaugeType returns the track gauge classification.
func (s Scale) TrackGaugeType() TrackGauge {
	return s.trackGauge
}

// String renders the scale as "<name> (1:<ratio>)", for example
// "H0 (1:87)".
func (s Scale) String() string {
	if s.name == "" {
		return ""
	}
	return s.name + " (1:" + s.ratio.String() + ")"
}

// Valid reports whether the scale has a name, a positive ratio and a valid
// track gauge classification.
func (s Scale) Valid() bool {
	if s.name == "" || !s.ratio.IsPositive() || !s.trackGauge.Valid() {
		return false
	}
	if s.gaugeSet && !s.gauge.IsPositive() {
		return false
	}
	return true
}

// TypeName returns "Scale", the name of the type for logging and debugging.
func (s Scale) TypeName() string {
	return "Scale"
}

// Redacted returns the same string representation as String().
func (s Scale) Redacted() string {
	return s.String()
}

// IsZero reports whether the Scale is empty.
func (s Scale) IsZero() bool {
	return s.name == ""
}

// Equal reports whether this Scale is equal to another value. Two scales
// are equal when their names match; ratio and gauge are ignored.
func (s Scale) Equal(other any) bool {
	switch v := other.(type) {
	case Scale:
		return s.name == v.name
	case *Scale:
		if v == nil {
			return false
		}
		return s.name == v.name
	default:
		return false
	}
}

// Validate checks the scale invariants, returning a *ValidationError on
// violation.
func (s Scale) Validate() error {
	if s.name == "" {
		return &errors.ValidationError{
			Type:   "Scale",
			Field:  "Name",
			Reason: "scale name must not be empty",
		}
	}
	if !s.ratio.IsPositive() {
		return &errors.ValidationError{
			Type:   "Scale",
			Field:  "Ratio",
			Reason: "ratio must be positive",
			Value:  s.ratio.String(),
		}
	}
	if s.gaugeSet && !s.gauge.IsPositive() {
		return &errors.ValidationError{
			Type:   "Scale",
			Field:  "Gauge",
			Reason: "gauge must be positive",
			Value:  s.gauge.String(),
		}
	}
	return s.trackGauge.Validate()
}

// scaleDoc is the serialized shape of a Scale. Decimals travel as strings
// to keep their precision intact across encoders.
type scaleDoc struct {
	Name       string     `json:"name" yaml:"name"`
	Ratio      string     `json:"ratio" yaml:"ratio"`
	Gauge      string     `json:"gauge,omitempty" yaml:"gauge,omitempty"`
	TrackGauge TrackGauge `json:"trackGauge" yaml:"trackGauge"`
}

func (s Scale) toDoc() scaleDoc {
	doc := scaleDoc{
		Name:       s.name,
		Ratio:      s.ratio.String(),
		TrackGauge: s.trackGauge,
	}
	if s.gaugeSet {
		doc.Gauge = s.gauge.String()
	}
	return doc
}

func (s *Scale) fromDoc(doc scaleDoc) error {
	ratio, err := decimal.NewFromString(doc.Ratio)
	if err != nil {
		return &errors.ParseError{Type: "Scale", Value: doc.Ratio}
	}
	if doc.Gauge == "" {
		parsed, err := NewScale(doc.Name, ratio, doc.TrackGauge)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	gauge, err := decimal.NewFromString(doc.Gauge)
	if err != nil {
		return &errors.ParseError{Type: "Scale", Value: doc.Gauge}
	}
	parsed, err := NewScaleWithGauge(doc.Name, ratio, gauge, doc.TrackGauge)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for Scale.
func (s Scale) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Scale"}
	}
	return json.Marshal(s.toDoc())
}

// UnmarshalJSON implements json.Unmarshaler for Scale.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var doc scaleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.UnmarshalError{Type: "Scale", Data: data, Reason: err.Error()}
	}
	return s.fromDoc(doc)
}

// MarshalYAML implements yaml.Marshaler for Scale.
func (s Scale) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Scale"}
	}
	return s.toDoc(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Scale.
func (s *Scale) UnmarshalYAML(node *yaml.Node) error {
	var doc scaleDoc
	if err := node.Decode(&doc); err != nil {
		return &errors.UnmarshalError{Type: "Scale", Data: []byte(node.Value), Reason: err.Error()}
	}
	return s.fromDoc(doc)
}

// Compile-time check that Scale implements model.Model interface.
var _ model.Model = (*Scale)(nil)
