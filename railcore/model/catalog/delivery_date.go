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

// DeliveryDate records when a manufacturer announced a catalog item for
// delivery, at one of two precisions: a bare year ("2021") or a quarter
// within a year ("2021/Q3").
//
// Years are accepted in the inclusive range 1900 to 2999 and quarters in
// 1 to 4. The zero value means no delivery date was announced, which is a
// legitimate state for older catalog items.
type DeliveryDate struct {
	year    int
	quarter int
}

// Year bounds accepted by ParseDeliveryDate and Validate.
const (
	deliveryDateMinYear = 1900
	deliveryDateMaxYear = 2999
)

// NewDeliveryDateByYear builds a DeliveryDate with year precision. The year
// MUST lie in the inclusive range 1900 to 2999.
func NewDeliveryDateByYear(year int) (DeliveryDate, error) {
	if year < deliveryDateMinYear || year > deliveryDateMaxYear {
		return DeliveryDate{}, &errors.ValidationError{
			Type:   "DeliveryDate",
			Field:  "Year",
			Reason: "year must be between 1900 and 2999",
			Value:  year,
		}
	}
	return DeliveryDate{year: year}, nil
}

// NewDeliveryDateByQuarter builds a DeliveryDate with quarter precision.
// The year MUST lie in the inclusive range 1900 to 2999 and the quarter in
// 1 to 4.
func NewDeliveryDateByQuarter(year, quarter int) (DeliveryDate, error) {
	d, err := NewDeliveryDateByYear(year)
	if err != nil {
		return DeliveryDate{}, err
	}
	if quarter < 1 || quarter > 4 {
		return DeliveryDate{}, &errors.ValidationError{
			Type:   "DeliveryDate",
			Field:  "Quarter",
			Reason: "quarter must be between 1 and 4",
			Value:  quarter,
		}
	}
	d.quarter = quarter
	return d, nil
}

// ParseDeliveryDate converts a textual representation into a DeliveryDate.
//
// Two grammars are accepted:
//
//	"YYYY"    -> year precision, for example "2021"
//	"YYYY/Qn" -> quarter precision, for example "2021/Q3"
//
// Empty input yields a *BlankValueError; anything that does not match
// either grammar, or whose year or quarter falls outside the accepted
// ranges, yields a *ParseError carrying the original input.
func ParseDeliveryDate(s string) (DeliveryDate, error) {
	if s == "" {
		return DeliveryDate{}, &errors.BlankValueError{Type: "DeliveryDate"}
	}

	yearPart := s
	quarter := 0
	if i := len(s) - 3; i > 0 && s[i] == '/' && s[i+1] == 'Q' {
		q := int(s[i+2] - '0')
		if q < 1 || q > 4 {
			return DeliveryDate{}, &errors.ParseError{Type: "DeliveryDate", Value: s}
		}
		yearPart = s[:i]
		quarter = q
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil || year < deliveryDateMinYear || year > deliveryDateMaxYear {
		return DeliveryDate{}, &errors.ParseError{Type: "DeliveryDate", Value: s}
	}

	return DeliveryDate{year: year, quarter: quarter}, nil
}

// Year returns the delivery year.
func (d DeliveryDate) Year() int {
	return d.year
}

// Quarter returns the delivery quarter and whether the date has quarter
// precision.
func (d DeliveryDate) Quarter() (int, bool) {
	return d.quarter, d.quarter != 0
}

// String returns the canonical string representation: "YYYY" for year
// precision, "YYYY/Qn" for quarter precision. The zero value renders as the
// empty string.
func (d DeliveryDate) String() string {
	if d.year == 0 {
		return ""
	}
	if d.quarter != 0 {
		return strconv.Itoa(d.year) + "/Q" + strconv.Itoa(d.quarter)
	}
	return strconv.Itoa(d.year)
}

// Valid reports whether the DeliveryDate holds an in-range year and, when
// present, an in-range quarter.
func (d DeliveryDate) Valid() bool {
	if d.year < deliveryDateMinYear || d.year > deliveryDateMaxYear {
		return false
	}
	return d.quarter >= 0 && d.quarter <= 4
}

// TypeName returns "DeliveryDate", the name of the type for logging and
// debugging.
func (d DeliveryDate) TypeName() string {
	return "DeliveryDate"
}

// Redacted returns the same string representation as String().
func (d DeliveryDate) Redacted() string {
	return d.String()
}

// IsZero reports whether the DeliveryDate has its zero value, meaning no
// delivery date was announced.
func (d DeliveryDate) IsZero() bool {
	return d.year == 0 && d.quarter == 0
}

// Equal reports whether this DeliveryDate is equal to another value.
func (d DeliveryDate) Equal(other any) bool {
	switch v := other.(type) {
	case DeliveryDate:
		return d == v
	case *DeliveryDate:
		if v == nil {
			return false
		}
		return d == *v
	default:
		return false
	}
}

// Validate checks the year and quarter ranges, returning a
// *ValidationError on violation. The zero value is invalid; use IsZero to
// detect an absent date before validating.
func (d DeliveryDate) Validate() error {
	if !d.Valid() {
		return &errors.ValidationError{
			Type:   "DeliveryDate",
			Reason: "invalid DeliveryDate value",
			Value:  d.String(),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for DeliveryDate, serializing the
// canonical textual form.
func (d DeliveryDate) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DeliveryDate", Value: d.year}
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for DeliveryDate.
func (d *DeliveryDate) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DeliveryDate", Data: data, Reason: "empty data"}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "DeliveryDate", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseDeliveryDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for DeliveryDate.
func (d DeliveryDate) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DeliveryDate", Value: d.year}
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for DeliveryDate. Bare years
// appear as YAML integers, so the node is decoded as a string first, which
// yaml.v3 permits for scalar nodes of any resolved type.
func (d *DeliveryDate) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DeliveryDate", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDeliveryDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for DeliveryDate.
func (d DeliveryDate) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &errors.MarshalError{Type: "DeliveryDate", Value: d.year}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for DeliveryDate.
func (d *DeliveryDate) UnmarshalText(text []byte) error {
	parsed, err := ParseDeliveryDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Compile-time check that DeliveryDate implements model.Model interface.
var _ model.Model = (*DeliveryDate)(nil)
