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

// Package errors provides reusable error types for railists domain value
// types.
//
// This package defines the common error types used across the catalog and
// collecting packages when parsing, marshaling and unmarshaling strongly
// typed values (epochs, service levels, power methods, prices, and so on).
// By centralizing these types, the package eliminates code duplication and
// provides a consistent error handling story across the entire domain
// surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in diagnostics.
//
// # Error Types
//
//   - BlankValueError
//     Returned when a required textual field is empty. Parsers check for
//     blank input before any format-specific validation, so an empty epoch
//     or service level is always reported as blank, never as an unknown
//     token.
//
//   - ParseError
//     Returned when parsing a string into a domain value fails because the
//     input is outside the closed vocabulary. Use this when implementing
//     ParseXxx helpers that accept textual input (for example, from YAML
//     documents or CLI flags).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails. Use this
//     in MarshalJSON / MarshalText implementations to reject values that do
//     not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a domain type fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails. Use this in
//     Validate() methods to report constraint violations, missing required
//     fields, or invalid field values (for example, a zero length over
//     buffer or a catalog item without rolling stocks).
//
// # Usage
//
// Each package that defines domain value types uses these error types
// directly:
//
//	import "railists.dev/railists/railcore/errors"
//
//	func ParseControl(s string) (Control, error) {
//	    if s == "" {
//	        return 0, &errors.BlankValueError{Type: "Control"}
//	    }
//	    switch s {
//	    case "DCC":
//	        return ControlDcc, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Control", Value: s}
//	    }
//	}
package errors

import "strconv"

// BlankValueError is returned when a required textual field is empty.
//
// Type identifies the logical type being parsed (for example, "Epoch",
// "ServiceLevel", "Price"). Blank input is always a distinct error case,
// checked before any vocabulary or format validation, so that callers can
// tell "field left empty" apart from "field holds garbage".
type BlankValueError struct {
	// Type is the logical name of the type being parsed.
	Type string
}

// Error implements the error interface for BlankValueError.
//
// The error message format is:
//
//	"railists: {Type} value cannot be blank"
//
// For example:
//
//	"railists: Epoch value cannot be blank"
func (e *BlankValueError) Error() string {
	return "railists: " + e.Type + " value cannot be blank"
}

// ParseError is returned when parsing a string into a strongly typed domain
// value fails.
//
// Type identifies the logical type being parsed (for example, "Epoch",
// "Control", "DccInterface"), and Value contains the exact string that could
// not be interpreted. Callers MAY pattern-match on Type to provide
// type-specific guidance to users or to translate errors into friendlier
// messages.
//
// # Example
//
//	func ParsePowerMethod(s string) (PowerMethod, error) {
//	    switch s {
//	    case "DC":
//	        return PowerMethodDC, nil
//	    case "AC":
//	        return PowerMethodAC, nil
//	    default:
//	        // Returned error will format as:
//	        // "railists: invalid PowerMethod value: <value>"
//	        return 0, &errors.ParseError{
//	            Type:  "PowerMethod",
//	            Value: s,
//	        }
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Epoch").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"railists: invalid {Type} value: {Value}"
//
// For example:
//
//	"railists: invalid Control value: DCC_MAYBE"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "railists: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Epoch"),
// and Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid
// enum-like values from being silently emitted into JSON, YAML or other
// serialized forms. In most cases a MarshalError indicates a programming
// error (for example, a zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"railists: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "railists: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example, "Epoch"),
// Data contains the original raw payload (typically a JSON or YAML
// fragment), and Reason provides a human-readable description of what went
// wrong (for example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics so that
// users can understand why their document could not be interpreted. Callers
// MAY wrap UnmarshalError with additional context when propagating it
// further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on size
	// considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"railists: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose output; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "railists: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "CatalogItem", "LengthOverBuffer"), Field optionally identifies
// which field failed validation, Reason provides a human-readable
// explanation of the validation failure, and Value optionally contains the
// problematic value that failed validation.
//
// # Example
//
//	func (l LengthOverBuffer) Validate() error {
//	    if l.millimetres <= 0 {
//	        return &errors.ValidationError{
//	            Type:   "LengthOverBuffer",
//	            Reason: "must be positive",
//	            Value:  l.millimetres,
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"railists: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"railists: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"railists: invalid CatalogItem.RollingStocks: at least one rolling stock is required"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "railists: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "railists: invalid " + e.Type + ": " + e.Reason
}
