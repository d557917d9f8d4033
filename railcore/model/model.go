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

// Package model defines the core contracts that railists domain types MUST
// implement to ensure consistency, type safety, and proper behavior across
// the entire system.
//
// Every domain type representing catalog or collecting entities (such as
// Epoch, Control, Price, CatalogItem) SHOULD implement the Model interface
// or its constituent parts (Validatable, Serializable, Loggable,
// Identifiable, ZeroCheckable). These interfaces establish a common contract
// for validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states cannot be constructed or persisted.
// Serialization provides round-trip guarantees for documents loaded from
// and written to YAML and JSON. Loggable provides safe string
// representations; Identifiable enables structured logging; ZeroCheckable
// supports optional field detection.
//
// Unless explicitly documented otherwise, implementations are immutable
// value types and naturally safe for concurrent read access. Callers MUST
// synchronize any concurrent writes to mutable instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, FromJSON, and FromYAML.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for railists domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model SHOULD NOT mutate the receiver unless explicitly documented.
//
// Example implementation sketch:
//
//	type MyValue struct {
//	    Field string
//	}
//
//	func (m MyValue) Validate() error   { ... }
//	func (m MyValue) TypeName() string  { return "MyValue" }
//	func (m MyValue) IsZero() bool      { return m.Field == "" }
//	func (m MyValue) Redacted() string  { return m.String() }
//	func (m MyValue) String() string    { return m.Field }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyValue)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency, recursively validate any nested values by calling their
// Validate methods, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose and fix the problem; prefer
// specific messages like "Locomotive.ClassName must not be empty" over
// generic ones.
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state.
//
// Callers SHOULD invoke Validate at critical boundaries: immediately after
// unmarshaling data from JSON or YAML, after constructing instances from
// user input, and at any API boundary where data crosses trust boundaries.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats.
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized, and after unmarshaling to ensure that
// deserialized data meets all invariants. A value serialized and then
// deserialized MUST equal the original value, for both formats.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not safe for concurrent
// use; callers MUST ensure exclusive access during unmarshaling.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. Railway collection data carries no secrets, so for most types
// Redacted is identical to String; types embedding personal data (shop
// names, purchase prices) MAY choose to mask them.
//
// The String method returns a complete human-readable representation. Both
// methods MUST be fast, MUST NOT mutate the receiver, and MUST be safe to
// call concurrently.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type,
// unique within the railists domain, in CamelCase (for example, "Epoch",
// "CatalogItem", "WishList"), and without a package prefix. Type names are
// used in error messages, structured logging, and reflection-based code.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection: a
// rolling stock's zero Control means "no decoder information recorded", not
// an invalid value.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. It MUST be fast, deterministic, and free of side effects.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and
// consistent. Equal SHOULD compare all semantically significant fields;
// types with documented identity semantics (for example, CatalogItem, whose
// identity is brand plus item number) compare only those.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional but recommended for mutable types
// or types containing references to shared data structures.
//
// The Clone method MUST create a deep copy: the returned instance shares no
// references with the original, and modifying the clone MUST NOT affect the
// original. The cloned instance MUST be valid if the original is valid.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
