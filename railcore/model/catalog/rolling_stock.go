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
	"railists.dev/railists/railcore/errors"
)

// RollingStock is one physical element inside a catalog item box: a
// locomotive, a complete train set, a passenger car or a freight car. It is
// a tagged value; the Category selects which fields are meaningful, and the
// per-variant constructors are the only way to build one, so a RollingStock
// in circulation always satisfies its variant's invariants.
//
// Shared attributes (railway, epoch, livery, length, depot) apply to every
// variant. Locomotives are identified by class name; the other variants
// carry a commercial type name. Decoder attributes (control, DCC interface)
// are meaningful only for powered stock, that is locomotives and train
// sets.
type RollingStock struct {
	category Category

	railway Railway
	epoch   Epoch
	livery  string
	length  LengthOverBuffer
	depot   string

	// Locomotive attributes.
	className      string
	roadNumber     string
	series         string
	locomotiveType LocomotiveType

	// Train set attributes.
	typeName     string
	elementCount int
	trainType    TrainType

	// Car attributes.
	passengerCarType PassengerCarType
	freightCarType   FreightCarType
	serviceLevel     ServiceLevel

	// Decoder attributes, powered stock only.
	control      Control
	dccInterface DccInterface
}

// LocomotiveSpec collects the attributes of a locomotive rolling stock.
// ClassName, Railway, Epoch and Type are required; everything else,
// including the road number, is optional and may be left at its zero
// value.
type LocomotiveSpec struct {
	ClassName    string
	RoadNumber   string
	Series       string
	Railway      Railway
	Epoch        Epoch
	Type         LocomotiveType
	Depot        string
	Livery       string
	Length       LengthOverBuffer
	Control      Control
	DccInterface DccInterface
}

// NewLocomotive builds a locomotive rolling stock, rejecting specs that
// miss a class name, railway, epoch or locomotive type.
func NewLocomotive(spec LocomotiveSpec) (RollingStock, error) {
	if spec.ClassName == "" {
		return RollingStock{}, &errors.ValidationError{
			Type: "RollingStock", Field: "ClassName",
			Reason: "locomotive class name must not be empty",
		}
	}
	if err := validateShared(spec.Railway, spec.Epoch); err != nil {
		return RollingStock{}, err
	}
	if err := spec.Type.Validate(); err != nil {
		return RollingStock{}, err
	}
	if err := validateDecoder(spec.Control, spec.DccInterface); err != nil {
		return RollingStock{}, err
	}

	return RollingStock{
		category:       CategoryLocomotives,
		railway:        spec.Railway,
		epoch:          spec.Epoch,
		livery:         spec.Livery,
		length:         spec.Length,
		className:      spec.ClassName,
		roadNumber:     spec.RoadNumber,
		series:         spec.Series,
		depot:          spec.Depot,
		locomotiveType: spec.Type,
		control:        spec.Control,
		dccInterface:   spec.DccInterface,
	}, nil
}

// TrainSpec collects the attributes of a train set rolling stock.
// TypeName, Railway and Epoch are required; ElementCount MUST be at least
// one.
type TrainSpec struct {
	TypeName     string
	RoadNumber   string
	ElementCount int
	Railway      Railway
	Epoch        Epoch
	Type         TrainType
	Depot        string
	Livery       string
	Length       LengthOverBuffer
	Control      Control
	DccInterface DccInterface
}

// NewTrain builds a train set rolling stock.
func NewTrain(spec TrainSpec) (RollingStock, error) {
	if spec.TypeName == "" {
		return RollingStock{}, &errors.ValidationError{
			Type: "RollingStock", Field: "TypeName",
			Reason: "train type name must not be empty",
		}
	}
	if spec.ElementCount < 1 {
		return RollingStock{}, &errors.ValidationError{
			Type: "RollingStock", Field: "ElementCount",
			Reason: "a train set must contain at least one element",
			Value:  spec.ElementCount,
		}
	}
	if err := validateShared(spec.Railway, spec.Epoch); err != nil {
		return RollingStock{}, err
	}
	if !spec.Type.IsZero() {
		if err := spec.Type.Validate(); err != nil {
			return RollingStock{}, err
		}
	}
	if err := validateDecoder(spec.Control, spec.DccInterface); err != nil {
		return RollingStock{}, err
	}

	return RollingStock{
		category:     CategoryTrains,
		railway:      spec.Railway,
		epoch:        spec.Epoch,
		livery:       spec.Livery,
		length:       spec.Length,
		depot:        spec.Depot,
		typeName:     spec.TypeName,
		roadNumber:   spec.RoadNumber,
		elementCount: spec.ElementCount,
		trainType:    spec.Type,
		control:      spec.Control,
		dccInterface: spec.DccInterface,
	}, nil
}

// PassengerCarSpec collects the attributes of a passenger car rolling
// stock. TypeName, Railway and Epoch are required; the car type and service
// level are optional.
type PassengerCarSpec struct {
	TypeName     string
	Railway      Railway
	Epoch        Epoch
	Type         PassengerCarType
	ServiceLevel ServiceLevel
	Depot        string
	Livery       string
	Length       LengthOverBuffer
}

// NewPassengerCar builds a passenger car rolling stock.
func NewPassengerCar(spec PassengerCarSpec) (RollingStock, error) {
	if spec.TypeName == "" {
		return RollingStock{}, &errors.ValidationError{
			Type: "RollingStock", Field: "TypeName",
			Reason: "passenger car type name must not be empty",
		}
	}
	if err := validateShared(spec.Railway, spec.Epoch); err != nil {
		return RollingStock{}, err
	}
	if !spec.Type.IsZero() {
		if err := spec.Type.Validate(); err != nil {
			return RollingStock{}, err
		}
	}
	if !spec.ServiceLevel.IsZero() {
		if err := spec.ServiceLevel.Validate(); err != nil {
			return RollingStock{}, err
		}
	}

	return RollingStock{
		category:         CategoryPassengerCars,
		railway:          spec.Railway,
		epoch:            spec.Epoch,
		livery:           spec.Livery,
		length:           spec.Length,
		depot:            spec.Depot,
		typeName:         spec.TypeName,
		passengerCarType: spec.Type,
		serviceLevel:     spec.ServiceLevel,
	}, nil
}

// FreightCarSpec collects the attributes of a freight car rolling stock.
// TypeName, Railway and Epoch are required; the car type is optional.
type FreightCarSpec struct {
	TypeName string
	Railway  Railway
	Epoch    Epoch
	Type     FreightCarType
	Depot    string
	Livery   string
	Length   LengthOverBuffer
}

// NewFreightCar builds a freight car rolling stock.
func NewFreightCar(spec FreightCarSpec) (RollingStock, error) {
	if spec.TypeName == "" {
		return RollingStock{}, &errors.ValidationError{
			Type: "RollingStock", Field: "TypeName",
			Reason: "freight car type name must not be empty",
		}
	}
	if err := validateShared(spec.Railway, spec.Epoch); err != nil {
		return RollingStock{}, err
	}
	if !spec.Type.IsZero() {
		if err := spec.Type.Validate(); err != nil {
			return RollingStock{}, err
		}
	}

	return RollingStock{
		category:       CategoryFreightCars,
		railway:        spec.Railway,
		epoch:          spec.Epoch,
		livery:         spec.Livery,
		length:         spec.Length,
		depot:          spec.Depot,
		typeName:       spec.TypeName,
		freightCarType: spec.Type,
	}, nil
}

func validateShared(railway Railway, epoch Epoch) error {
	if err := railway.Validate(); err != nil {
		return err
	}
	return epoch.Validate()
}

func validateDecoder(control Control, dcc DccInterface) error {
	if !control.IsZero() {
		if err := control.Validate(); err != nil {
			return err
		}
	}
	if !dcc.IsZero() {
		if err := dcc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Category returns the variant of this rolling stock.
func (r RollingStock) Category() Category {
	return r.category
}

// IsLocomotive reports whether the rolling stock is a locomotive.
func (r RollingStock) IsLocomotive() bool {
	return r.category == CategoryLocomotives
}

// Railway returns the operating railway company.
func (r RollingStock) Railway() Railway {
	return r.railway
}

// Epoch returns the historical epoch.
func (r RollingStock) Epoch() Epoch {
	return r.epoch
}

// Livery returns the paint scheme description; empty when not recorded.
func (r RollingStock) Livery() string {
	return r.livery
}

// Length returns the length over buffers; zero when not recorded.
func (r RollingStock) Length() LengthOverBuffer {
	return r.length
}

// ClassName returns the locomotive class name ("E 656", "BR 120"); empty
// for other variants.
func (r RollingStock) ClassName() string {
	return r.className
}

// RoadNumber returns the individual running number; empty when not
// recorded.
func (r RollingStock) RoadNumber() string {
	return r.roadNumber
}

// Series returns the locomotive series designation; empty when not
// recorded.
func (r RollingStock) Series() string {
	return r.series
}

// Depot returns the home depot; empty when not recorded.
func (r RollingStock) Depot() string {
	return r.depot
}

// Name returns the commercial type name of a train set or car
// ("Corbellini", "ETR 500"); empty for locomotives, which are identified
// by ClassName instead.
func (r RollingStock) Name() string {
	return r.typeName
}

// ElementCount returns the number of elements in a train set; zero for
// other variants.
func (r RollingStock) ElementCount() int {
	return r.elementCount
}

// LocomotiveType returns the traction sub-category; zero for other
// variants.
func (r RollingStock) LocomotiveType() LocomotiveType {
	return r.locomotiveType
}

// TrainType returns the train set sub-category; zero for other variants or
// when not recorded.
func (r RollingStock) TrainType() TrainType {
	return r.trainType
}

// PassengerCarType returns the coach sub-category; zero for other variants
// or when not recorded.
func (r RollingStock) PassengerCarType() PassengerCarType {
	return r.passengerCarType
}

// FreightCarType returns the wagon sub-category; zero for other variants
// or when not recorded.
func (r RollingStock) FreightCarType() FreightCarType {
	return r.freightCarType
}

// ServiceLevel returns the travel classes of a passenger car; zero for
// other variants or when not recorded.
func (r RollingStock) ServiceLevel() ServiceLevel {
	return r.serviceLevel
}

// Control returns the decoder fitment; zero when not recorded.
func (r RollingStock) Control() Control {
	return r.control
}

// DccInterface returns the decoder socket standard; zero when not
// recorded.
func (r RollingStock) DccInterface() DccInterface {
	return r.dccInterface
}

// WithDecoder reports whether a decoder is actually installed: the rolling
// stock is powered (a locomotive or a train set) and its control is set to
// something other than ControlDccReady. A DCC-ready socket alone does not
// count.
func (r RollingStock) WithDecoder() bool {
	if r.category != CategoryLocomotives && r.category != CategoryTrains {
		return false
	}
	return !r.control.IsZero() && r.control != ControlDccReady
}

// String renders a short human-readable summary, such as
// "LOCOMOTIVE E 656 (FS, IV)" or "PASSENGER_CAR Corbellini (FS, IIIb)".
func (r RollingStock) String() string {
	name := r.typeName
	if r.category == CategoryLocomotives {
		name = r.className
		if r.roadNumber != "" {
			name += " " + r.roadNumber
		}
	}
	return r.category.String() + " " + name + " (" + r.railway.Name() + ", " + r.epoch.String() + ")"
}

// Validate checks the variant invariants. Constructed values always pass;
// the method exists for zero values and deserialized data.
func (r RollingStock) Validate() error {
	if err := r.category.Validate(); err != nil {
		return err
	}
	if err := validateShared(r.railway, r.epoch); err != nil {
		return err
	}

	switch r.category {
	case CategoryLocomotives:
		if r.className == "" {
			return &errors.ValidationError{
				Type: "RollingStock", Field: "ClassName",
				Reason: "locomotive class name must not be empty",
			}
		}
		if err := r.locomotiveType.Validate(); err != nil {
			return err
		}
	case CategoryTrains:
		if r.typeName == "" {
			return &errors.ValidationError{
				Type: "RollingStock", Field: "TypeName",
				Reason: "train type name must not be empty",
			}
		}
		if r.elementCount < 1 {
			return &errors.ValidationError{
				Type: "RollingStock", Field: "ElementCount",
				Reason: "a train set must contain at least one element",
				Value:  r.elementCount,
			}
		}
	case CategoryPassengerCars, CategoryFreightCars:
		if r.typeName == "" {
			return &errors.ValidationError{
				Type: "RollingStock", Field: "TypeName",
				Reason: "car type name must not be empty",
			}
		}
	}

	return validateDecoder(r.control, r.dccInterface)
}
