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

import "railists.dev/railists/railcore/errors"

// Sub-category enums refine the four top-level categories. They are plain
// closed vocabularies: parse, render, validate. Unlike the primary value
// types they do not carry a full serialization surface; documents always
// spell them as their uppercase tokens.

// LocomotiveType refines CategoryLocomotives by traction.
type LocomotiveType int

const (
	LocomotiveTypeElectric LocomotiveType = iota + 1
	LocomotiveTypeDiesel
	LocomotiveTypeSteam
)

// ParseLocomotiveType converts a textual representation into a
// LocomotiveType. Empty input yields a *BlankValueError; unrecognized input
// yields a *ParseError.
func ParseLocomotiveType(s string) (LocomotiveType, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "LocomotiveType"}
	}
	switch s {
	case "ELECTRIC_LOCOMOTIVE":
		return LocomotiveTypeElectric, nil
	case "DIESEL_LOCOMOTIVE":
		return LocomotiveTypeDiesel, nil
	case "STEAM_LOCOMOTIVE":
		return LocomotiveTypeSteam, nil
	default:
		return 0, &errors.ParseError{Type: "LocomotiveType", Value: s}
	}
}

func (t LocomotiveType) String() string {
	switch t {
	case LocomotiveTypeElectric:
		return "ELECTRIC_LOCOMOTIVE"
	case LocomotiveTypeDiesel:
		return "DIESEL_LOCOMOTIVE"
	case LocomotiveTypeSteam:
		return "STEAM_LOCOMOTIVE"
	default:
		return "unknown"
	}
}

// Valid reports whether the LocomotiveType is a defined constant.
func (t LocomotiveType) Valid() bool {
	return t >= LocomotiveTypeElectric && t <= LocomotiveTypeSteam
}

// IsZero reports whether the LocomotiveType was never set.
func (t LocomotiveType) IsZero() bool {
	return t == 0
}

// Validate returns a *ValidationError when the value is not a defined
// constant.
func (t LocomotiveType) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "LocomotiveType",
			Reason: "invalid LocomotiveType value",
			Value:  int(t),
		}
	}
	return nil
}

// TrainType refines CategoryTrains by the kind of set.
type TrainType int

const (
	TrainTypeElectricMultipleUnits TrainType = iota + 1
	TrainTypeDieselMultipleUnits
	TrainTypeHighSpeedTrain
)

// ParseTrainType converts a textual representation into a TrainType. Empty
// input yields a *BlankValueError; unrecognized input yields a *ParseError.
func ParseTrainType(s string) (TrainType, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "TrainType"}
	}
	switch s {
	case "ELECTRIC_MULTIPLE_UNITS":
		return TrainTypeElectricMultipleUnits, nil
	case "DIESEL_MULTIPLE_UNITS":
		return TrainTypeDieselMultipleUnits, nil
	case "HIGH_SPEED_TRAIN":
		return TrainTypeHighSpeedTrain, nil
	default:
		return 0, &errors.ParseError{Type: "TrainType", Value: s}
	}
}

func (t TrainType) String() string {
	switch t {
	case TrainTypeElectricMultipleUnits:
		return "ELECTRIC_MULTIPLE_UNITS"
	case TrainTypeDieselMultipleUnits:
		return "DIESEL_MULTIPLE_UNITS"
	case TrainTypeHighSpeedTrain:
		return "HIGH_SPEED_TRAIN"
	default:
		return "unknown"
	}
}

// Valid reports whether the TrainType is a defined constant.
func (t TrainType) Valid() bool {
	return t >= TrainTypeElectricMultipleUnits && t <= TrainTypeHighSpeedTrain
}

// IsZero reports whether the TrainType was never set.
func (t TrainType) IsZero() bool {
	return t == 0
}

// Validate returns a *ValidationError when the value is not a defined
// constant.
func (t TrainType) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "TrainType",
			Reason: "invalid TrainType value",
			Value:  int(t),
		}
	}
	return nil
}

// PassengerCarType refines CategoryPassengerCars by coach layout.
type PassengerCarType int

const (
	PassengerCarTypeOpenCoach PassengerCarType = iota + 1
	PassengerCarTypeCompartmentCoach
	PassengerCarTypeDiningCar
	PassengerCarTypeSleepingCar
	PassengerCarTypeBaggageCar
	PassengerCarTypeDoubleDecker
	PassengerCarTypeDrivingTrailer
)

// ParsePassengerCarType converts a textual representation into a
// PassengerCarType. Empty input yields a *BlankValueError; unrecognized
// input yields a *ParseError.
func ParsePassengerCarType(s string) (PassengerCarType, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "PassengerCarType"}
	}
	switch s {
	case "OPEN_COACH":
		return PassengerCarTypeOpenCoach, nil
	case "COMPARTMENT_COACH":
		return PassengerCarTypeCompartmentCoach, nil
	case "DINING_CAR":
		return PassengerCarTypeDiningCar, nil
	case "SLEEPING_CAR":
		return PassengerCarTypeSleepingCar, nil
	case "BAGGAGE_CAR":
		return PassengerCarTypeBaggageCar, nil
	case "DOUBLE_DECKER":
		return PassengerCarTypeDoubleDecker, nil
	case "DRIVING_TRAILER":
		return PassengerCarTypeDrivingTrailer, nil
	default:
		return 0, &errors.ParseError{Type: "PassengerCarType", Value: s}
	}
}

func (t PassengerCarType) String() string {
	switch t {
	case PassengerCarTypeOpenCoach:
		return "OPEN_COACH"
	case PassengerCarTypeCompartmentCoach:
		return "COMPARTMENT_COACH"
	case PassengerCarTypeDiningCar:
		return "DINING_CAR"
	case PassengerCarTypeSleepingCar:
		return "SLEEPING_CAR"
	case PassengerCarTypeBaggageCar:
		return "BAGGAGE_CAR"
	case PassengerCarTypeDoubleDecker:
		return "DOUBLE_DECKER"
	case PassengerCarTypeDrivingTrailer:
		return "DRIVING_TRAILER"
	default:
		return "unknown"
	}
}

// Valid reports whether the PassengerCarType is a defined constant.
func (t PassengerCarType) Valid() bool {
	return t >= PassengerCarTypeOpenCoach && t <= PassengerCarTypeDrivingTrailer
}

// IsZero reports whether the PassengerCarType was never set.
func (t PassengerCarType) IsZero() bool {
	return t == 0
}

// Validate returns a *ValidationError when the value is not a defined
// constant.
func (t PassengerCarType) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "PassengerCarType",
			Reason: "invalid PassengerCarType value",
			Value:  int(t),
		}
	}
	return nil
}

// FreightCarType refines CategoryFreightCars by wagon construction.
type FreightCarType int

const (
	FreightCarTypeSwingRoofWagon FreightCarType = iota + 1
	FreightCarTypeGondola
	FreightCarTypeTankWagon
	FreightCarTypeCoveredFreightCar
	FreightCarTypeFlatWagon
	FreightCarTypeSlidingWallBoxcar
)

// ParseFreightCarType converts a textual representation into a
// FreightCarType. Empty input yields a *BlankValueError; unrecognized input
// yields a *ParseError.
func ParseFreightCarType(s string) (FreightCarType, error) {
	if s == "" {
		return 0, &errors.BlankValueError{Type: "FreightCarType"}
	}
	switch s {
	case "SWING_ROOF_WAGON":
		return FreightCarTypeSwingRoofWagon, nil
	case "GONDOLA":
		return FreightCarTypeGondola, nil
	case "TANK_WAGON":
		return FreightCarTypeTankWagon, nil
	case "COVERED_FREIGHT_CAR":
		return FreightCarTypeCoveredFreightCar, nil
	case "FLAT_WAGON":
		return FreightCarTypeFlatWagon, nil
	case "SLIDING_WALL_BOXCAR":
		return FreightCarTypeSlidingWallBoxcar, nil
	default:
		return 0, &errors.ParseError{Type: "FreightCarType", Value: s}
	}
}

func (t FreightCarType) String() string {
	switch t {
	case FreightCarTypeSwingRoofWagon:
		return "SWING_ROOF_WAGON"
	case FreightCarTypeGondola:
		return "GONDOLA"
	case FreightCarTypeTankWagon:
		return "TANK_WAGON"
	case FreightCarTypeCoveredFreightCar:
		return "COVERED_FREIGHT_CAR"
	case FreightCarTypeFlatWagon:
		return "FLAT_WAGON"
	case FreightCarTypeSlidingWallBoxcar:
		return "SLIDING_WALL_BOXCAR"
	default:
		return "unknown"
	}
}

// Valid reports whether the FreightCarType is a defined constant.
func (t FreightCarType) Valid() bool {
	return t >= FreightCarTypeSwingRoofWagon && t <= FreightCarTypeSlidingWallBoxcar
}

// IsZero reports whether the FreightCarType was never set.
func (t FreightCarType) IsZero() bool {
	return t == 0
}

// Validate returns a *ValidationError when the value is not a defined
// constant.
func (t FreightCarType) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "FreightCarType",
			Reason: "invalid FreightCarType value",
			Value:  int(t),
		}
	}
	return nil
}
