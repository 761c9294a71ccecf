package domain

import "time"

// PrincipalKind discriminates the two account variants.
type PrincipalKind string

const (
	KindUser    PrincipalKind = "user"
	KindCaptain PrincipalKind = "captain"
)

// Captain availability states.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// VehicleType enumerates the vehicle classes a captain may register.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleAuto       VehicleType = "auto"
)

// Fullname is the display name structure shared by users and captains.
type Fullname struct {
	Firstname string `json:"firstname" bson:"firstname"`
	Lastname  string `json:"lastname,omitempty" bson:"lastname,omitempty"`
}

// Vehicle holds the attributes a captain drives under.
type Vehicle struct {
	Color    string      `json:"color" bson:"color"`
	Plate    string      `json:"plate" bson:"plate"`
	Capacity int         `json:"capacity" bson:"capacity"`
	Type     VehicleType `json:"vehicleType" bson:"vehicle_type"`
}

// Principal is an authenticated identity: a rider (user) or a driver
// (captain). The two variants share one record; Vehicle and Status are only
// populated for captains. PasswordHash never serialises to JSON and is
// excluded from default read projections at the repository level.
type Principal struct {
	ID           string        `json:"id"`
	Kind         PrincipalKind `json:"-"`
	Fullname     Fullname      `json:"fullname"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	SocketID     string        `json:"socketId,omitempty"`
	Status       string        `json:"status,omitempty"`
	Vehicle      *Vehicle      `json:"vehicle,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
