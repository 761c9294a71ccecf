package handler

import "github.com/quickride/ride-api/internal/core/domain"

// Validation rules mirror the platform's long-standing registration contract:
// firstname >= 3, email >= 5 and well-formed, password >= 6.

type fullnameRequest struct {
	Firstname string `json:"firstname" validate:"required,min=3"`
	Lastname  string `json:"lastname"  validate:"omitempty,min=3"`
}

type vehicleRequest struct {
	Color       string `json:"color"       validate:"required,min=3"`
	Plate       string `json:"plate"       validate:"required,min=3"`
	Capacity    int    `json:"capacity"    validate:"required,min=1"`
	VehicleType string `json:"vehicleType" validate:"required,oneof=car motorcycle auto"`
}

type registerUserRequest struct {
	Fullname fullnameRequest `json:"fullname" validate:"required"`
	Email    string          `json:"email"    validate:"required,min=5,email"`
	Password string          `json:"password" validate:"required,min=6"`
}

type registerCaptainRequest struct {
	Fullname fullnameRequest `json:"fullname" validate:"required"`
	Email    string          `json:"email"    validate:"required,min=5,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Vehicle  vehicleRequest  `json:"vehicle"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,min=5,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response envelopes. The principal key differs per kind ("user" vs
// "captain"), so each surface carries its own shape.

type userAuthResponse struct {
	Token string            `json:"token"`
	User  *domain.Principal `json:"user"`
}

type captainAuthResponse struct {
	Token   string            `json:"token"`
	Captain *domain.Principal `json:"captain"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []string `json:"errors"`
}
