package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/quickride/ride-api/internal/api/middleware"
	"github.com/quickride/ride-api/internal/core/domain"
	"github.com/quickride/ride-api/internal/core/ports"
)

func TestCaptainHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (string, *domain.Principal, error) {
			if in.Vehicle == nil || in.Vehicle.Plate != "MH-04-1234" || in.Vehicle.Type != domain.VehicleCar {
				t.Fatalf("vehicle not mapped: %+v", in.Vehicle)
			}
			return "token123", &domain.Principal{
				ID:       "id-2",
				Email:    in.Email,
				Fullname: domain.Fullname{Firstname: in.Firstname},
				Status:   domain.StatusInactive,
				Vehicle:  in.Vehicle,
			}, nil
		},
	}
	h := NewCaptainHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/captains/register",
		`{"fullname":{"firstname":"Max"},"email":"max@b.com","password":"secret1",
		  "vehicle":{"color":"red","plate":"MH-04-1234","capacity":4,"vehicleType":"car"}}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	captain, ok := resp["captain"].(map[string]any)
	if !ok {
		t.Fatalf("expected captain envelope, got %+v", resp)
	}
	vehicle, ok := captain["vehicle"].(map[string]any)
	if !ok || vehicle["plate"] != "MH-04-1234" {
		t.Fatalf("unexpected vehicle payload: %+v", captain["vehicle"])
	}
}

func TestCaptainHandler_Register_VehicleValidation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (string, *domain.Principal, error) {
			t.Fatalf("service must not be called")
			return "", nil, nil
		},
	}
	h := NewCaptainHandler(stub)

	// Bad color length, zero capacity, unknown vehicle type.
	c, _ := newJSONContext(t, http.MethodPost, "/api/captains/register",
		`{"fullname":{"firstname":"Max"},"email":"max@b.com","password":"secret1",
		  "vehicle":{"color":"re","plate":"MH-04-1234","capacity":0,"vehicleType":"boat"}}`)
	err := h.Register(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(ve.Messages), ve.Messages)
	}
}

func TestCaptainHandler_Profile_Envelope(t *testing.T) {
	h := NewCaptainHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/captains/profile", "")
	c.Set(middleware.CaptainKey, &domain.Principal{
		ID:     "id-2",
		Email:  "max@b.com",
		Status: domain.StatusInactive,
	})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	captain, ok := resp["captain"].(map[string]any)
	if !ok || captain["email"] != "max@b.com" {
		t.Fatalf("expected captain envelope, got %+v", resp)
	}
}

func TestCaptainHandler_Logout_RequiresGate(t *testing.T) {
	h := NewCaptainHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/captains/logout", "")
	if err := h.Logout(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
