package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckInResult is computed per verification and never stored on its own.
type CheckInResult struct {
	DistanceM    float64 `json:"distance_m"`
	RadiusM      float64 `json:"radius_m"`
	WithinRadius bool    `json:"within_radius"`
}

func NewCheckInResult(distanceM, radiusM float64) CheckInResult {
	return CheckInResult{
		DistanceM:    distanceM,
		RadiusM:      radiusM,
		WithinRadius: distanceM <= radiusM,
	}
}

// Shortfall is how far outside the radius the user stands, 0 when inside.
func (r CheckInResult) Shortfall() float64 {
	if r.WithinRadius {
		return 0
	}
	return r.DistanceM - r.RadiusM
}

// ActiveCheckIn is the single "currently checked-in event" of a user.
type ActiveCheckIn struct {
	UserID      uuid.UUID `json:"user_id"`
	EventID     uuid.UUID `json:"event_id"`
	EventName   string    `json:"event_name"`
	Location    string    `json:"location"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// CheckIn is the durable record of a successful verification.
type CheckIn struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	EventID     uuid.UUID `json:"event_id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	DistanceM   float64   `json:"distance_m"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

type CheckInRequest struct {
	UserID            string   `json:"user_id" validate:"required,uuid"`
	EventID           string   `json:"event_id" validate:"required,uuid"`
	Lat               *float64 `json:"lat" validate:"required_without=UseDeviceLocation,omitempty,lat"`
	Lng               *float64 `json:"lng" validate:"required_without=UseDeviceLocation,omitempty,lng"`
	UseDeviceLocation bool     `json:"use_device_location"`
}

type CheckInResponse struct {
	EventID          string         `json:"event_id"`
	EventName        string         `json:"event_name"`
	Location         string         `json:"location"`
	AlreadyCheckedIn bool           `json:"already_checked_in"`
	Result           *CheckInResult `json:"result,omitempty"`
	CheckedInAt      time.Time      `json:"checked_in_at"`
}
