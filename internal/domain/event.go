package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventLive     EventStatus = "live"
	EventUpcoming EventStatus = "upcoming"
	EventEnded    EventStatus = "ended"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventLive, EventUpcoming, EventEnded:
		return true
	}
	return false
}

type Event struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Category    string      `json:"category,omitempty"`
	Date        string      `json:"date,omitempty"`
	Time        string      `json:"time,omitempty"`
	Coordinates Coordinate  `json:"coordinates"`
	RadiusM     float64     `json:"radius_m"` // > 0
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (e Event) IsLive() bool { return e.Status == EventLive }

// EventWithDistance is an event as seen from a user's position.
type EventWithDistance struct {
	Event
	DistanceM    *float64 `json:"distance_m,omitempty"`
	WithinRadius bool     `json:"within_radius"`
}

type CreateEventRequest struct {
	Name     string      `json:"name" validate:"required,max=120"`
	Location string      `json:"location" validate:"required,max=200"`
	Category string      `json:"category" validate:"omitempty,max=40"`
	Date     string      `json:"date" validate:"omitempty,max=40"`
	Time     string      `json:"time" validate:"omitempty,max=40"`
	Lat      float64     `json:"lat" validate:"lat"`
	Lng      float64     `json:"lng" validate:"lng"`
	RadiusM  float64     `json:"radius_m" validate:"required,radius_m"`
	Status   EventStatus `json:"status" validate:"omitempty,event_status"`
}

type UpdateEventRequest struct {
	Name     *string      `json:"name" validate:"omitempty,max=120"`
	Location *string      `json:"location" validate:"omitempty,max=200"`
	Lat      *float64     `json:"lat" validate:"omitempty,lat"`
	Lng      *float64     `json:"lng" validate:"omitempty,lng"`
	RadiusM  *float64     `json:"radius_m" validate:"omitempty,radius_m"`
	Status   *EventStatus `json:"status" validate:"omitempty,event_status"`
}

type ListEventsRequest struct {
	Status EventStatus
	From   *Coordinate
}
