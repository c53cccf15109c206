package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyCheckIn NotificationKind = "checkin.succeeded"
	NotifyVibe    NotificationKind = "vibe.submitted"
)

// WebhookPayload is delivered to the webhook endpoint and published to the broker.
type WebhookPayload struct {
	Kind       NotificationKind `json:"kind"`
	UserID     string           `json:"user_id"`
	EventID    uuid.UUID        `json:"event_id"`
	EventName  string           `json:"event_name,omitempty"`
	Lat        float64          `json:"lat,omitempty"`
	Lng        float64          `json:"lng,omitempty"`
	DistanceM  float64          `json:"distance_m,omitempty"`
	Rating     int              `json:"rating,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
