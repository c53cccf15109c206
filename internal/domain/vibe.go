package domain

import (
	"time"

	"github.com/google/uuid"
)

var ratingLabels = [...]string{"Terrible", "Poor", "Okay", "Good", "Excellent"}

// RatingLabel names a 1..5 rating, "" outside that range.
func RatingLabel(rating int) string {
	if rating < 1 || rating > len(ratingLabels) {
		return ""
	}
	return ratingLabels[rating-1]
}

type VibeCheck struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	EventID     uuid.UUID `json:"event_id"`
	Location    string    `json:"location"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	XP          int       `json:"xp"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SubmitVibeRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	EventID  string `json:"event_id" validate:"required,uuid"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"omitempty,max=500"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

type SubmitVibeResponse struct {
	ID          string `json:"id"`
	XP          int    `json:"xp"`
	RatingLabel string `json:"rating_label"`
}

type EventScore struct {
	EventID   uuid.UUID `json:"event_id"`
	Average   float64   `json:"average"`
	Count     int64     `json:"count"`
	Label     string    `json:"label"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationScore ranks one spot inside an event (a stage, a bar, the food
// court) by the vibes submitted there.
type LocationScore struct {
	Location   string    `json:"location"`
	Average    float64   `json:"average"`
	Count      int64     `json:"count"`
	Label      string    `json:"label"`
	LastVibeAt time.Time `json:"last_vibe_at"`
}

const (
	SortByScore   = "score"
	SortByReviews = "reviews"
)

// UserVibe is a vibe check as listed on its author's history.
type UserVibe struct {
	VibeCheck
	EventName   string `json:"event_name"`
	RatingLabel string `json:"rating_label"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserActivity is the raw aggregate a profile is derived from.
type UserActivity struct {
	TotalXP        int64
	VibeCount      int64
	PhotoVibeCount int64
	EventsAttended int64
}

type Profile struct {
	UserID         uuid.UUID `json:"user_id"`
	TotalXP        int64     `json:"total_xp"`
	VibeCount      int64     `json:"vibe_count"`
	EventsAttended int64     `json:"events_attended"`
	Badges         []Badge   `json:"badges"`
}
