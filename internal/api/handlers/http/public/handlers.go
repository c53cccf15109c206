package public

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"vibescore/internal/domain"
	"vibescore/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CheckIns interface {
	CheckIn(ctx context.Context, req domain.CheckInRequest) (domain.CheckInResponse, error)
	Active(ctx context.Context, userID uuid.UUID) (*domain.ActiveCheckIn, error)
	Leave(ctx context.Context, userID uuid.UUID) error
}

type Events interface {
	ListEvents(ctx context.Context, req domain.ListEventsRequest) ([]domain.EventWithDistance, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Score(ctx context.Context, id uuid.UUID) (*domain.EventScore, error)
	LocationScores(ctx context.Context, id uuid.UUID, sortBy string) ([]domain.LocationScore, error)
}

type Vibes interface {
	Submit(ctx context.Context, req domain.SubmitVibeRequest) (domain.SubmitVibeResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserVibe, error)
}

type Handler struct {
	logger   *slog.Logger
	CheckIns CheckIns
	Events   Events
	Vibes    Vibes
}

func NewHandler(logger *slog.Logger, checkIns CheckIns, events Events, vibes Vibes) *Handler {
	return &Handler{
		logger:   logger,
		CheckIns: checkIns,
		Events:   events,
		Vibes:    vibes,
	}
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckInRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.CheckIns.CheckIn(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ActiveCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromQuery(w, r)
	if !ok {
		return
	}

	active, err := h.CheckIns.Active(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, active)
}

func (h *Handler) LeaveEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.CheckIns.Leave(r.Context(), userID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.ListEventsRequest{Status: domain.EventStatus(q.Get("status"))}

	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr != "" || lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng must both be numbers"})
			return
		}
		req.From = &domain.Coordinate{Latitude: lat, Longitude: lng}
	}

	events, err := h.Events.ListEvents(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	ev, err := h.Events.GetEvent(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ev)
}

func (h *Handler) EventScore(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	score, err := h.Events.Score(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, score)
}

func (h *Handler) EventLocations(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	scores, err := h.Events.LocationScores(r.Context(), id, r.URL.Query().Get("sort"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"event_id":  id,
		"locations": scores,
		"total":     len(scores),
	})
}

func (h *Handler) SubmitVibe(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitVibeRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Vibes.Submit(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	profile, err := h.Vibes.Profile(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) UserVibes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a number"})
			return
		}
		limit = n
	}

	vibes, err := h.Vibes.History(r.Context(), id, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"vibes": vibes,
		"total": len(vibes),
	})
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) userFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
		return uuid.Nil, false
	}
	return id, true
}
