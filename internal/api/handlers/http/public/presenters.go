package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vibescore/internal/checkin"
	"vibescore/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// failureBody tells the client why a check-in failed and what it may retry.
type failureBody struct {
	Error         string  `json:"error"`
	Reason        string  `json:"reason"`
	EventStatus   string  `json:"event_status,omitempty"`
	DistanceM     float64 `json:"distance_m,omitempty"`
	RadiusM       float64 `json:"radius_m,omitempty"`
	ShortfallM    float64 `json:"shortfall_m,omitempty"`
	RetryLocation bool    `json:"retry_location"`
	RetryVerify   bool    `json:"retry_verify"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, e.ErrEventNotLive):
		return http.StatusConflict
	case errors.Is(err, e.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, e.ErrLocationUnavailable), errors.Is(err, e.ErrPermissionDenied):
		return http.StatusServiceUnavailable
	case errors.Is(err, e.ErrNotCheckedIn):
		return http.StatusForbidden
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidUserID), errors.Is(err, e.ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation), errors.Is(err, checkin.ErrVerificationInFlight):
		return http.StatusConflict
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	l := h.log(r)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		l.Error("handler error", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	} else {
		l.Info("request rejected", slog.String("path", r.URL.Path), slog.Int("status", status), slog.Any("error", err))
	}

	var f *checkin.Failure
	if errors.As(err, &f) {
		body := failureBody{Error: err.Error(), Reason: string(f.Reason), EventStatus: string(f.EventStatus)}
		if f.Result != nil {
			body.DistanceM = f.Result.DistanceM
			body.RadiusM = f.Result.RadiusM
			body.ShortfallM = f.Result.Shortfall()
		}
		body.RetryLocation, body.RetryVerify = f.Retryable()
		if f.Reason == checkin.ReasonVerificationError {
			body.Error = "verification error"
		}
		h.writeJSON(w, status, body)
		return
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
