package api_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"vibescore/internal/api"
	"vibescore/internal/config"
	"vibescore/internal/domain"
	"vibescore/internal/middleware"
	"vibescore/internal/service"
	mock_service "vibescore/internal/service/mocks"
)

type mocks struct {
	admin   *mock_service.MockEventAdminService
	checkIn *mock_service.MockCheckInService
	query   *mock_service.MockEventQueryService
	vibe    *mock_service.MockVibeService
	stats   *mock_service.MockStatsService
}

func newTestServer(t *testing.T) (http.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		admin:   mock_service.NewMockEventAdminService(ctrl),
		checkIn: mock_service.NewMockCheckInService(ctrl),
		query:   mock_service.NewMockEventQueryService(ctrl),
		vibe:    mock_service.NewMockVibeService(ctrl),
		stats:   mock_service.NewMockStatsService(ctrl),
	}
	svc := service.NewService(m.admin, m.checkIn, m.query, m.vibe, m.stats)
	cfg := &config.Config{APIKey: "secret"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return api.NewServer(cfg, logger, svc, nil).Handler(), m
}

func TestRouter_AdminRequiresKey(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("no key: got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set(middleware.APIKeyHeader, "wrong")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: got %d", rr.Code)
	}
}

func TestRouter_AdminStats(t *testing.T) {
	t.Parallel()
	h, m := newTestServer(t)

	m.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(&domain.CheckInStats{UserCount: 3, TotalCheckIns: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=30", nil)
	req.Header.Set(middleware.APIKeyHeader, "secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRouter_CheckInRouted(t *testing.T) {
	t.Parallel()
	h, m := newTestServer(t)

	m.checkIn.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(domain.CheckInResponse{EventName: "Electric Dreams Festival"}, nil)

	body := `{"user_id":"0b7e1b8e-7c4c-4f7e-9d59-0c3a1f0e2a11","event_id":"6f1c2a7e-3b1d-4c55-9a0e-1d2b3c4d5e01","lat":40.7829,"lng":-73.9654}`
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/checkins", bytes.NewBufferString(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Electric Dreams Festival") {
		t.Fatalf("body=%s", rr.Body.String())
	}
}

func TestRouter_HealthAndUnknown(t *testing.T) {
	t.Parallel()
	h, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown: got %d", rr.Code)
	}
}

func TestRouter_LocationsAndHistoryRouted(t *testing.T) {
	t.Parallel()
	h, m := newTestServer(t)

	eventID := uuid.MustParse("6f1c2a7e-3b1d-4c55-9a0e-1d2b3c4d5e01")
	userID := uuid.MustParse("0b7e1b8e-7c4c-4f7e-9d59-0c3a1f0e2a11")

	m.query.EXPECT().LocationScores(gomock.Any(), eventID, "").Return([]domain.LocationScore{}, nil)
	m.vibe.EXPECT().History(gomock.Any(), userID, 0).Return([]domain.UserVibe{}, nil)

	for _, path := range []string{
		"/api/v1/events/" + eventID.String() + "/locations",
		"/api/v1/users/" + userID.String() + "/vibes",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: got %d: %s", path, rr.Code, rr.Body.String())
		}
	}
}
