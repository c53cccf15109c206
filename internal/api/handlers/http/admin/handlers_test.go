package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"vibescore/internal/api/handlers/http/admin"
	mock_admin "vibescore/internal/api/handlers/http/admin/mocks"
	"vibescore/internal/domain"
	"vibescore/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, *mock_admin.MockAdminEvents, *mock_admin.MockStatsGetter) {
	adminSvc := mock_admin.NewMockAdminEvents(ctrl)
	statsSvc := mock_admin.NewMockStatsGetter(ctrl)
	return admin.NewHandler(newTestLogger(), adminSvc, statsSvc), adminSvc, statsSvc
}

func TestAdminEventCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	reqBody := `{"name":"Summer Beats","location":"Brooklyn Bridge Park","lat":40.7024,"lng":-73.9965,"radius_m":600,"status":"live"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	adminSvc.EXPECT().
		Create(gomock.Any(), domain.CreateEventRequest{
			Name:     "Summer Beats",
			Location: "Brooklyn Bridge Park",
			Lat:      40.7024,
			Lng:      -73.9965,
			RadiusM:  600,
			Status:   domain.EventLive,
		}).
		Return(wantID, nil).
		Times(1)

	h.AdminEventCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	resp := decodeJSON[map[string]string](t, rr)
	if resp["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID, resp["id"])
	}
}

func TestAdminEventCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.AdminEventCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminEventCreate_ServiceErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("radius_m: radius_m: %w", e.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("insert: %w", e.ErrUniqueViolation), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		ctrl := gomock.NewController(t)
		h, adminSvc, _ := newHandler(ctrl)
		adminSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, c.err).Times(1)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/", bytes.NewBufferString(`{"name":"x","radius_m":-1}`))
		rr := httptest.NewRecorder()

		h.AdminEventCreate(rr, req)

		if rr.Code != c.want {
			t.Fatalf("err %v: expected %d got %d", c.err, c.want, rr.Code)
		}
		ctrl.Finish()
	}
}

func TestAdminEventList_Defaults_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/", nil)
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		List(gomock.Any(), 1, 20).
		Return([]*domain.Event{}, int64(0), nil).
		Times(1)

	h.AdminEventList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if int(resp["page"].(float64)) != 1 || int(resp["limit"].(float64)) != 20 {
		t.Fatalf("unexpected pagination: %+v", resp)
	}
}

func TestAdminEventList_LimitClampedTo100(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/?page=2&limit=500", nil)
	rr := httptest.NewRecorder()

	adminSvc.EXPECT().
		List(gomock.Any(), 2, 100).
		Return([]*domain.Event{}, int64(0), nil).
		Times(1)

	h.AdminEventList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminEventGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/bad/", nil)
	req = addChiURLParam(req, "id", "bad")
	rr := httptest.NewRecorder()

	h.AdminEventGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminEventGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	id := uuid.New()
	adminSvc.EXPECT().Get(gomock.Any(), id).Return(nil, fmt.Errorf("postgres.Event.Get: %w", e.ErrNotFound)).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/"+id.String()+"/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminEventGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminEventGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	id := uuid.New()
	adminSvc.EXPECT().
		Get(gomock.Any(), id).
		Return(&domain.Event{ID: id, Name: "Indie Vibes", RadiusM: 400, Status: domain.EventUpcoming}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/"+id.String()+"/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminEventGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Event](t, rr)
	if got.ID != id || got.Status != domain.EventUpcoming {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestAdminEventUpdate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/events/"+id.String()+"/", bytes.NewBufferString("{bad"))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminEventUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminEventUpdate_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	id := uuid.New()
	live := domain.EventLive
	adminSvc.EXPECT().
		Update(gomock.Any(), id, domain.UpdateEventRequest{Status: &live}).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/events/"+id.String()+"/", bytes.NewBufferString(`{"status":"live"}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminEventUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminEventDelete_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, adminSvc, _ := newHandler(ctrl)

	id := uuid.New()
	adminSvc.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/events/"+id.String()+"/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminEventDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, statsSvc := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=30", nil)
	rr := httptest.NewRecorder()

	want := &domain.CheckInStats{UserCount: 42, TotalCheckIns: 50, Minutes: 30}
	statsSvc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(want, nil).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.CheckInStats](t, rr)
	if got != *want {
		t.Fatalf("got=%+v want=%+v", got, *want)
	}
}

func TestAdminStats_DefaultMinutes_60(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, statsSvc := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	statsSvc.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.CheckInStats{Minutes: 60}, nil).
		Times(1)

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestAdminStats_InvalidMinutes_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(ctrl)

	for _, q := range []string{"abc", "0", "-5", "1441"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes="+q, nil)
		rr := httptest.NewRecorder()

		h.AdminStats(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("minutes=%s: expected %d got %d", q, http.StatusBadRequest, rr.Code)
		}
	}
}
