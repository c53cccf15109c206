package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"vibescore/internal/config"
	"vibescore/internal/domain"
	"vibescore/internal/service"
	"vibescore/pkg/e"
)

type sliceSource struct {
	mu    sync.Mutex
	items []domain.WebhookPayload
}

func (s *sliceSource) BRPop(ctx context.Context, _ time.Duration) (domain.WebhookPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		select {
		case <-ctx.Done():
			return domain.WebhookPayload{}, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
		return domain.WebhookPayload{}, e.ErrWebHookEmpty
	}
	p := s.items[0]
	s.items = s.items[1:]
	return p, nil
}

func TestWebhookSender_DeliversPayload(t *testing.T) {
	t.Parallel()

	want := domain.WebhookPayload{Kind: domain.NotifyCheckIn, UserID: uuid.NewString(), EventID: uuid.New(), DistanceM: 42}
	got := make(chan domain.WebhookPayload, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Vibescore-Event") != string(domain.NotifyCheckIn) {
			t.Errorf("missing event header: %v", r.Header)
		}
		var p domain.WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode: %v", err)
		}
		got <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := service.NewWebhookSender(newTestLogger(), config.WebhookConfig{URL: srv.URL}, &sliceSource{items: []domain.WebhookPayload{want}})
	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	select {
	case p := <-got:
		if p.UserID != want.UserID || p.EventID != want.EventID || p.DistanceM != 42 {
			t.Fatalf("got=%+v want=%+v", p, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("webhook not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sender did not stop")
	}
}
