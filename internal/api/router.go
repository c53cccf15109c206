package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vibescore/internal/api/handlers/http/admin"
	"vibescore/internal/api/handlers/http/public"
	"vibescore/internal/api/handlers/http/system"
	"vibescore/internal/config"
	"vibescore/internal/middleware"
	"vibescore/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, health map[string]system.Check) *Server {
	adminHandler := admin.NewHandler(logger, svc.EventAdminService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.CheckInService, svc.EventQueryService, svc.VibeService)
	systemHandler := system.NewHandler(logger, health)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// RequestID first so chi.Logger lines carry the request id
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/events", func(er chi.Router) {
				er.Post("/", adminHandler.AdminEventCreate)
				er.Get("/", adminHandler.AdminEventList)

				er.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminEventGet)
					rr.Put("/", adminHandler.AdminEventUpdate)
					rr.Delete("/", adminHandler.AdminEventDelete)
				})
			})
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Route("/checkins", func(cr chi.Router) {
				cr.Post("/", publicHandler.CheckIn)
				cr.Get("/active", publicHandler.ActiveCheckIn)
				cr.Delete("/active", publicHandler.LeaveEvent)
			})

			pr.Route("/events", func(er chi.Router) {
				er.Get("/", publicHandler.ListEvents)
				er.Get("/{id}", publicHandler.GetEvent)
				er.Get("/{id}/score", publicHandler.EventScore)
				er.Get("/{id}/locations", publicHandler.EventLocations)
			})

			pr.Post("/vibes", publicHandler.SubmitVibe)
			pr.Get("/users/{id}/profile", publicHandler.UserProfile)
			pr.Get("/users/{id}/vibes", publicHandler.UserVibes)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}
func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
