package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"vibescore/internal/api"
	"vibescore/internal/api/handlers/http/system"
	"vibescore/internal/catalog"
	"vibescore/internal/checkin"
	"vibescore/internal/config"
	"vibescore/internal/mqtt"
	"vibescore/internal/rabbitmq"
	"vibescore/internal/redis"
	"vibescore/internal/service"
	"vibescore/internal/storage/postgres"
	"vibescore/internal/workers"
	"vibescore/pkg/logger"
)

const webhookQueueKey = "webhooks:queue"

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	WebhookQ   *redis.WebhookQueue
	Broker     *rabbitmq.Publisher
	Locations  *mqtt.Subscriber

	WebhookSender *service.WebhookSender
	Refresher     *workers.LiveEventRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}

	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}
	c.Postgres = storage

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		c.ShutdownAll()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Redis = redisClient
	c.WebhookQ = redis.NewWebhookQueue(redisClient.Client, webhookQueueKey)

	var broker service.BrokerPublisher
	if !cfg.RabbitMQ.Disabled {
		logger.Info("Initializing RabbitMQ")
		conn, err := rabbitmq.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init rabbitmq: %w", err)
		}
		pub, err := rabbitmq.NewPublisher(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			_ = conn.Close()
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init rabbitmq publisher: %w", err)
		}
		c.Broker = pub
		broker = pub
	}

	var webhooks service.WebhookQueue
	if !cfg.Webhook.Disabled {
		webhooks = c.WebhookQ
		c.WebhookSender = service.NewWebhookSender(logger, cfg.Webhook, c.WebhookQ)
	}

	fixes := redis.NewLocationFixes(redisClient.Client, cfg.CheckIn.FixMaxAge)
	var devices service.DeviceLocations
	if !cfg.MQTT.Disabled {
		logger.Info("Initializing MQTT", slog.String("broker", cfg.MQTT.Broker))
		client, err := mqtt.Connect(cfg.MQTT.Broker, cfg.MQTT.ClientID)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init mqtt: %w", err)
		}
		c.Locations = mqtt.NewSubscriber(client, cfg.MQTT.Topic, fixes, logger)
		if err := c.Locations.Start(); err != nil {
			c.ShutdownAll()
			return nil, err
		}
		devices = func(userID uuid.UUID) checkin.LocationProvider {
			return mqtt.NewDeviceLocation(fixes, userID)
		}
	}

	tracker := checkin.NewTracker(
		redis.NewActiveCheckIns(redisClient.Client, cfg.CheckIn.ActiveTTL),
		checkin.WithMaxAge(cfg.CheckIn.ReverifyAfter),
	)
	source := service.NewEventSource(storage.Events(), redis.NewEventCache(redisClient.Client), cfg.CheckIn.CacheTTL, logger)
	notifier := service.NewNotifier(webhooks, broker, logger)

	adminSvc := service.NewEventAdminService(storage.Events(), source, logger)
	checkInSvc := service.NewCheckInService(source, tracker, storage.CheckIns(), devices, notifier, logger, service.CheckInOptions{
		LocationTimeout: cfg.CheckIn.LocationTimeout,
		ReverifyAfter:   cfg.CheckIn.ReverifyAfter,
	})
	querySvc := service.NewEventQueryService(storage.Events(), source, storage.Vibes())
	vibeSvc := service.NewVibeService(storage.Vibes(), tracker, notifier, logger)
	statsSvc := service.NewStatsService(storage.Stats())

	if cfg.CheckIn.CatalogPath != "" {
		if err := seedCatalog(ctx, adminSvc, cfg.CheckIn.CatalogPath, logger); err != nil {
			c.ShutdownAll()
			return nil, err
		}
	}

	srv := service.NewService(adminSvc, checkInSvc, querySvc, vibeSvc, statsSvc)

	c.HttpServer = api.NewServer(cfg, logger, srv, c.healthChecks())
	c.Refresher = workers.NewLiveEventRefresher(source, cfg.CheckIn.CacheRefresh, logger)
	logger.Info("Initialized server")

	return c, nil
}

func seedCatalog(ctx context.Context, admin service.EventAdminService, path string, logger *slog.Logger) error {
	events, err := catalog.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("event catalog not found, skipping seed", slog.String("path", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if _, err := admin.Seed(ctx, events); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func (c *Components) healthChecks() map[string]system.Check {
	checks := map[string]system.Check{
		"postgres": func(ctx context.Context) error { return c.Postgres.Pool.Ping(ctx) },
		"redis":    c.Redis.Ping,
	}
	if c.Broker != nil {
		checks["rabbitmq"] = func(context.Context) error {
			if c.Broker.IsClosed() {
				return errors.New("connection closed")
			}
			return nil
		}
	}
	if c.Locations != nil {
		checks["mqtt"] = func(context.Context) error {
			if !c.Locations.IsConnected() {
				return errors.New("not connected")
			}
			return nil
		}
	}
	return checks
}

// RunWorkers blocks until ctx is done and every background worker returned.
func (c *Components) RunWorkers(ctx context.Context) {
	var wg sync.WaitGroup
	if c.WebhookSender != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.WebhookSender.Run(ctx)
		}()
	}
	if c.Refresher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Refresher.Run(ctx)
		}()
	}
	wg.Wait()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Locations != nil {
		c.Locations.Stop()
	}
	if c.Broker != nil {
		if err := c.Broker.Close(); err != nil {
			c.logger.Error("RabbitMQ publisher close failed", slog.String("err", err.Error()))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
