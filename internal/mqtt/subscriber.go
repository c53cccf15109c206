// Package mqtt ingests device location fixes published on
// vibescore/location/{user_id} and serves them as check-in positions.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"vibescore/internal/domain"
	"vibescore/internal/geo"
	"vibescore/internal/redis"
)

type FixStore interface {
	Put(ctx context.Context, userID uuid.UUID, fix redis.LocationFix) error
	Latest(ctx context.Context, userID uuid.UUID) (redis.LocationFix, error)
}

type fixMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

func Connect(broker, clientID string) (pahomqtt.Client, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return client, nil
}

type Subscriber struct {
	client pahomqtt.Client
	topic  string
	fixes  FixStore
	logger *slog.Logger
	now    func() time.Time
}

func NewSubscriber(client pahomqtt.Client, topic string, fixes FixStore, logger *slog.Logger) *Subscriber {
	return &Subscriber{client: client, topic: topic, fixes: fixes, logger: logger, now: time.Now}
}

func (s *Subscriber) Start() error {
	token := s.client.Subscribe(s.topic, 1, s.handle)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", s.topic, err)
	}
	s.logger.Info("mqtt subscribed", slog.String("topic", s.topic))
	return nil
}

func (s *Subscriber) Stop() {
	s.client.Unsubscribe(s.topic).Wait()
	s.client.Disconnect(250)
}

func (s *Subscriber) IsConnected() bool {
	return s.client.IsConnected()
}

func (s *Subscriber) handle(_ pahomqtt.Client, msg pahomqtt.Message) {
	if err := s.ingest(msg.Topic(), msg.Payload()); err != nil {
		s.logger.Warn("location fix dropped", slog.String("topic", msg.Topic()), slog.Any("error", err))
	}
}

func (s *Subscriber) ingest(topic string, payload []byte) error {
	userID, err := userFromTopic(topic)
	if err != nil {
		return err
	}

	var m fixMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	c := domain.Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
	if !geo.ValidCoordinate(c) {
		return fmt.Errorf("invalid coordinate (%v, %v)", m.Latitude, m.Longitude)
	}

	// a device clock running ahead must not keep a fix fresh
	now := s.now().UTC()
	reported := now
	if m.Timestamp > 0 {
		reported = time.Unix(m.Timestamp, 0).UTC()
	}
	if reported.After(now) {
		reported = now
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.fixes.Put(ctx, userID, redis.LocationFix{Coordinate: c, ReportedAt: reported})
}

func userFromTopic(topic string) (uuid.UUID, error) {
	i := strings.LastIndexByte(topic, '/')
	if i < 0 || i == len(topic)-1 {
		return uuid.Nil, fmt.Errorf("topic %q has no user segment", topic)
	}
	id, err := uuid.Parse(topic[i+1:])
	if err != nil {
		return uuid.Nil, fmt.Errorf("topic %q: %w", topic, err)
	}
	return id, nil
}
