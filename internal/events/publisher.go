package events

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/msumanth960/epaper/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	queueKey = "portal_events"
)

type Kind string

const (
	KindEditionUploaded  Kind = "edition.uploaded"
	KindIncidentReported Kind = "incident.reported"
)

// Event - событие о новой отправке пользователя
type Event struct {
	Kind      Kind             `json:"kind"`
	Timestamp time.Time        `json:"timestamp"`
	Edition   *models.Edition  `json:"edition,omitempty"`
	Incident  *models.Incident `json:"incident,omitempty"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// ListPusher - часть клиента Redis, нужная издателю. *redis.Client ей удовлетворяет.
type ListPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisPublisher кладет события в очередь Redis
type RedisPublisher struct {
	redisClient ListPusher
}

func NewRedisPublisher(client ListPusher) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет событие в лог, используется без Redis
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	log := p.logger.WithField("kind", event.Kind)
	switch {
	case event.Edition != nil:
		log = log.WithField("edition_id", event.Edition.ID)
	case event.Incident != nil:
		log = log.WithField("incident_id", event.Incident.ID)
	}
	log.Info("Submission event")
	return nil
}
