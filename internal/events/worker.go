package events

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/msumanth960/epaper/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ListPopper - часть клиента Redis, нужная воркеру
type ListPopper interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// Worker забирает события из Redis и доставляет их на вебхук
type Worker struct {
	redisClient ListPopper
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	wait        func(ctx context.Context, d time.Duration) bool
}

func NewWorker(redisClient ListPopper, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		wait: waitContext,
	}
}

// waitContext ждет d и возвращает false, если контекст отменен раньше
func waitContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Start запускает горутину обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting event worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping event worker.")
				return
			default:
				// BRPOP с таймаутом 0 ждет бесконечно
				result, err := w.redisClient.BRPop(ctx, 0, queueKey).Result()
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop event from Redis")
					w.wait(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие на вебхук с экспоненциальной задержкой между попытками
func (w *Worker) deliver(ctx context.Context, event Event, rawPayload string) bool {
	log := w.logger.WithField("event_kind", event.Kind)
	log.Debug("Processing event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		left := maxRetries - 1 - i
		status, err := w.post(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, left)
		case status >= 200 && status < 300:
			log.Info("Webhook delivered successfully.")
			return true
		default:
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, left)
		}
		if left > 0 {
			if !w.wait(ctx, delay) {
				log.Warn("Worker is stopping, webhook delivery abandoned.")
				return false
			}
			delay *= 2
		}
	}

	log.Errorf("Failed to deliver webhook after %d retries.", maxRetries)
	return false
}

func (w *Worker) post(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись HMAC добавляется, только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", sign(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sign генерирует HMAC-SHA256 подпись для данных
func sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
