package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ChannelPrefix префикс канала Redis для документа
const ChannelPrefix = "docsync:doc:"

// Redis брокер поверх Redis Pub/Sub для нескольких экземпляров сервера
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Broker = (*Redis)(nil)

// NewRedis подключается по URL вида redis://host:6379/0
func NewRedis(ctx context.Context, redisURL string, logger *slog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, logger: logger}, nil
}

// Channel имя канала Redis для документа
func Channel(documentID string) string {
	return ChannelPrefix + documentID
}

func (b *Redis) Publish(ctx context.Context, documentID string, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	if err := b.client.Publish(ctx, Channel(documentID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	return nil
}

// Subscribe возвращает подписку после подтверждения от Redis,
// поэтому сообщения, опубликованные после возврата, не теряются.
func (b *Redis) Subscribe(ctx context.Context, documentID string) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, Channel(documentID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &redisSub{
		pubsub: pubsub,
		ch:     make(chan Envelope, DefaultBuffer),
		done:   make(chan struct{}),
	}
	go sub.forward(b.logger.With("document_id", documentID))
	return sub, nil
}

func (b *Redis) Close() error {
	return b.client.Close()
}

type redisSub struct {
	pubsub    *redis.PubSub
	ch        chan Envelope
	done      chan struct{}
	closeOnce sync.Once
}

func (s *redisSub) forward(logger *slog.Logger) {
	defer close(s.ch)

	for msg := range s.pubsub.Channel() {
		var env Envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			logger.Warn("Invalid envelope", "error", err)
			continue
		}
		select {
		case s.ch <- env:
		case <-s.done:
			return
		}
	}
}

func (s *redisSub) Messages() <-chan Envelope {
	return s.ch
}

func (s *redisSub) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
