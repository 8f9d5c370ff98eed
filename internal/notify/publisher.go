package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Message is the payload the socket gateway forwards to connected clients.
type Message struct {
	Kind    string `json:"type"`
	Payload any    `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, channel string, msg Message) error
	Close() error
}

// UserChannel names the pub/sub channel a user's sockets subscribe to.
func UserChannel(prefix string, userID uuid.UUID) string {
	return prefix + userID.String()
}

// ChatChannel names the pub/sub channel both participants of a chat subscribe to.
func ChatChannel(prefix string, chatID uuid.UUID) string {
	return prefix + chatID.String()
}

type redisPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisPublisher(client *redis.Client, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisPublisher{
		client: client,
		logger: logger,
	}
}

func (p *redisPublisher) Publish(ctx context.Context, channel string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	receivers, err := p.client.Publish(ctx, channel, body).Result()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	p.logger.DebugContext(ctx, "published message", "channel", channel, "kind", msg.Kind, "receivers", receivers)
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

// noopPublisher is used when no Redis URL is configured.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, Message) error { return nil }

func (noopPublisher) Close() error { return nil }
