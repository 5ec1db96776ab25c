package realtime

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Publisher fans events out to the per-restaurant topic. Delivery is
// advisory: a failed publish is logged and never fails the request.
type Publisher interface {
	Publish(ctx context.Context, restaurantID uuid.UUID, events ...Event)
}

// ChannelFor returns the pub/sub channel consumers subscribe to.
func ChannelFor(restaurantID uuid.UUID) string {
	return "restaurant:" + restaurantID.String() + ":events"
}

type RedisPublisher struct {
	Client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{Client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, restaurantID uuid.UUID, events ...Event) {
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to encode %s event: %v", event.Type, err)
			continue
		}
		if err := p.Client.Publish(ctx, ChannelFor(restaurantID), body).Err(); err != nil {
			log.Printf("Failed to publish %s event: %v", event.Type, err)
		}
	}
}

// NoopPublisher is used when redis is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, restaurantID uuid.UUID, events ...Event) {}

// NewPublisher picks the redis publisher when a client is available.
func NewPublisher(client *redis.Client) Publisher {
	if client == nil {
		return NoopPublisher{}
	}
	return NewRedisPublisher(client)
}
