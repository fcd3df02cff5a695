package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"complaintdesk/backend/internal/config"
)

// Publisher fans a complaint event out to interested subscribers.
type Publisher interface {
	Publish(ev Event) error
}

// RedisPublisher publishes events as JSON on the complaints event
// channel, so dashboards or other processes can react without polling.
type RedisPublisher struct {
	Redis *redis.Client
	Ctx   context.Context
}

// NewRedisPublisher creates a publisher on top of an existing client.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{Redis: rdb, Ctx: context.Background()}
}

func (p *RedisPublisher) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Redis.Publish(p.Ctx, config.EventsChannel, data).Err()
}
