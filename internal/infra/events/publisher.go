// Package events publishes domain events produced by the matcher.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher sends GroupFormed events over Redis pub/sub.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) PublishGroupFormed(ctx context.Context, evt commands.GroupFormedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "marshal group formed event")
	}
	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return errs.Wrap(err, "publish group formed event")
	}
	slog.DebugContext(ctx, "group formed event published",
		"group_id", evt.GroupID.String(),
		"channel", p.channel,
		"receivers", receivers)
	return nil
}

// Subscribe streams GroupFormed events until ctx ends. Payloads that do not
// decode are logged and skipped.
func (p *RedisPublisher) Subscribe(ctx context.Context) (<-chan commands.GroupFormedEvent, error) {
	sub := p.client.Subscribe(ctx, p.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errs.Wrap(err, "subscribe to group formed events")
	}

	out := make(chan commands.GroupFormedEvent)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var evt commands.GroupFormedEvent
				if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
					slog.Warn("dropping malformed group formed event", "error", err.Error())
					continue
				}
				select {
				case out <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishGroupFormed(context.Context, commands.GroupFormedEvent) error {
	return nil
}
