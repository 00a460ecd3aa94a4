package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/pkg/e"
)

// EventQueue is a FIFO of request events: LPUSH on enqueue, BRPOP on dequeue.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, ev domain.RequestEvent) error {
	const op = "redis.EventQueue.Enqueue"

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := q.client.LPush(ctx, q.key, b).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.RequestEvent, error) {
	const op = "redis.EventQueue.BRPop"

	var ev domain.RequestEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrEventQueueEmpty
		}
		return ev, fmt.Errorf("%s: %w", op, err)
	}
	if len(res) < 2 {
		return ev, e.ErrEventQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, fmt.Errorf("%s: %w", op, err)
	}
	return ev, nil
}

func (q *EventQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
