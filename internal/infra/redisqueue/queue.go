package redisqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// DefaultKey is the list holding application ids whose status notification
// could not be delivered.
const DefaultKey = "trainer:notifications:retry"

// Queue is a FIFO of application ids backed by a Redis list.
type Queue struct {
	client *redis.Client
	key    string
}

// New wraps an existing client. An empty key falls back to DefaultKey.
func New(client *redis.Client, key string) *Queue {
	if key == "" {
		key = DefaultKey
	}
	return &Queue{client: client, key: key}
}

// Open parses a redis:// URL and pings the server.
func Open(ctx context.Context, url, key string) (*Queue, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, key), nil
}

// Push appends id to the tail of the queue.
func (q *Queue) Push(ctx context.Context, id uint) error {
	return q.client.RPush(ctx, q.key, uint64(id)).Err()
}

// Pop removes the head of the queue. ok is false when the queue is empty.
func (q *Queue) Pop(ctx context.Context) (id uint, ok bool, err error) {
	v, err := q.client.LPop(ctx, q.key).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return uint(v), true, nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

func (q *Queue) Close() error {
	return q.client.Close()
}
