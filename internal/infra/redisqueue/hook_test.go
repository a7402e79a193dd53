package redisqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var errServed = errors.New("served in memory")

// memoryList answers RPUSH, LPOP and LLEN from a slice so the queue can be
// exercised without a server. BeforeProcess stops the command from reaching
// the network and AfterProcess writes the reply.
type memoryList struct {
	items []string
}

func (m *memoryList) BeforeProcess(ctx context.Context, _ redis.Cmder) (context.Context, error) {
	return ctx, errServed
}

func (m *memoryList) AfterProcess(_ context.Context, cmd redis.Cmder) error {
	switch c := cmd.(type) {
	case *redis.IntCmd:
		if c.Name() == "rpush" {
			for _, v := range c.Args()[2:] {
				m.items = append(m.items, fmt.Sprint(v))
			}
		}
		c.SetErr(nil)
		c.SetVal(int64(len(m.items)))
	case *redis.StringCmd:
		if len(m.items) == 0 {
			c.SetErr(redis.Nil)
			return nil
		}
		c.SetErr(nil)
		c.SetVal(m.items[0])
		m.items = m.items[1:]
	}
	return nil
}

func (m *memoryList) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, errServed
}

func (m *memoryList) AfterProcessPipeline(context.Context, []redis.Cmder) error { return nil }

// unreachable fails every command the way a dropped connection would.
type unreachable struct{}

func (unreachable) BeforeProcess(ctx context.Context, _ redis.Cmder) (context.Context, error) {
	return ctx, errors.New("dial tcp: connection refused")
}

func (unreachable) AfterProcess(context.Context, redis.Cmder) error { return nil }

func (unreachable) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, errors.New("dial tcp: connection refused")
}

func (unreachable) AfterProcessPipeline(context.Context, []redis.Cmder) error { return nil }

func newTestQueue(hook redis.Hook) *Queue {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	client.AddHook(hook)
	return New(client, "")
}
