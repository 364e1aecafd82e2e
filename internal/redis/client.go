package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection used as the ticket hand-off queue
// between the API and the print station.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// PushTicket appends a formatted ticket to the named queue. The print
// station consumes from the opposite end, so tickets come out in FIFO order.
func (c *Client) PushTicket(ctx context.Context, queue string, ticket []byte) error {
	return c.rdb.LPush(ctx, queue, ticket).Err()
}

// QueueDepth returns the number of tickets waiting to be printed.
func (c *Client) QueueDepth(ctx context.Context, queue string) (int64, error) {
	return c.rdb.LLen(ctx, queue).Result()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
