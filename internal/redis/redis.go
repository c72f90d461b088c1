package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check; a session backend
// that cannot answer within this is treated as down.
const pingTimeout = 2 * time.Second

type Client struct {
	*goredis.Client
}

// New connects to the session backend and verifies the connection with
// a ping before handing the client out.
func New(addr, password string) (*Client, error) {

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s failed: %w", addr, err)
	}

	return &Client{Client: client}, nil

}
