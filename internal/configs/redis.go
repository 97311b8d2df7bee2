package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the lock store and fails fast when it is
// unreachable. Client-side caching is off; locks only use SET NX and EVALSHA.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			DisableCache: true,
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Do(ctx, redisClient.B().Ping().Build()).Error(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	return redisClient
}
