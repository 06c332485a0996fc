package redis

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/thierrygoms/barberapp-server/internal/config"
)

func NewClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}
