package database

import (
	"context"

	"systemprompthub/config"

	"github.com/go-redis/redis/v8"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis installs the cache client. The cache is optional: callers
// that get an error back may leave RedisClient nil and the services skip
// caching entirely.
func ConnectRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return err
	}

	RedisClient = client
	return nil
}
