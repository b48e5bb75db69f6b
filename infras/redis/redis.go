package redis

import (
	"context"
	"net"

	"scaffold/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis. It returns nil when no host is
// configured; callers fall back to in-process state in that case.
func New(config *config.Config) *goRedis.Client {
	if !config.RedisEnabled() {
		log.Info().Msg("Redis not configured, skipping connection")

		return nil
	}

	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
