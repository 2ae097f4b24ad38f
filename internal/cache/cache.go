package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Cache guarda respostas de agregação do dashboard no Redis. Sem
// REDIS_URL configurada o cache vira no-op e as consultas vão direto
// ao banco.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) *Cache {
	if redisURL == "" {
		return &Cache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, dashboard cache disabled")
		return &Cache{}
	}

	return &Cache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

func (c *Cache) Enabled() bool {
	return c.client != nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache dashboard payload")
	}
}
