package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is the shared-cache backend. Values are stored as JSON, so a
// Get returns generic documents regardless of what was Set.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Entry
	flight flightGroup
}

// NewRedis connects to redisURL and verifies the connection before
// returning.
func NewRedis(redisURL string, ttl time.Duration, logger *logrus.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return &Redis{
		client: client,
		ttl:    ttl,
		log:    logger.WithField("component", "redis_cache"),
	}, nil
}

func (r *Redis) Close() error { return r.client.Close() }

// HealthCheck pings the server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.WithError(err).WithField("key", key).Warn("Redis get failed")
		}
		return nil, false
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Cached value is not valid JSON")
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value any) {
	if key == "" {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Value is not serializable, skipping cache")
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Redis set failed")
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Redis delete failed")
	}
}

// GetOrLoad loads through Redis with in-process flight deduplication.
// Cross-instance duplicate loads are tolerated; the cache converges on
// whichever write lands last.
func (r *Redis) GetOrLoad(ctx context.Context, key string, loader Loader) (any, error) {
	if loader == nil {
		return nil, errors.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := r.Get(ctx, key); ok {
		return value, nil
	}

	return r.flight.Do(key, func() (any, error) {
		if cached, ok := r.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		r.Set(ctx, key, loaded)
		return loaded, nil
	})
}
