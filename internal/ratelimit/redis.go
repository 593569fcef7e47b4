package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the window state in a sorted set per key, scored by the
// timestamp in nanoseconds. Shared across instances, which the in-memory
// store cannot be.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "ratelimit:",
		// Keys expire one window after the last accepted request.
		ttl: 2 * window,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]time.Time, error) {
	raw, err := s.client.ZRangeWithScores(ctx, s.prefix+key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	stamps := make([]time.Time, 0, len(raw))
	for _, z := range raw {
		stamps = append(stamps, time.Unix(0, int64(z.Score)))
	}
	return stamps, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, stamps []time.Time) error {
	full := s.prefix + key
	members := make([]redis.Z, 0, len(stamps))
	for _, t := range stamps {
		ns := t.UnixNano()
		members = append(members, redis.Z{
			Score:  float64(ns),
			Member: strconv.FormatInt(ns, 10),
		})
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, full)
	if len(members) > 0 {
		pipe.ZAdd(ctx, full, members...)
		pipe.Expire(ctx, full, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Prune(ctx context.Context, key string, cutoff time.Time) error {
	max := strconv.FormatInt(cutoff.UnixNano(), 10)
	return s.client.ZRemRangeByScore(ctx, s.prefix+key, "-inf", max).Err()
}
