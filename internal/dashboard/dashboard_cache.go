package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	viewStats  = "stats"
	viewWeekly = "weekly"
)

var cachedViews = []string{viewStats, viewWeekly}

func CacheKey(farmID, view string) string {
	return fmt.Sprintf("dashboard:%s:%s", farmID, view)
}

// cached serves view from Redis when present. On a miss, concurrent callers
// for the same key share one compute, whose result is written back. Redis
// failures never fail the request.
func cached[T any](ctx context.Context, s *service, farmID, view string, compute func(context.Context) (T, error)) (T, error) {
	key := CacheKey(farmID, view)

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			s.logger.Warn("dashboard cache entry unreadable", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		out, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(out); err == nil {
				if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops every cached view of the farm.
func (s *service) Invalidate(ctx context.Context, farmID string) error {
	if s.rdb == nil {
		return nil
	}
	keys := make([]string, 0, len(cachedViews))
	for _, v := range cachedViews {
		keys = append(keys, CacheKey(farmID, v))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("dashboard cache invalidation failed", zap.String("farm_id", farmID), zap.Error(err))
		return err
	}
	s.logger.Debug("dashboard cache invalidated", zap.String("farm_id", farmID))
	return nil
}
