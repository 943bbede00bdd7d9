package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/teampulse-backend/internal/platform/envutil"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

// MetricsCache is a short-TTL cache in front of the aggregate metric
// endpoints. It stores the serialized response body per metric kind and is
// invalidated whenever a contribution is written. The aggregation logic
// itself never sees the cache.
type MetricsCache interface {
	Get(ctx context.Context, kind string) ([]byte, bool)
	Set(ctx context.Context, kind string, payload []byte)
	Invalidate(ctx context.Context)
	Close() error
}

var metricKinds = []string{"max", "average", "total", "count"}

type metricsCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewMetricsCache returns (nil, nil) when REDIS_ADDR is unset; callers
// treat a nil cache as a pass-through.
func NewMetricsCache(log *logger.Logger) (MetricsCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, nil
	}
	ttlSeconds := envutil.Int("METRICS_CACHE_TTL", 30, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &metricsCache{
		log: log.With("service", "MetricsCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func cacheKey(kind string) string { return "metrics:" + kind }

func (mc *metricsCache) Get(ctx context.Context, kind string) ([]byte, bool) {
	payload, err := mc.rdb.Get(ctx, cacheKey(kind)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			mc.log.Warn("Metrics cache read failed", "kind", kind, "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (mc *metricsCache) Set(ctx context.Context, kind string, payload []byte) {
	if err := mc.rdb.Set(ctx, cacheKey(kind), payload, mc.ttl).Err(); err != nil {
		mc.log.Warn("Metrics cache write failed", "kind", kind, "error", err)
	}
}

func (mc *metricsCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(metricKinds))
	for _, kind := range metricKinds {
		keys = append(keys, cacheKey(kind))
	}
	if err := mc.rdb.Del(ctx, keys...).Err(); err != nil {
		mc.log.Warn("Metrics cache invalidation failed", "error", err)
	}
}

func (mc *metricsCache) Close() error { return mc.rdb.Close() }
