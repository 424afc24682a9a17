package matchapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Getter é satisfeito pelo Client e pelo CachedClient
type Getter interface {
	GetMatch(ctx context.Context, id string) (Match, error)
}

// KV é o subconjunto do *redis.Client usado pelo cache
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedClient guarda no Redis apenas partidas COMPLETED: depois de finalizadas elas não mudam.
// Falhas do Redis não quebram a consulta; caem direto no match-service.
type CachedClient struct {
	next Getter
	kv   KV
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedClient(log *zap.Logger, next Getter, kv KV, ttl time.Duration) *CachedClient {
	return &CachedClient{next: next, kv: kv, ttl: ttl, log: log}
}

func cacheKey(id string) string { return "match:completed:" + id }

func (c *CachedClient) GetMatch(ctx context.Context, id string) (Match, error) {
	raw, err := c.kv.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var m Match
		if jerr := json.Unmarshal(raw, &m); jerr == nil && m.Completed() {
			return m, nil
		}
		c.log.Warn("discarding invalid cached match", zap.String("match_id", id))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("redis get failed", zap.String("match_id", id), zap.Error(err))
	}

	m, err := c.next.GetMatch(ctx, id)
	if err != nil {
		return Match{}, err
	}
	if !m.Completed() {
		return m, nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return m, nil
	}
	if err := c.kv.Set(ctx, cacheKey(id), b, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("match_id", id), zap.Error(err))
	}
	return m, nil
}
