package quotes

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tradesim-dev/tradesim/internal/models"
)

const cacheTTL = 5 * time.Minute

// Cached wraps a Provider with a redis TTL cache. Cache failures are
// logged and fall through to the upstream, never fail a lookup.
type Cached struct {
	next Provider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCached(next Provider, rdb *redis.Client) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: cacheTTL}
}

func (c *Cached) Lookup(ctx context.Context, symbol string) (models.Quote, error) {
	key := "quote:" + strings.ToUpper(strings.TrimSpace(symbol))
	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var q models.Quote
		if err := json.Unmarshal([]byte(raw), &q); err == nil {
			return q, nil
		}
	}

	q, err := c.next.Lookup(ctx, symbol)
	if err != nil {
		return models.Quote{}, err
	}

	if raw, err := json.Marshal(q); err == nil {
		if err := c.rdb.Set(ctx, "quote:"+q.Symbol, raw, c.ttl).Err(); err != nil {
			slog.Debug("quote cache set failed", "symbol", q.Symbol, "err", err)
		}
	}
	return q, nil
}
