package fact

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"numclass/pkg/logx"
)

type cachedProvider struct {
	next  Provider
	facts *cache.Cache
}

// WithCache remembers successful facts per number for ttl. Errors are never
// cached. A non-positive ttl disables caching and returns next unchanged.
func WithCache(next Provider, ttl, cleanupInterval time.Duration) Provider {
	if ttl <= 0 {
		return next
	}

	return cachedProvider{
		next:  next,
		facts: cache.New(ttl, cleanupInterval),
	}
}

func (p cachedProvider) Fact(ctx context.Context, n uint64) (string, error) {
	key := strconv.FormatUint(n, 10)

	if text, ok := p.facts.Get(key); ok {
		logger(ctx).Debug("fun fact cache hit", slog.Uint64(logx.FieldNumber, n))

		return text.(string), nil //nolint:forcetypeassert
	}

	text, err := p.next.Fact(ctx, n)
	if err != nil {
		return "", fmt.Errorf("next.Fact: %w", err)
	}

	p.facts.SetDefault(key, text)

	return text, nil
}
