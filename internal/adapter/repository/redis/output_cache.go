package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

// CachingResolver is a read-through cache in front of an OutputDetailResolver.
//
// Only details of spent outputs are stored: until an output is spent its metadata
// can still change. Cache failures never fail a lookup.
type CachingResolver struct {
	next     usecase.OutputDetailResolver
	cache    *Cache
	ttl      time.Duration
	logger   zerolog.Logger
	observer CacheObserver
}

// CacheObserver is notified about cache hits and misses.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// NewCachingResolver creates a new CachingResolver.
func NewCachingResolver(next usecase.OutputDetailResolver, cache *Cache, ttl time.Duration, logger zerolog.Logger) *CachingResolver {
	return &CachingResolver{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// WithObserver sets the observer notified about cache hits and misses.
func (r *CachingResolver) WithObserver(observer CacheObserver) *CachingResolver {
	r.observer = observer
	return r
}

type cachedDetail struct {
	Amount                   string `json:"amount"`
	TransactionID            string `json:"transaction_id"`
	TransactionIDSpent       string `json:"transaction_id_spent"`
	MilestoneTimestampBooked uint32 `json:"milestone_timestamp_booked"`
}

// ResolveOutput returns the cached detail of outputID or fetches it from the wrapped resolver.
func (r *CachingResolver) ResolveOutput(ctx context.Context, network, outputID string) (*domain.OutputDetail, error) {
	key := outputKey(network, outputID)

	data, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached cachedDetail
		if err := json.Unmarshal(data, &cached); err == nil {
			if r.observer != nil {
				r.observer.CacheHit()
			}
			return &domain.OutputDetail{
				Amount:                   cached.Amount,
				TransactionID:            cached.TransactionID,
				TransactionIDSpent:       cached.TransactionIDSpent,
				MilestoneTimestampBooked: cached.MilestoneTimestampBooked,
			}, nil
		}
		r.logger.Warn().Str("output_id", outputID).Msg("discarding corrupt cached output")
	case errors.Is(err, redis.Nil):
	default:
		r.logger.Warn().Err(err).Str("output_id", outputID).Msg("output cache read failed")
	}

	if r.observer != nil {
		r.observer.CacheMiss()
	}

	detail, err := r.next.ResolveOutput(ctx, network, outputID)
	if err != nil || detail == nil || detail.TransactionIDSpent == "" {
		return detail, err
	}

	data, err = json.Marshal(cachedDetail{
		Amount:                   detail.Amount,
		TransactionID:            detail.TransactionID,
		TransactionIDSpent:       detail.TransactionIDSpent,
		MilestoneTimestampBooked: detail.MilestoneTimestampBooked,
	})
	if err == nil {
		err = r.cache.Set(ctx, key, data, r.ttl)
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("output_id", outputID).Msg("output cache write failed")
	}

	return detail, nil
}

func outputKey(network, outputID string) string {
	return "output:" + network + ":" + outputID
}
