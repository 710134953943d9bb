package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/adoptafacil/internal/domain"
)

const (
	listCacheKeyPrefix = "adoptafacil:list:"
	genCacheKeyPrefix  = "adoptafacil:gen:"
)

// ListCache stores serialized FindAll results next to a per-entity generation
// counter. Invalidate bumps the generation; SetIfGeneration writes only while the
// generation still equals the value read before the store was queried.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Generation(ctx context.Context, genKey string) (int64, error)
	SetIfGeneration(ctx context.Context, key, genKey string, gen int64, value []byte, ttl time.Duration) (bool, error)
	Invalidate(ctx context.Context, key, genKey string) error
}

type store[T any] interface {
	Save(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
}

// cachedRepository keeps the last FindAll result in a ListCache until the next Save.
// Cache failures never fail the call; the underlying store stays authoritative.
type cachedRepository[T any] struct {
	next   store[T]
	cache  ListCache
	key    string
	genKey string
	ttl    time.Duration
	// scrub strips fields that must not leave the store, applied before caching.
	scrub  func(T) T
	logger *zap.Logger
}

// NewCachedUserRepository wraps a UserRepository with a list cache. Password hashes
// are never cached, so users served from the cache carry an empty Password.
func NewCachedUserRepository(next UserRepository, cache ListCache, ttl time.Duration, logger *zap.Logger) UserRepository {
	return newCached[domain.User](next, cache, "user", ttl, logger, func(u domain.User) domain.User {
		u.Password = ""
		return u
	})
}

// NewCachedAdopterRepository wraps an AdopterRepository with a list cache.
func NewCachedAdopterRepository(next AdopterRepository, cache ListCache, ttl time.Duration, logger *zap.Logger) AdopterRepository {
	return newCached[domain.Adopter](next, cache, "adopter", ttl, logger, nil)
}

// NewCachedDonationRepository wraps a DonationRepository with a list cache.
func NewCachedDonationRepository(next DonationRepository, cache ListCache, ttl time.Duration, logger *zap.Logger) DonationRepository {
	return newCached[domain.Donation](next, cache, "donation", ttl, logger, nil)
}

func newCached[T any](next store[T], cache ListCache, entity string, ttl time.Duration, logger *zap.Logger, scrub func(T) T) *cachedRepository[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedRepository[T]{
		next:   next,
		cache:  cache,
		key:    listCacheKeyPrefix + entity,
		genKey: genCacheKeyPrefix + entity,
		ttl:    ttl,
		scrub:  scrub,
		logger: logger,
	}
}

func (r *cachedRepository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.next.Save(ctx, entity); err != nil {
		return err
	}
	if err := r.cache.Invalidate(ctx, r.key, r.genKey); err != nil {
		r.logger.Warn("list cache invalidation failed", zap.String("key", r.key), zap.Error(err))
	}
	return nil
}

func (r *cachedRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	raw, ok, err := r.cache.Get(ctx, r.key)
	if err != nil {
		r.logger.Warn("list cache read failed", zap.String("key", r.key), zap.Error(err))
	}
	if ok {
		var cached []T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		r.logger.Warn("list cache entry corrupt", zap.String("key", r.key))
	}

	gen, genErr := r.cache.Generation(ctx, r.genKey)
	if genErr != nil {
		r.logger.Warn("list cache generation read failed", zap.String("key", r.genKey), zap.Error(genErr))
	}

	result, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if genErr == nil {
		r.writeBack(ctx, gen, result)
	}
	return result, nil
}

// writeBack stores result unless a Save bumped the generation since gen was read.
func (r *cachedRepository[T]) writeBack(ctx context.Context, gen int64, result []T) {
	payload := result
	if r.scrub != nil {
		payload = make([]T, len(result))
		for i, v := range result {
			payload[i] = r.scrub(v)
		}
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		r.logger.Warn("list cache encode failed", zap.String("key", r.key), zap.Error(err))
		return
	}
	stored, err := r.cache.SetIfGeneration(ctx, r.key, r.genKey, gen, encoded, r.ttl)
	if err != nil {
		r.logger.Warn("list cache write failed", zap.String("key", r.key), zap.Error(err))
		return
	}
	if !stored {
		r.logger.Debug("list cache write skipped after concurrent save", zap.String("key", r.key))
	}
}

func (r *cachedRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.next.FindByID(ctx, id)
}
