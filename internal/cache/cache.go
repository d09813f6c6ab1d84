package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache stores opaque values for a limited time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// DefaultLoadTimeout bounds a shared load once it no longer follows the
// context of the request that started it.
const DefaultLoadTimeout = 30 * time.Second

// Loader memoizes expensive reads on top of a Cache. Concurrent misses for the
// same key share one load. Backend failures are logged and the loader is called
// directly, so a broken cache never breaks a read.
type Loader struct {
	cache       Cache
	ttl         time.Duration
	loadTimeout time.Duration
	group       singleflight.Group
	logger      *zap.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

func NewLoader(c Cache, ttl time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		cache:       c,
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		logger:      logger,
		gens:        make(map[string]uint64),
	}
}

// Invalidate drops keys. A load already in flight for one of them will not
// store its result. Errors are logged only.
func (l *Loader) Invalidate(ctx context.Context, keys ...string) {
	l.mu.Lock()
	for _, key := range keys {
		l.gens[key]++
		l.group.Forget(key)
	}
	l.mu.Unlock()

	if err := l.cache.Delete(ctx, keys...); err != nil {
		l.logger.Warn("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (l *Loader) generation(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gens[key]
}

// Load returns the cached value for key or calls fn and caches its result.
// Results of failed calls are never cached. fn runs detached from the
// cancellation of ctx because other callers may be waiting on it; each
// caller still stops waiting when its own ctx is done.
func Load[T any](ctx context.Context, l *Loader, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok, err := l.cache.Get(ctx, key); err != nil {
		l.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		l.logger.Warn("cache entry undecodable, reloading", zap.String("key", key))
	}

	ch := l.group.DoChan(key, func() (any, error) {
		gen := l.generation(key)

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.loadTimeout)
		defer cancel()

		v, err := fn(loadCtx)
		if err != nil {
			return v, err
		}
		l.store(loadCtx, key, gen, v)
		return v, nil
	})

	select {
	case res := <-ch:
		v, _ := res.Val.(T)
		return v, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// store caches v unless key was invalidated after the load began. The
// generation is checked again after the write to catch an Invalidate that
// raced with it.
func (l *Loader) store(ctx context.Context, key string, gen uint64, v any) {
	if l.generation(key) != gen {
		l.logger.Debug("cache key invalidated during load, not storing", zap.String("key", key))
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		l.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := l.cache.Set(ctx, key, raw, l.ttl); err != nil {
		l.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		return
	}

	if l.generation(key) != gen {
		if err := l.cache.Delete(ctx, key); err != nil {
			l.logger.Warn("cache invalidate failed", zap.Strings("keys", []string{key}), zap.Error(err))
		}
	}
}
