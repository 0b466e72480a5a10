package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/weekplan/option"
)

// CachedSource memoizes a Source through an explicit Cache. Cache failures
// other than a miss are logged and the upstream source is used instead.
type CachedSource struct {
	src    Source
	cache  Cache
	params map[string]string
	log    *zap.Logger
}

// NewCachedSource puts cache in front of src. params become part of every
// Key so that lists fetched under different parameters never collide.
// A nil logger disables logging.
func NewCachedSource(src Source, cache Cache, params map[string]string, log *zap.Logger) *CachedSource {
	if log == nil {
		log = zap.NewNop()
	}

	return &CachedSource{src: src, cache: cache, params: params, log: log}
}

// Key returns the cache key used for category and term.
func (s *CachedSource) Key(category, term string) Key {
	return Key{Category: category, Term: term, Params: s.params}
}

// Options implements Source.
func (s *CachedSource) Options(ctx context.Context, category, term string) ([]option.Option, error) {
	key := s.Key(category, term)

	opts, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.log.Debug("catalog cache hit", zap.Stringer("key", key), zap.Int("count", len(opts)))
		return opts, nil
	case !errors.Is(err, ErrCacheMiss):
		s.log.Warn("catalog cache read failed", zap.Stringer("key", key), zap.Error(err))
	}

	opts, err = s.src.Options(ctx, category, term)
	if err != nil {
		return nil, err
	}
	if err = s.cache.Set(ctx, key, opts); err != nil {
		s.log.Warn("catalog cache write failed", zap.Stringer("key", key), zap.Error(err))
	}
	s.log.Debug("catalog fetched", zap.Stringer("key", key), zap.Int("count", len(opts)))

	return opts, nil
}

// Invalidate drops the cached list for category and term.
func (s *CachedSource) Invalidate(ctx context.Context, category, term string) error {
	return s.cache.Delete(ctx, s.Key(category, term))
}

// Clear drops every cached list.
func (s *CachedSource) Clear(ctx context.Context) error {
	return s.cache.Clear(ctx)
}
