// Package cache wraps a record store with an in-process read-through cache.
package cache

import (
	"context"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"fitdiary/internal/domain"
)

const megabyte = 1024 * 1024

// DefaultSize is the cache size used when none is configured.
const DefaultSize = 8 * megabyte

// Store caches the documents of next. Records larger than the freecache
// entry limit are passed through uncached.
type Store struct {
	next  domain.RecordStore
	cache *freecache.Cache
}

var _ domain.RecordStore = (*Store)(nil)

// New wraps next with a cache of size bytes.
func New(next domain.RecordStore, size int) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{next: next, cache: freecache.NewCache(size)}
}

// Load serves key from the cache, falling back to the wrapped store.
func (s *Store) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	if value, err := s.cache.Get([]byte(key)); err == nil {
		log.Tracef("record %s served from cache", key)
		return value, nil
	}
	value, err := s.next.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	s.set(key, value)
	return value, nil
}

// Save writes through to the wrapped store. A failed write evicts the key
// so the next load sees what the store actually holds.
func (s *Store) Save(ctx context.Context, key domain.RecordKey, value []byte) error {
	if err := s.next.Save(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	s.set(key, value)
	return nil
}

func (s *Store) set(key domain.RecordKey, value []byte) {
	if err := s.cache.Set([]byte(key), value, 0); err != nil {
		log.Debugf("cache record %s: %s", key, err)
		s.cache.Del([]byte(key))
	}
}

// HitRate returns the cache hit ratio since creation.
func (s *Store) HitRate() float64 {
	return s.cache.HitRate()
}
