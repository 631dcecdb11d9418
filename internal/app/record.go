// Package app holds the application state and the services behind each view.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"fitdiary/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Value is implemented by every named record type.
type Value[T any] interface {
	Clone() T
	Normalized() T
}

// SaveErrorFunc observes a failed write. The in-memory value is kept.
type SaveErrorFunc func(key domain.RecordKey, err error)

// Record is one named slot of the root state: an in-memory value mirrored to
// the record store after every update.
type Record[T Value[T]] struct {
	key      domain.RecordKey
	store    domain.RecordStore
	fallback func() T
	onErr    SaveErrorFunc

	mu    sync.RWMutex
	value T
}

// NewRecord creates a record slot holding the fallback value until
// Rehydrate is called.
func NewRecord[T Value[T]](key domain.RecordKey, store domain.RecordStore, fallback func() T) *Record[T] {
	return &Record[T]{key: key, store: store, fallback: fallback, value: fallback()}
}

// Key returns the storage key of the record.
func (r *Record[T]) Key() domain.RecordKey {
	return r.key
}

// OnSaveError registers an observer for failed writes.
func (r *Record[T]) OnSaveError(fn SaveErrorFunc) {
	r.mu.Lock()
	r.onErr = fn
	r.mu.Unlock()
}

// Rehydrate loads the stored value. A missing or unreadable value falls back
// to the default; it never fails.
func (r *Record[T]) Rehydrate(ctx context.Context) {
	v := r.load(ctx)
	r.mu.Lock()
	r.value = v
	r.mu.Unlock()
}

func (r *Record[T]) load(ctx context.Context) T {
	raw, err := r.store.Load(ctx, r.key)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return r.fallback()
	}
	if err != nil {
		log.Warnf("load %s: %s, using defaults", r.key, err)
		return r.fallback()
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warnf("decode %s: %s, using defaults", r.key, err)
		return r.fallback()
	}
	return v.Normalized()
}

// Get returns a deep copy of the current value.
func (r *Record[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value.Clone()
}

// Update applies fn to a deep copy of the current value. When fn succeeds
// the result becomes the current value and is persisted; a failed write is
// reported to the observer and otherwise ignored. Writes are serialized so
// the store always ends with the last in-memory value.
func (r *Record[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(r.value.Clone())
	if err != nil {
		var zero T
		return zero, err
	}
	next = next.Normalized()
	r.value = next
	r.persist(context.WithoutCancel(ctx), next)
	return next.Clone(), nil
}

func (r *Record[T]) persist(ctx context.Context, v T) {
	raw, err := json.Marshal(v)
	if err == nil {
		err = r.store.Save(ctx, r.key, raw)
	}
	if err == nil {
		return
	}
	log.Warnf("save %s: %s, keeping in-memory value", r.key, err)
	if r.onErr != nil {
		r.onErr(r.key, err)
	}
}
