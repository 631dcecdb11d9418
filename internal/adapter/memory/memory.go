// Package memory implements an in-memory record store for development and testing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fitdiary/internal/domain"
)

// DB implements an in-memory record store. A positive quota caps the total
// size of stored values, mimicking a browser storage limit.
type DB struct {
	mu      sync.Mutex
	records map[domain.RecordKey][]byte
	quota   int
	saves   int
}

// New creates a new in-memory store without a quota.
func New() *DB {
	return &DB{records: make(map[domain.RecordKey][]byte)}
}

// NewWithQuota creates a store that rejects writes growing past quota bytes.
func NewWithQuota(quota int) *DB {
	db := New()
	db.quota = quota
	return db
}

// Ensure interfaces are met.
var _ domain.RecordStore = (*DB)(nil)

// Load returns a copy of the value stored under key.
func (db *DB) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return append([]byte(nil), v...), nil
}

// Save stores a copy of value under key.
func (db *DB) Save(ctx context.Context, key domain.RecordKey, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.quota > 0 {
		size := len(value)
		for k, v := range db.records {
			if k != key {
				size += len(v)
			}
		}
		if size > db.quota {
			return fmt.Errorf("save %s (%d bytes): %w", key, size, domain.ErrQuotaExceeded)
		}
	}
	db.records[key] = append([]byte(nil), value...)
	db.saves++
	return nil
}

// Put stores raw bytes without any checks. Tests use it to seed corrupt data.
func (db *DB) Put(key domain.RecordKey, value []byte) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.records[key] = append([]byte(nil), value...)
}

// Saves returns the number of successful writes.
func (db *DB) Saves() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.saves
}
