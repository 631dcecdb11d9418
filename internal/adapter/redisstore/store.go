// Package redisstore implements the record store on Redis.
package redisstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"fitdiary/internal/domain"
)

// Store keeps each record as a plain string value under its key.
type Store struct {
	client *redis.Client
	prefix string
}

var _ domain.RecordStore = (*Store)(nil)

// NewStore creates a store on client. prefix is prepended to every key.
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Load returns the document stored under key.
func (s *Store) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	cmd := s.client.Get(ctx, s.prefix+string(key))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return []byte(cmd.Val()), nil
}

// Save stores the document under key without expiry.
func (s *Store) Save(ctx context.Context, key domain.RecordKey, value []byte) error {
	return s.client.Set(ctx, s.prefix+string(key), string(value), 0).Err()
}
