package redisstore

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitdiary/internal/domain"
)

func TestStore_Load(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db, "test:")
	ctx := context.Background()

	mock.ExpectGet("test:" + string(domain.KeyProfile)).SetErr(redis.Nil)
	_, err := store.Load(ctx, domain.KeyProfile)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	mock.ExpectGet("test:" + string(domain.KeyProfile)).SetVal(`{"name":"A"}`)
	got, err := store.Load(ctx, domain.KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"A"}`, string(got))

	mock.ExpectGet("test:" + string(domain.KeyDiary)).SetErr(errors.New("connection refused"))
	_, err = store.Load(ctx, domain.KeyDiary)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db, "")
	ctx := context.Background()

	mock.ExpectSet(string(domain.KeyMeals), `[]`, 0).SetVal("OK")
	require.NoError(t, store.Save(ctx, domain.KeyMeals, []byte(`[]`)))

	mock.ExpectSet(string(domain.KeyMeals), `[{}]`, 0).SetErr(errors.New("OOM command not allowed"))
	assert.Error(t, store.Save(ctx, domain.KeyMeals, []byte(`[{}]`)))

	assert.NoError(t, mock.ExpectationsWereMet())
}
