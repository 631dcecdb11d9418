package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitdiary/internal/adapter/memory"
	"fitdiary/internal/domain"
)

type countingStore struct {
	*memory.DB
	loads int
}

func (c *countingStore) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	c.loads++
	return c.DB.Load(ctx, key)
}

func TestStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	next := &countingStore{DB: memory.New()}
	require.NoError(t, next.DB.Save(ctx, domain.KeyTargets, []byte(`{"proteinG":1}`)))

	store := New(next, 0)
	for i := 0; i < 3; i++ {
		got, err := store.Load(ctx, domain.KeyTargets)
		require.NoError(t, err)
		assert.Equal(t, `{"proteinG":1}`, string(got))
	}
	assert.Equal(t, 1, next.loads)

	_, err := store.Load(ctx, domain.KeyDiary)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStore_WriteThrough(t *testing.T) {
	ctx := context.Background()
	next := &countingStore{DB: memory.New()}
	store := New(next, 0)

	require.NoError(t, store.Save(ctx, domain.KeyMeals, []byte(`[1]`)))
	got, err := store.Load(ctx, domain.KeyMeals)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
	assert.Zero(t, next.loads, "saved value is served from cache")

	raw, err := next.DB.Load(ctx, domain.KeyMeals)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(raw))
}

func TestStore_FailedSaveEvicts(t *testing.T) {
	ctx := context.Background()
	next := &countingStore{DB: memory.NewWithQuota(4)}
	store := New(next, 0)

	require.NoError(t, store.Save(ctx, domain.KeyMeals, []byte(`[1]`)))
	err := store.Save(ctx, domain.KeyMeals, []byte(`[1,2,3]`))
	require.True(t, errors.Is(err, domain.ErrQuotaExceeded))

	got, err := store.Load(ctx, domain.KeyMeals)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
	assert.Equal(t, 1, next.loads)
}
