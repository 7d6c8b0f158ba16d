package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	memStore := NewMemoryStore()

	// absent key is nil, not an error
	value, err := memStore.Get(ctx, "user_1", KeyTheme)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, memStore.Set(ctx, "user_1", KeyTheme, []byte(`"dark"`)))
	value, err = memStore.Get(ctx, "user_1", KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"dark"`), value)

	// set is a full replace
	require.NoError(t, memStore.Set(ctx, "user_1", KeyTheme, []byte(`"light"`)))
	value, err = memStore.Get(ctx, "user_1", KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"light"`), value)

	require.NoError(t, memStore.Delete(ctx, "user_1", KeyTheme))
	value, err = memStore.Get(ctx, "user_1", KeyTheme)
	require.NoError(t, err)
	assert.Nil(t, value)

	// deleting an absent key is a no-op
	require.NoError(t, memStore.Delete(ctx, "user_1", KeyTheme))
}

func TestMemoryStore_UserScopes(t *testing.T) {
	ctx := context.Background()
	memStore := NewMemoryStore()

	require.NoError(t, memStore.Set(ctx, "user_1", KeyCurrentWeek, []byte("1")))
	require.NoError(t, memStore.Set(ctx, "user_2", KeyCurrentWeek, []byte("2")))

	value, err := memStore.Get(ctx, "user_1", KeyCurrentWeek)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)

	value, err = memStore.Get(ctx, "user_2", KeyCurrentWeek)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
}

func TestMemoryStore_ClearScope(t *testing.T) {
	ctx := context.Background()
	memStore := NewMemoryStore()

	for _, key := range Keys {
		require.NoError(t, memStore.Set(ctx, "user_1", key, []byte("x")))
		require.NoError(t, memStore.Set(ctx, "user_2", key, []byte("y")))
	}

	require.NoError(t, memStore.Clear(ctx, "user_1"))

	// every well-known key of user_1 is gone
	for _, key := range Keys {
		value, err := memStore.Get(ctx, "user_1", key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}
	// user_2 untouched
	for _, key := range Keys {
		value, err := memStore.Get(ctx, "user_2", key)
		require.NoError(t, err)
		assert.Equal(t, []byte("y"), value)
	}
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "user_1:gym-app-theme", UserKey("user_1", KeyTheme))
}
