// Package storagetest holds the behaviour every storage.Store backend must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func RunStoreSuite(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "never-written")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		value := []byte(`[{"id":1,"summary":"• one"}]`)
		require.NoError(t, store.Set(ctx, "savedSummaries", value))

		got, err := store.Get(ctx, "savedSummaries")

		require.NoError(t, err)
		assert.JSONEq(t, string(value), string(got))
	})

	t.Run("set replaces whole value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "replace", []byte(`[1,2,3]`)))
		require.NoError(t, store.Set(ctx, "replace", []byte(`[]`)))

		got, err := store.Get(ctx, "replace")

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a", []byte(`"first"`)))
		require.NoError(t, store.Set(ctx, "b", []byte(`"second"`)))

		a, err := store.Get(ctx, "a")
		require.NoError(t, err)
		b, err := store.Get(ctx, "b")
		require.NoError(t, err)

		assert.Equal(t, `"first"`, string(a))
		assert.Equal(t, `"second"`, string(b))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
