package es

import (
	"context"
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/storagetest"
	pkgtesting "github.com/HarshTechPioneers/news-ai-dashboard/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch container test in short mode")
	}
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t, pkgtesting.WithESHeap("384m"))

	store, err := NewStore(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "kv_test",
	})
	require.NoError(t, err)

	storagetest.RunStoreSuite(t, store)

	t.Run("existing index is reused", func(t *testing.T) {
		again, err := NewStore(ctx, ClientConfig{
			Addresses: []string{container.Address},
			IndexName: "kv_test",
		})
		require.NoError(t, err)

		_, err = again.Get(ctx, "never-written")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})
}

func TestNewClient_RequiresAddresses(t *testing.T) {
	_, err := newClient(ClientConfig{})

	assert.Error(t, err)
}
