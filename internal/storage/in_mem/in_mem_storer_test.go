package in_mem

import (
	"context"
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	storagetest.RunStoreSuite(t, NewStore())
}

func TestStore_ValuesAreCopied(t *testing.T) {
	s := NewStore()
	value := []byte(`"original"`)
	require.NoError(t, s.Set(context.Background(), "k", value))

	value[1] = 'X'
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	got[2] = 'Y'

	again, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, `"original"`, string(again))
}
