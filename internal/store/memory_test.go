package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/loopy/internal/board"
	"github.com/robalobadob/loopy/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g, err := game.New(game.ModeSolo, board.Easy, 7)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Same(t, g, got, "sessions are shared, not copied")

	_, err = s.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g, err := game.New(game.ModeSolo, board.Easy, 7)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, g))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(ctx, g)
			_, _ = s.Get(ctx, g.ID)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
}
