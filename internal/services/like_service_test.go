package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLikeFixture(t *testing.T) (*LikeService, *database.Store) {
	t.Helper()
	store := database.NewStore(filepath.Join(t.TempDir(), "db.json"))
	return NewLikeService(repository.NewLikeRepository(store)), store
}

func TestToggleLike(t *testing.T) {
	svc, _ := newLikeFixture(t)
	ctx := context.Background()

	likes, err := svc.ToggleLike(ctx, "w1", "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = svc.ToggleLike(ctx, "w1", "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
}

func TestToggleLikeNeverDuplicates(t *testing.T) {
	svc, store := newLikeFixture(t)
	ctx := context.Background()

	// An odd number of toggles leaves exactly one row for the pair.
	for i := 0; i < 5; i++ {
		_, err := svc.ToggleLike(ctx, "w1", "bob")
		require.NoError(t, err)
	}

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Likes, 1)
	assert.Equal(t, "bob", doc.Likes[0].User)
}

func TestToggleLikeIsPerUser(t *testing.T) {
	svc, _ := newLikeFixture(t)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, "w1", "bob")
	require.NoError(t, err)
	likes, err := svc.ToggleLike(ctx, "w1", "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	// Carol unliking leaves bob's like in place.
	likes, err = svc.ToggleLike(ctx, "w1", "carol")
	require.NoError(t, err)
	assert.Equal(t, 1, likes)
}

func TestGetLikesUnknownWish(t *testing.T) {
	svc, _ := newLikeFixture(t)

	likes, err := svc.GetLikes(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
}

func TestGetLikesCountsAcrossUsers(t *testing.T) {
	svc, _ := newLikeFixture(t)
	ctx := context.Background()

	for _, user := range []string{"a", "b", "c"} {
		_, err := svc.ToggleLike(ctx, "w1", user)
		require.NoError(t, err)
	}
	_, err := svc.ToggleLike(ctx, "w2", "a")
	require.NoError(t, err)

	likes, err := svc.GetLikes(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 3, likes)
}
