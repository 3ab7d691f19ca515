package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/models"
	"github.com/example/wishwall/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentService, *database.Store, *captureHub) {
	t.Helper()
	store := database.NewStore(filepath.Join(t.TempDir(), "db.json"))
	hub := &captureHub{}
	return NewCommentService(repository.NewCommentRepository(store), hub), store, hub
}

func TestAddComment(t *testing.T) {
	svc, _, hub := newCommentFixture(t)

	comment, err := svc.AddComment(context.Background(), "w1", "bob", "  nice wish  ")
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "w1", comment.WishID)
	assert.Equal(t, "bob", comment.User)
	assert.Equal(t, "nice wish", comment.Text)
	assert.NotZero(t, comment.CreatedAt)

	require.Equal(t, []string{"comment:new"}, hub.events)
}

func TestAddCommentRejectsBlankText(t *testing.T) {
	svc, store, hub := newCommentFixture(t)

	_, err := svc.AddComment(context.Background(), "w1", "bob", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
	assert.Empty(t, hub.events)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Comments)
}

func TestGetCommentsOrderedByCreation(t *testing.T) {
	svc, store, _ := newCommentFixture(t)

	// Seed out of order to make the sort observable.
	err := store.Update(func(doc *models.Document) error {
		doc.Comments = append(doc.Comments,
			models.Comment{ID: "c3", WishID: "w1", User: "a", Text: "third", CreatedAt: 300},
			models.Comment{ID: "c1", WishID: "w1", User: "b", Text: "first", CreatedAt: 100},
			models.Comment{ID: "c2", WishID: "w1", User: "c", Text: "second", CreatedAt: 200},
			models.Comment{ID: "x", WishID: "w2", User: "d", Text: "other wish", CreatedAt: 50},
		)
		return nil
	})
	require.NoError(t, err)

	comments, err := svc.GetComments(context.Background(), "w1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i := 1; i < len(comments); i++ {
		assert.LessOrEqual(t, comments[i-1].CreatedAt, comments[i].CreatedAt)
	}
	assert.Equal(t, "first", comments[0].Text)
}

func TestGetCommentsEmpty(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	comments, err := svc.GetComments(context.Background(), "w1")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
