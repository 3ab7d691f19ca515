package repository

import (
	"context"
	"time"

	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/models"
	"github.com/google/uuid"
)

type LikeRepository struct {
	store *database.Store
}

func NewLikeRepository(store *database.Store) *LikeRepository {
	return &LikeRepository{store: store}
}

// ToggleLike inserts a like row for (wishID, user) or removes the existing
// one, and returns the resulting like count for the wish. Both halves of the
// toggle run inside one locked update, so the pair can never hold two rows.
func (r *LikeRepository) ToggleLike(ctx context.Context, wishID, user string) (int, error) {
	count := 0
	err := r.store.Update(func(doc *models.Document) error {
		idx := -1
		for i, like := range doc.Likes {
			if like.WishID == wishID && like.User == user {
				idx = i
				break
			}
		}
		if idx == -1 {
			doc.Likes = append(doc.Likes, models.Like{
				ID:        uuid.NewString(),
				WishID:    wishID,
				User:      user,
				CreatedAt: time.Now().UnixMilli(),
			})
		} else {
			doc.Likes = append(doc.Likes[:idx], doc.Likes[idx+1:]...)
		}
		for _, like := range doc.Likes {
			if like.WishID == wishID {
				count++
			}
		}
		return nil
	})
	return count, err
}

// CountLikes counts rows for a wish. An unknown wish simply counts zero.
func (r *LikeRepository) CountLikes(ctx context.Context, wishID string) (int, error) {
	doc, err := r.store.Load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, like := range doc.Likes {
		if like.WishID == wishID {
			count++
		}
	}
	return count, nil
}
