package repository

import (
	"context"
	"sort"
	"time"

	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/models"
	"github.com/google/uuid"
)

type CommentRepository struct {
	store *database.Store
}

func NewCommentRepository(store *database.Store) *CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UnixMilli()

	err := r.store.Update(func(doc *models.Document) error {
		doc.Comments = append(doc.Comments, *comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentsByWish returns the wish's comments ordered by ascending
// creation time. The result is never nil.
func (r *CommentRepository) GetCommentsByWish(ctx context.Context, wishID string) ([]models.Comment, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	for _, comment := range doc.Comments {
		if comment.WishID == wishID {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt < comments[j].CreatedAt
	})
	return comments, nil
}
