package services

import (
	"context"
	"strings"

	"github.com/example/wishwall/internal/models"
	"github.com/example/wishwall/internal/repository"
)

type CommentService struct {
	repo *repository.CommentRepository
	hub  Broadcaster
}

func NewCommentService(repo *repository.CommentRepository, hub Broadcaster) *CommentService {
	return &CommentService{repo: repo, hub: hub}
}

// AddComment appends a comment to the wish and notifies subscribers. The
// text is stored trimmed; whitespace-only text is rejected.
func (s *CommentService) AddComment(ctx context.Context, wishID, user, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment := &models.Comment{
		WishID: wishID,
		User:   user,
		Text:   text,
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	s.hub.Publish("comment:new", created)
	return created, nil
}

func (s *CommentService) GetComments(ctx context.Context, wishID string) ([]models.Comment, error) {
	return s.repo.GetCommentsByWish(ctx, wishID)
}
