package services

import (
	"context"

	"github.com/example/wishwall/internal/repository"
)

type LikeService struct {
	repo *repository.LikeRepository
}

func NewLikeService(repo *repository.LikeRepository) *LikeService {
	return &LikeService{repo: repo}
}

// ToggleLike likes the wish for the user, or unlikes it if a like already
// exists. The new total like count for the wish is returned. Like toggles
// are deliberately not broadcast.
func (s *LikeService) ToggleLike(ctx context.Context, wishID, user string) (int, error) {
	return s.repo.ToggleLike(ctx, wishID, user)
}

// GetLikes counts likes for a wish. The wish is not required to exist; an
// unknown id counts zero.
func (s *LikeService) GetLikes(ctx context.Context, wishID string) (int, error) {
	return s.repo.CountLikes(ctx, wishID)
}
