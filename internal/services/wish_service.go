package services

import (
	"context"

	"github.com/example/wishwall/internal/models"
	"github.com/example/wishwall/internal/repository"
)

// Broadcaster pushes an event to all connected realtime subscribers.
type Broadcaster interface {
	Publish(event string, payload interface{})
}

type WishService struct {
	repo *repository.WishRepository
	hub  Broadcaster
}

func NewWishService(repo *repository.WishRepository, hub Broadcaster) *WishService {
	return &WishService{repo: repo, hub: hub}
}

// CreateWish appends a new pending wish and notifies subscribers. Title and
// description are taken as-is; the client is responsible for requiring them.
func (s *WishService) CreateWish(ctx context.Context, title, description, imageURL string) (*models.Wish, error) {
	wish := &models.Wish{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Status:      models.StatusPending,
		Fulfilled:   false,
		FulfilledBy: nil,
	}

	created, err := s.repo.CreateWish(ctx, wish)
	if err != nil {
		return nil, err
	}
	s.hub.Publish("wish:new", created)
	return created, nil
}

func (s *WishService) GetWishByID(ctx context.Context, id string) (*models.Wish, error) {
	wish, err := s.repo.GetWishByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, ErrNotFound
	}
	return wish, nil
}

func (s *WishService) GetAllWishes(ctx context.Context) ([]models.Wish, error) {
	return s.repo.GetAllWishes(ctx)
}

// FulfillWish performs the terminal pending → fulfilled transition. A wish
// already fulfilled by either the status field or the legacy boolean cannot
// be fulfilled again.
func (s *WishService) FulfillWish(ctx context.Context, id, name string) error {
	found, err := s.repo.UpdateWish(ctx, id, func(wish *models.Wish) error {
		if wish.IsFulfilled() {
			return ErrAlreadyFulfilled
		}
		wish.MarkFulfilled(name)
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
