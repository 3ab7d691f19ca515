package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/wishwall/internal/database"
	"github.com/example/wishwall/internal/models"
	"github.com/google/uuid"
)

// errNoChange aborts a store update without persisting anything.
var errNoChange = errors.New("no change")

type WishRepository struct {
	store *database.Store
}

func NewWishRepository(store *database.Store) *WishRepository {
	return &WishRepository{store: store}
}

func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	wish.ID = uuid.NewString()
	wish.CreatedAt = time.Now().UnixMilli()

	err := r.store.Update(func(doc *models.Document) error {
		doc.Wishes = append(doc.Wishes, *wish)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wish, nil
}

// GetWishByID returns nil without error when no wish matches.
func (r *WishRepository) GetWishByID(ctx context.Context, id string) (*models.Wish, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Wishes {
		if doc.Wishes[i].ID == id {
			wish := doc.Wishes[i]
			return &wish, nil
		}
	}
	return nil, nil
}

func (r *WishRepository) GetAllWishes(ctx context.Context) ([]models.Wish, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Wishes, nil
}

// UpdateWish applies fn to the matching wish inside a single locked
// read-modify-write cycle. It reports whether the wish was found; if fn
// returns an error the document is not saved.
func (r *WishRepository) UpdateWish(ctx context.Context, id string, fn func(wish *models.Wish) error) (bool, error) {
	found := false
	err := r.store.Update(func(doc *models.Document) error {
		for i := range doc.Wishes {
			if doc.Wishes[i].ID == id {
				found = true
				return fn(&doc.Wishes[i])
			}
		}
		return errNoChange
	})
	if errors.Is(err, errNoChange) {
		err = nil
	}
	return found, err
}
