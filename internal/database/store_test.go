package database

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/example/wishwall/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "db.json"))
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Wishes)
	assert.Empty(t, doc.Likes)
	assert.Empty(t, doc.Comments)
}

func TestLoadDefaultsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wishes":[{"id":"w1","title":"Shoes"}]}`), 0644))
	store := NewStore(path)

	doc, err := store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Wishes, 1)
	assert.NotNil(t, doc.Likes)
	assert.NotNil(t, doc.Comments)

	// A defaulted collection must survive the next save so later loads see it.
	require.NoError(t, store.Save(doc))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"likes"`)
	assert.Contains(t, string(data), `"comments"`)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := NewStore(path)

	_, err := store.Load()
	assert.Error(t, err)
}

func TestUpdateRoundTrip(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(doc *models.Document) error {
		doc.Wishes = append(doc.Wishes, models.Wish{ID: "w1", Title: "Shoes"})
		return nil
	})
	require.NoError(t, err)

	doc, err := store.Load()
	require.NoError(t, err)
	require.Len(t, doc.Wishes, 1)
	assert.Equal(t, "Shoes", doc.Wishes[0].Title)
}

func TestUpdateErrorDoesNotPersist(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(doc *models.Document) error {
		doc.Wishes = append(doc.Wishes, models.Wish{ID: "w1"})
		return assert.AnError
	})
	require.Error(t, err)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Wishes)
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	store := newTestStore(t)

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Update(func(doc *models.Document) error {
				doc.Wishes = append(doc.Wishes, models.Wish{ID: string(rune('a' + n))})
				return nil
			})
		}(i)
	}
	wg.Wait()

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Wishes, writers)
}
