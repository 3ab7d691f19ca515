package database

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/example/wishwall/internal/models"
)

// Store owns the on-disk document. Every operation reads the whole file and
// writes it back whole; the mutex serializes the read-modify-write cycle so
// concurrent mutations cannot clobber each other.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the document from disk. A missing file yields an empty
// document; missing collections are default-initialized so callers never see
// a nil slice.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save writes the document back to disk, replacing it whole.
func (s *Store) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn against a freshly loaded document and persists the result,
// holding the lock for the whole cycle. If fn returns an error nothing is
// written.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*models.Document, error) {
	var doc models.Document

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read store: %w", err)
		}
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}

	if doc.Wishes == nil {
		doc.Wishes = []models.Wish{}
	}
	if doc.Likes == nil {
		doc.Likes = []models.Like{}
	}
	if doc.Comments == nil {
		doc.Comments = []models.Comment{}
	}
	return &doc, nil
}

func (s *Store) save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
