package catalog

import (
	"sync"
	"time"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

// Store holds the loaded catalog snapshot. It is populated once at startup;
// the optional watch/refresh paths swap the whole snapshot atomically on a
// successful reload only, so readers never observe a partial catalog.
type Store struct {
	mu       sync.RWMutex
	records  []domain.Record
	loaded   bool
	loadErr  error
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// SetRecords installs a catalog snapshot, clearing any prior load failure.
func (s *Store) SetRecords(records []domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.loaded = true
	s.loadErr = nil
	s.loadedAt = time.Now().UTC()
}

// SetError records a load failure. It never clobbers a good snapshot: a
// failed reload keeps serving the previous catalog.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loadErr = err
}

// Snapshot returns the full catalog in source order.
func (s *Store) Snapshot() ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		if s.loadErr != nil {
			return nil, s.loadErr
		}
		return nil, domain.ErrNotLoaded
	}
	return s.records, nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (domain.Record, error) {
	records, err := s.Snapshot()
	if err != nil {
		return domain.Record{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.Record{}, domain.ErrRecordNotFound
}

// Tags returns the distinct tag values across the catalog, in first-seen
// order, for populating a tag-filter control.
func (s *Store) Tags() ([]string, error) {
	records, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]string, 0, 8)
	for _, rec := range records {
		for _, tag := range rec.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
