// Package service exposes the query surface over a lazily loaded swim
// database.
package service

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/config"
	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/parser"
	"github.com/yourusername/swimbase/internal/standards"
)

// Store owns the loaded database and cutoff catalog. The first accessor
// call triggers the load; later calls reuse the same instances until
// Reset.
type Store struct {
	cfg *config.Config
	log *logrus.Logger

	mu      sync.Mutex
	db      *models.Database
	catalog *standards.Catalog
	stats   *parser.LoadStats
}

// NewStore creates a store over the configured data directories. Nothing
// is read until the first query.
func NewStore(cfg *config.Config, log *logrus.Logger) *Store {
	return &Store{cfg: cfg, log: log}
}

// Database returns the loaded database, loading it on first use.
func (s *Store) Database() (*models.Database, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.db, nil
}

// Standards returns the loaded cutoff catalog, loading it on first use.
func (s *Store) Standards() (*standards.Catalog, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.catalog, nil
}

// LoadStats returns the ingestion statistics of the current load.
func (s *Store) LoadStats() (*parser.LoadStats, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.stats, nil
}

// Stats returns the database size counts of the current load.
func (s *Store) Stats() (models.Stats, error) {
	db, err := s.Database()
	if err != nil {
		return models.Stats{}, err
	}
	return db.Stats(), nil
}

// Reset discards the loaded database so the next query reloads from disk.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = nil
	s.catalog = nil
	s.stats = nil
}

func (s *Store) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}

	db, stats, err := parser.ReadCl2(s.cfg.Data.MeetResultsDir, s.log)
	if err != nil {
		return fmt.Errorf("loading meet results: %w", err)
	}

	catalog := &standards.Catalog{}
	if dir := s.cfg.Data.TimeStandardsDir; dir != "" {
		catalog, err = standards.Load(dir, s.log)
		if err != nil {
			return fmt.Errorf("loading time standards: %w", err)
		}
	}

	s.db = db
	s.catalog = catalog
	s.stats = stats
	return nil
}
