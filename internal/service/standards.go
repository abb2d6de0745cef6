package service

import (
	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/standards"
	"github.com/yourusername/swimbase/internal/swimtime"
)

// StandardsService answers time-standard qualification queries.
type StandardsService struct {
	store *Store
}

// NewStandardsService creates a new standards service
func NewStandardsService(store *Store) *StandardsService {
	return &StandardsService{store: store}
}

// QualifiedStandards returns every standard the swim qualifies for, from
// slowest to fastest cut.
func (s *StandardsService) QualifiedStandards(t swimtime.Time, event sdif.Event, age int, sex sdif.Sex) ([]standards.Standard, error) {
	catalog, err := s.store.Standards()
	if err != nil {
		return nil, err
	}
	return catalog.QualifiedStandards(t, event, age, sex), nil
}

// BestStandard returns the fastest standard the swim qualifies for, and
// whether it qualifies for any at all.
func (s *StandardsService) BestStandard(t swimtime.Time, event sdif.Event, age int, sex sdif.Sex) (standards.Standard, bool, error) {
	qualified, err := s.QualifiedStandards(t, event, age, sex)
	if err != nil || len(qualified) == 0 {
		return 0, false, err
	}
	return qualified[len(qualified)-1], true, nil
}
