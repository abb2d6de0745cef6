package service

import (
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/sdif"
)

// SwimmerService answers swimmer lookups and time queries. Best-time
// scans are cached since they walk the full event catalog per swimmer.
type SwimmerService struct {
	store *Store
	cache *gocache.Cache
	log   *logrus.Logger
}

// NewSwimmerService creates a new swimmer service. A non-positive TTL
// caches best times without expiration.
func NewSwimmerService(store *Store, log *logrus.Logger, cacheTTL time.Duration) *SwimmerService {
	if cacheTTL <= 0 {
		cacheTTL = gocache.NoExpiration
	}
	return &SwimmerService{
		store: store,
		cache: gocache.New(cacheTTL, 2*time.Minute),
		log:   log,
	}
}

// GetSwimmer finds a swimmer by the 14-character registration id.
func (s *SwimmerService) GetSwimmer(longID string) (*models.Swimmer, error) {
	if len(longID) != models.LongIDLength {
		return nil, fmt.Errorf("%w: swimmer id must be %d characters, got %q",
			models.ErrInvalidInput, models.LongIDLength, longID)
	}

	db, err := s.store.Database()
	if err != nil {
		return nil, err
	}

	swimmer := db.FindSwimmerWithLongID(longID)
	if swimmer == nil {
		return nil, fmt.Errorf("%w: swimmer %q", models.ErrNotFound, longID)
	}
	return swimmer, nil
}

// BestTimes returns the swimmer's best result for every event they have
// swum, in event catalog order.
func (s *SwimmerService) BestTimes(longID string) ([]*models.MeetResult, error) {
	key := "best:" + longID
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*models.MeetResult), nil
	}

	swimmer, err := s.GetSwimmer(longID)
	if err != nil {
		return nil, err
	}

	var best []*models.MeetResult
	for _, event := range sdif.Events() {
		if result := swimmer.BestMeetResult(event); result != nil {
			best = append(best, result)
		}
	}

	s.cache.Set(key, best, gocache.DefaultExpiration)
	return best, nil
}

// TimeHistory returns every result of the swimmer sorted by event, swim
// date, then session.
func (s *SwimmerService) TimeHistory(longID string) ([]*models.MeetResult, error) {
	swimmer, err := s.GetSwimmer(longID)
	if err != nil {
		return nil, err
	}

	history := make([]*models.MeetResult, len(swimmer.MeetResults))
	copy(history, swimmer.MeetResults)
	sort.SliceStable(history, func(i, j int) bool {
		a, b := history[i], history[j]
		if a.Event != b.Event {
			return a.Event < b.Event
		}
		if !a.DateOfSwim.Equal(b.DateOfSwim) {
			return a.DateOfSwim.Before(b.DateOfSwim)
		}
		return a.Session < b.Session
	})
	return history, nil
}
