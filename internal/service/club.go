package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/models"
)

// ClubService answers club and roster queries.
type ClubService struct {
	store *Store
	log   *logrus.Logger
}

// NewClubService creates a new club service
func NewClubService(store *Store, log *logrus.Logger) *ClubService {
	return &ClubService{store: store, log: log}
}

// GetClub finds a club by its team code.
func (s *ClubService) GetClub(teamCode string) (*models.Club, error) {
	db, err := s.store.Database()
	if err != nil {
		return nil, err
	}

	club := db.FindClub(strings.ToUpper(strings.TrimSpace(teamCode)))
	if club == nil {
		return nil, fmt.Errorf("%w: club %q", models.ErrNotFound, teamCode)
	}
	return club, nil
}

// GetClubSwimmers returns the club roster, youngest swimmers first.
func (s *ClubService) GetClubSwimmers(teamCode string) ([]*models.Swimmer, error) {
	club, err := s.GetClub(teamCode)
	if err != nil {
		return nil, err
	}

	swimmers := make([]*models.Swimmer, len(club.Swimmers))
	copy(swimmers, club.Swimmers)
	sort.SliceStable(swimmers, func(i, j int) bool {
		minI, _ := swimmers[i].BirthdayRange()
		minJ, _ := swimmers[j].BirthdayRange()
		return minI.After(minJ)
	})
	return swimmers, nil
}
