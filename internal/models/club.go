package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/swimbase/internal/sdif"
)

// Club represents a swim club and owns back-references to every swimmer,
// meet, and result seen for it in the data.
type Club struct {
	ID           uuid.UUID
	Organization sdif.Organization
	TeamCode     string
	LSC          sdif.LSC
	FullName     string

	AbbreviatedName string
	AddressOne      string
	AddressTwo      string
	City            string
	State           sdif.State
	PostalCode      string
	Country         sdif.Country
	Region          sdif.Region

	Swimmers    []*Swimmer
	Meets       []*Meet
	MeetResults []*MeetResult
}

// NewClub creates a club with the mandatory fields. Optional fields are set
// directly on the returned struct.
func NewClub(org sdif.Organization, teamCode string, lsc sdif.LSC, fullName string) (*Club, error) {
	if teamCode == "" || len(teamCode) > 6 || teamCode != strings.ToUpper(teamCode) {
		return nil, fmt.Errorf("%w: team code %q", ErrInvalidInput, teamCode)
	}
	if fullName == "" {
		return nil, fmt.Errorf("%w: club name is empty", ErrInvalidInput)
	}
	return &Club{
		ID:           uuid.New(),
		Organization: org,
		TeamCode:     teamCode,
		LSC:          lsc,
		FullName:     fullName,
	}, nil
}

// AddSwimmer appends a swimmer to the club roster.
func (c *Club) AddSwimmer(s *Swimmer) {
	c.Swimmers = append(c.Swimmers, s)
}

// AddMeet records that the club had entries at a meet.
func (c *Club) AddMeet(m *Meet) {
	c.Meets = append(c.Meets, m)
}

// AddMeetResult appends a result swum under this club's code.
func (c *Club) AddMeetResult(mr *MeetResult) {
	c.MeetResults = append(c.MeetResults, mr)
}

// HasMeet reports whether the meet is already on the club's meet list.
func (c *Club) HasMeet(m *Meet) bool {
	for _, known := range c.Meets {
		if known == m {
			return true
		}
	}
	return false
}

// FindSwimmerWithShortID searches the roster for the 12-character ID.
func (c *Club) FindSwimmerWithShortID(shortID string) *Swimmer {
	for _, s := range c.Swimmers {
		if s.ShortID == shortID {
			return s
		}
	}
	return nil
}

// FindSwimmerWithLongID searches the roster for the 14-character ID.
func (c *Club) FindSwimmerWithLongID(longID string) *Swimmer {
	for _, s := range c.Swimmers {
		if s.LongID == longID {
			return s
		}
	}
	return nil
}

// FindSwimmerWithBirthday matches a roster swimmer by birthday and name.
// Name comparison goes through the legacy ID encoding with one character of
// slack to absorb truncation and data-entry noise.
func (c *Club) FindSwimmerWithBirthday(firstName, middleInitial, lastName string, birthday time.Time) *Swimmer {
	return findSwimmerWithBirthday(c.Swimmers, firstName, middleInitial, lastName, birthday)
}

func findSwimmerWithBirthday(swimmers []*Swimmer, firstName, middleInitial, lastName string, birthday time.Time) *Swimmer {
	want := GenerateLegacyID(firstName, middleInitial, lastName, birthday)
	for _, s := range swimmers {
		if s.Birthday.IsZero() || !sameDate(s.Birthday, birthday) {
			continue
		}
		got := GenerateLegacyID(s.FirstName, s.MiddleInitial, s.LastName, s.Birthday)
		if HammingDistance(got, want) <= 1 {
			return s
		}
	}
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
