package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/swimbase/internal/sdif"
)

// Swimmer represents one athlete. Results accumulate on the swimmer as files
// are ingested; the club pointer always reflects the most recent affiliation
// seen in the data.
type Swimmer struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Sex       sdif.Sex
	ShortID   string
	Club      *Club

	MiddleInitial      string
	PreferredFirstName string
	// Birthday is zero when the data never carried one. Records written
	// after Jan 2025 omit birthdays, so the range must then be estimated
	// from recorded age classes.
	Birthday    time.Time
	LongID      string
	Citizenship sdif.Country

	Meets       []*Meet
	MeetResults []*MeetResult

	mostRecentSwim time.Time
}

// NewSwimmer creates a swimmer with the mandatory fields. Optional fields
// are set directly on the returned struct.
func NewSwimmer(firstName, lastName string, sex sdif.Sex, shortID string, club *Club) (*Swimmer, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: swimmer name is empty", ErrInvalidInput)
	}
	if shortID != "" && len(shortID) != ShortIDLength {
		return nil, fmt.Errorf("%w: short ID %q", ErrInvalidInput, shortID)
	}
	return &Swimmer{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Sex:       sex,
		ShortID:   shortID,
		Club:      club,
	}, nil
}

// FullName returns "First M Last", omitting the middle initial when absent.
func (s *Swimmer) FullName() string {
	if s.MiddleInitial != "" {
		return fmt.Sprintf("%s %s %s", s.FirstName, s.MiddleInitial, s.LastName)
	}
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}

// AddMeet records that the swimmer competed at a meet.
func (s *Swimmer) AddMeet(m *Meet) {
	s.Meets = append(s.Meets, m)
}

// HasMeet reports whether the meet is already on the swimmer's meet list.
func (s *Swimmer) HasMeet(m *Meet) bool {
	for _, known := range s.Meets {
		if known == m {
			return true
		}
	}
	return false
}

// AddMeetResult appends a result and advances the most-recent-swim marker.
func (s *Swimmer) AddMeetResult(mr *MeetResult) {
	if s.mostRecentSwim.IsZero() || mr.DateOfSwim.After(s.mostRecentSwim) {
		s.mostRecentSwim = mr.DateOfSwim
	}
	s.MeetResults = append(s.MeetResults, mr)
}

// DateOfMostRecentSwim returns the date of the swimmer's latest recorded
// swim, or the zero time if the swimmer has no results.
func (s *Swimmer) DateOfMostRecentSwim() time.Time {
	return s.mostRecentSwim
}

// UpdateClub moves the swimmer to a new club, removing them from the old
// roster when one exists.
func (s *Swimmer) UpdateClub(newClub *Club) {
	if s.Club != nil {
		roster := s.Club.Swimmers
		for i, member := range roster {
			if member == s {
				s.Club.Swimmers = append(roster[:i], roster[i+1:]...)
				break
			}
		}
	}
	newClub.AddSwimmer(s)
	s.Club = newClub
}

// BirthdayRange returns the tightest [min, max] birthday interval consistent
// with what is known. A recorded birthday collapses the interval to a point.
// Otherwise every numeric age class on file narrows the interval: a swimmer
// aged A on date D was born in (D - A - 1 year, D - A year]. With no age
// records at all the range spans ages 1 through 99 as of today.
func (s *Swimmer) BirthdayRange() (minBirth, maxBirth time.Time) {
	if !s.Birthday.IsZero() {
		return s.Birthday, s.Birthday
	}

	type ageRecord struct {
		date time.Time
		age  int
	}
	var records []ageRecord
	for _, mr := range s.MeetResults {
		age, ok := numericAgeClass(mr.SwimmerAgeClass)
		if !ok {
			continue
		}
		records = append(records, ageRecord{date: mr.Meet.StartDate, age: age})
	}

	if len(records) == 0 {
		today := time.Now()
		return today.AddDate(-99, 0, 0), today.AddDate(-1, 0, 0)
	}

	minBirth = records[0].date.AddDate(-records[0].age-1, 0, 1)
	maxBirth = records[0].date.AddDate(-records[0].age, 0, 0)
	for _, rec := range records[1:] {
		lo := rec.date.AddDate(-rec.age-1, 0, 1)
		hi := rec.date.AddDate(-rec.age, 0, 0)
		if lo.After(minBirth) {
			minBirth = lo
		}
		if hi.Before(maxBirth) {
			maxBirth = hi
		}
	}
	return minBirth, maxBirth
}

// AgeRange returns the swimmer's [min, max] possible age on the given date.
func (s *Swimmer) AgeRange(onDate time.Time) (minAge, maxAge int) {
	minBirth, maxBirth := s.BirthdayRange()
	maxAge = CalculateAge(minBirth, onDate)
	minAge = CalculateAge(maxBirth, onDate)
	return minAge, maxAge
}

// BestMeetResult returns the swimmer's fastest result in the event, or nil
// if the swimmer has never swum it.
func (s *Swimmer) BestMeetResult(event sdif.Event) *MeetResult {
	var best *MeetResult
	for _, mr := range s.MeetResults {
		if mr.Event != event {
			continue
		}
		if best == nil || mr.FinalTime.Less(best.FinalTime) {
			best = mr
		}
	}
	return best
}

func numericAgeClass(ageClass string) (int, bool) {
	if ageClass == "" {
		return 0, false
	}
	age := 0
	for _, c := range ageClass {
		if c < '0' || c > '9' {
			return 0, false
		}
		age = age*10 + int(c-'0')
	}
	return age, true
}
