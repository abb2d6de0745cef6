package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

// NoMaxAge is the event maximum age meaning "no upper limit".
const NoMaxAge = 1000

// MeetResult is one swim by one athlete at one meet. Swimmer identity fields
// are snapshotted from the source row so the record stays faithful to the
// file even after the swimmer entity is deduplicated and renamed.
type MeetResult struct {
	ID           uuid.UUID
	Meet         *Meet
	Swimmer      *Swimmer
	Organization sdif.Organization
	TeamCode     string
	LSC          sdif.LSC
	Session      sdif.Session
	DateOfSwim   time.Time
	Event        sdif.Event
	// EventMinAge is 0 when the event has no lower bound; EventMaxAge is
	// NoMaxAge when it has no upper bound.
	EventMinAge int
	EventMaxAge int
	// EventNumber stays a string because meets use values like "12A".
	EventNumber string
	EventSex    sdif.Sex
	// Heat and Lane are -1 when not reported.
	Heat      int
	Lane      int
	FinalTime swimtime.Time

	// Rank is 0 when not reported.
	Rank              int
	Points            float64
	SeedTime          swimtime.Time
	SeedCourse        sdif.Course
	EventMinTimeClass sdif.EventTimeClass
	EventMaxTimeClass sdif.EventTimeClass

	// Swimmer identity as it appeared on the source row.
	SwimmerFirstName     string
	SwimmerLastName      string
	SwimmerMiddleInitial string
	SwimmerSex           sdif.Sex
	SwimmerShortID       string
	SwimmerLongID        string
	SwimmerAttachStatus  sdif.AttachStatus
	// SwimmerAgeClass is an age ("12") or a school year ("JR"), or empty.
	SwimmerAgeClass    string
	SwimmerBirthday    time.Time
	SwimmerCitizenship sdif.Country

	// Splits maps cumulative distance to split time.
	Splits map[int]swimtime.Time
}

// NewMeetResult creates a result with a fresh ID and unreported heat, lane,
// and altitude-style sentinels in place. Callers fill the remaining fields
// and finish with Validate.
func NewMeetResult(meet *Meet) *MeetResult {
	return &MeetResult{
		ID:          uuid.New(),
		Meet:        meet,
		EventMaxAge: NoMaxAge,
		Heat:        -1,
		Lane:        -1,
	}
}

// Validate checks the result's field invariants.
func (mr *MeetResult) Validate() error {
	if mr.Meet == nil {
		return fmt.Errorf("%w: result has no meet", ErrInvalidInput)
	}
	if mr.TeamCode != "" {
		if len(mr.TeamCode) > 4 || mr.TeamCode != strings.ToUpper(mr.TeamCode) {
			return fmt.Errorf("%w: team code %q", ErrInvalidInput, mr.TeamCode)
		}
	}
	if mr.EventNumber == "" || strings.Contains(mr.EventNumber, " ") {
		return fmt.Errorf("%w: event number %q", ErrInvalidInput, mr.EventNumber)
	}
	if mr.Heat < -1 || mr.Heat > 99 || mr.Lane < -1 || mr.Lane > 99 {
		return fmt.Errorf("%w: heat %d lane %d", ErrInvalidInput, mr.Heat, mr.Lane)
	}
	if mr.FinalTime.IsZero() {
		return fmt.Errorf("%w: result has no final time", ErrInvalidInput)
	}
	if mr.Rank < 0 {
		return fmt.Errorf("%w: rank %d", ErrInvalidInput, mr.Rank)
	}
	if mr.Points < 0 {
		return fmt.Errorf("%w: points %f", ErrInvalidInput, mr.Points)
	}
	if mr.SwimmerFirstName == "" || mr.SwimmerLastName == "" {
		return fmt.Errorf("%w: result has no swimmer name", ErrInvalidInput)
	}
	if mr.SwimmerShortID != "" && len(mr.SwimmerShortID) != ShortIDLength {
		return fmt.Errorf("%w: swimmer short ID %q", ErrInvalidInput, mr.SwimmerShortID)
	}
	if mr.SwimmerLongID != "" && len(mr.SwimmerLongID) != LongIDLength {
		return fmt.Errorf("%w: swimmer long ID %q", ErrInvalidInput, mr.SwimmerLongID)
	}
	return nil
}

// NormalizeAgeClass cleans a raw age-class token. Numeric ages outside
// [4, 99] are corrupt entries and collapse to "NA". Non-numeric values must
// be a school year (FR, SO, JR, SR); anything else returns an error.
func NormalizeAgeClass(ageClass string) (string, error) {
	if ageClass == "" {
		return "", nil
	}
	if age, ok := numericAgeClass(ageClass); ok {
		if age < 4 || age > 99 {
			return "NA", nil
		}
		return ageClass, nil
	}
	switch strings.ToUpper(ageClass) {
	case "FR", "SO", "JR", "SR":
		return ageClass, nil
	}
	return "", fmt.Errorf("%w: age class %q", ErrInvalidInput, ageClass)
}
