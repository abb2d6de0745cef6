package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/swimbase/internal/sdif"
)

// Meet represents one swim meet and collects every result swum at it.
type Meet struct {
	ID           uuid.UUID
	Organization sdif.Organization
	Name         string
	City         string
	AddressOne   string
	StartDate    time.Time
	EndDate      time.Time

	MeetType   sdif.MeetType
	State      sdif.State
	AddressTwo string
	PostalCode string
	Country    sdif.Country
	Course     sdif.Course
	// Altitude is in feet above sea level, -1 when not reported.
	Altitude int

	MeetResults []*MeetResult
}

// NewMeet creates a meet with the mandatory fields. Optional fields are set
// directly on the returned struct.
func NewMeet(org sdif.Organization, name, city, addressOne string, startDate, endDate time.Time) (*Meet, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: meet name is empty", ErrInvalidInput)
	}
	return &Meet{
		ID:           uuid.New(),
		Organization: org,
		Name:         name,
		City:         city,
		AddressOne:   addressOne,
		StartDate:    startDate,
		EndDate:      endDate,
		Altitude:     -1,
	}, nil
}

// AddMeetResult appends a result swum at this meet.
func (m *Meet) AddMeetResult(mr *MeetResult) {
	m.MeetResults = append(m.MeetResults, mr)
}
