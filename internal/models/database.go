package models

import "time"

// Database holds everything loaded from meet result files. It is a plain
// in-memory object graph; lookups walk the flat lists and entity links do
// the rest.
type Database struct {
	Clubs       []*Club
	Swimmers    []*Swimmer
	Meets       []*Meet
	MeetResults []*MeetResult
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// AddClub registers a club.
func (db *Database) AddClub(c *Club) {
	db.Clubs = append(db.Clubs, c)
}

// AddSwimmer registers a swimmer.
func (db *Database) AddSwimmer(s *Swimmer) {
	db.Swimmers = append(db.Swimmers, s)
}

// AddMeet registers a meet.
func (db *Database) AddMeet(m *Meet) {
	db.Meets = append(db.Meets, m)
}

// AddMeetResult registers a meet result.
func (db *Database) AddMeetResult(mr *MeetResult) {
	db.MeetResults = append(db.MeetResults, mr)
}

// FindClub returns the club with the given team code, or nil.
func (db *Database) FindClub(teamCode string) *Club {
	for _, c := range db.Clubs {
		if c.TeamCode == teamCode {
			return c
		}
	}
	return nil
}

// FindSwimmerWithShortID returns the swimmer with the 12-character ID, or nil.
func (db *Database) FindSwimmerWithShortID(shortID string) *Swimmer {
	for _, s := range db.Swimmers {
		if s.ShortID == shortID {
			return s
		}
	}
	return nil
}

// FindSwimmerWithLongID returns the swimmer with the 14-character ID, or nil.
func (db *Database) FindSwimmerWithLongID(longID string) *Swimmer {
	for _, s := range db.Swimmers {
		if s.LongID == longID {
			return s
		}
	}
	return nil
}

// FindSwimmerWithBirthday matches a swimmer by birthday and name across the
// whole database. See Club.FindSwimmerWithBirthday for matching rules.
func (db *Database) FindSwimmerWithBirthday(firstName, middleInitial, lastName string, birthday time.Time) *Swimmer {
	return findSwimmerWithBirthday(db.Swimmers, firstName, middleInitial, lastName, birthday)
}

// Stats summarizes database entity counts.
type Stats struct {
	Clubs       int
	Swimmers    int
	Meets       int
	MeetResults int
}

// Stats returns entity counts for the database.
func (db *Database) Stats() Stats {
	return Stats{
		Clubs:       len(db.Clubs),
		Swimmers:    len(db.Swimmers),
		Meets:       len(db.Meets),
		MeetResults: len(db.MeetResults),
	}
}
