package models

import (
	"testing"
	"time"

	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

func testMeet(t *testing.T, start time.Time) *Meet {
	t.Helper()
	m, err := NewMeet(sdif.OrgUSASwimming, "Summer Invite", "Fresno", "123 Pool Ln", start, start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func testResult(t *testing.T, meet *Meet, event sdif.Event, finalTime swimtime.Time, ageClass string) *MeetResult {
	t.Helper()
	mr := NewMeetResult(meet)
	mr.Organization = sdif.OrgUSASwimming
	mr.Session = sdif.Finals
	mr.DateOfSwim = meet.StartDate
	mr.Event = event
	mr.EventNumber = "1"
	mr.EventSex = sdif.Female
	mr.FinalTime = finalTime
	mr.SwimmerFirstName = "Jane"
	mr.SwimmerLastName = "Doe"
	mr.SwimmerSex = sdif.Female
	mr.SwimmerAgeClass = ageClass
	if err := mr.Validate(); err != nil {
		t.Fatal(err)
	}
	return mr
}

func TestBirthdayRangeFromAgeRecords(t *testing.T) {
	ev, err := sdif.NewEvent(100, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	s.AddMeetResult(testResult(t, testMeet(t, date(2024, time.July, 1)), ev, swimtime.MustNew(1, 2, 30), "12"))
	s.AddMeetResult(testResult(t, testMeet(t, date(2025, time.January, 15)), ev, swimtime.MustNew(1, 1, 80), "12"))

	minBirth, maxBirth := s.BirthdayRange()
	if !sameDate(minBirth, date(2012, time.January, 16)) {
		t.Errorf("minBirth = %v, want 2012-01-16", minBirth)
	}
	if !sameDate(maxBirth, date(2012, time.July, 1)) {
		t.Errorf("maxBirth = %v, want 2012-07-01", maxBirth)
	}

	minAge, maxAge := s.AgeRange(date(2025, time.June, 1))
	if minAge != 12 || maxAge != 13 {
		t.Errorf("AgeRange = (%d, %d), want (12, 13)", minAge, maxAge)
	}
}

func TestBirthdayRangeKnownBirthday(t *testing.T) {
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Birthday = date(2010, time.March, 3)
	minBirth, maxBirth := s.BirthdayRange()
	if !sameDate(minBirth, s.Birthday) || !sameDate(maxBirth, s.Birthday) {
		t.Error("known birthday should collapse the range to a point")
	}
}

func TestBirthdayRangeNoRecords(t *testing.T) {
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	minBirth, maxBirth := s.BirthdayRange()
	if !minBirth.Before(maxBirth) {
		t.Error("default range should be non-degenerate")
	}
	minAge, maxAge := s.AgeRange(time.Now())
	if minAge != 1 || maxAge != 99 {
		t.Errorf("default AgeRange = (%d, %d), want (1, 99)", minAge, maxAge)
	}
}

func TestBestMeetResult(t *testing.T) {
	free100, err := sdif.NewEvent(100, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	back100, err := sdif.NewEvent(100, sdif.Backstroke, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	meet := testMeet(t, date(2024, time.July, 1))
	slow := testResult(t, meet, free100, swimtime.MustNew(1, 5, 0), "12")
	fast := testResult(t, meet, free100, swimtime.MustNew(1, 2, 10), "12")
	other := testResult(t, meet, back100, swimtime.MustNew(1, 10, 0), "12")
	s.AddMeetResult(slow)
	s.AddMeetResult(fast)
	s.AddMeetResult(other)

	if got := s.BestMeetResult(free100); got != fast {
		t.Errorf("BestMeetResult returned %v, want the faster swim", got)
	}
	fly100, err := sdif.NewEvent(100, sdif.Butterfly, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.BestMeetResult(fly100); got != nil {
		t.Error("unswum event should return nil")
	}
}

func TestMostRecentSwimTracking(t *testing.T) {
	ev, err := sdif.NewEvent(50, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.DateOfMostRecentSwim().IsZero() {
		t.Error("new swimmer should have no recent swim")
	}
	s.AddMeetResult(testResult(t, testMeet(t, date(2025, time.March, 1)), ev, swimtime.MustNew(0, 30, 0), "12"))
	s.AddMeetResult(testResult(t, testMeet(t, date(2024, time.March, 1)), ev, swimtime.MustNew(0, 29, 0), "11"))
	if !sameDate(s.DateOfMostRecentSwim(), date(2025, time.March, 1)) {
		t.Errorf("most recent swim = %v, want 2025-03-01", s.DateOfMostRecentSwim())
	}
}

func TestUpdateClub(t *testing.T) {
	oldClub, err := NewClub(sdif.OrgUSASwimming, "AAAA", sdif.LSC("SN"), "Old Club")
	if err != nil {
		t.Fatal(err)
	}
	newClub, err := NewClub(sdif.OrgUSASwimming, "BBBB", sdif.LSC("SN"), "New Club")
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	s.UpdateClub(oldClub)
	if s.Club != oldClub || len(oldClub.Swimmers) != 1 {
		t.Fatal("first UpdateClub should attach the swimmer")
	}
	s.UpdateClub(newClub)
	if s.Club != newClub {
		t.Error("club pointer should move")
	}
	if len(oldClub.Swimmers) != 0 {
		t.Error("old roster should drop the swimmer")
	}
	if len(newClub.Swimmers) != 1 || newClub.Swimmers[0] != s {
		t.Error("new roster should hold the swimmer")
	}
}

func TestFindSwimmerWithBirthday(t *testing.T) {
	db := NewDatabase()
	s, err := NewSwimmer("Catherine", "Durance", sdif.Female, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	s.MiddleInitial = "A"
	s.Birthday = date(1953, time.January, 15)
	db.AddSwimmer(s)

	// Exact name match.
	if got := db.FindSwimmerWithBirthday("Catherine", "A", "Durance", s.Birthday); got != s {
		t.Error("exact match should find the swimmer")
	}
	// Truncated first name still lands within Hamming distance 1.
	if got := db.FindSwimmerWithBirthday("Catherine", "", "Durance", s.Birthday); got != s {
		t.Error("missing middle initial should still match")
	}
	// Wrong birthday never matches.
	if got := db.FindSwimmerWithBirthday("Catherine", "A", "Durance", date(1953, time.January, 16)); got != nil {
		t.Error("different birthday should not match")
	}
	// Different name at the same birthday.
	if got := db.FindSwimmerWithBirthday("Zebulon", "", "Quimby", s.Birthday); got != nil {
		t.Error("different name should not match")
	}
}

func TestDatabaseLookupsAndStats(t *testing.T) {
	db := NewDatabase()
	club, err := NewClub(sdif.OrgUSASwimming, "DART", sdif.LSC("SN"), "Davis Arden Racing Team")
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSwimmer("Jane", "Doe", sdif.Female, "ABC123DEF456", club)
	if err != nil {
		t.Fatal(err)
	}
	s.LongID = "010110JAN*DOE*"
	db.AddClub(club)
	db.AddSwimmer(s)

	if db.FindClub("DART") != club {
		t.Error("FindClub by team code failed")
	}
	if db.FindClub("NONE") != nil {
		t.Error("unknown team code should return nil")
	}
	if db.FindSwimmerWithShortID("ABC123DEF456") != s {
		t.Error("short ID lookup failed")
	}
	if db.FindSwimmerWithLongID("010110JAN*DOE*") != s {
		t.Error("long ID lookup failed")
	}

	stats := db.Stats()
	if stats.Clubs != 1 || stats.Swimmers != 1 || stats.Meets != 0 || stats.MeetResults != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestNormalizeAgeClass(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"12", "12", false},
		{"3", "NA", false},
		{"100", "NA", false},
		{"JR", "JR", false},
		{"sr", "sr", false},
		{"", "", false},
		{"XX", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeAgeClass(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeAgeClass(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizeAgeClass(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
