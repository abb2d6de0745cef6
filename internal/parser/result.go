package parser

import (
	"strconv"
	"time"

	"github.com/yourusername/swimbase/internal/metrics"
	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

// processD0 handles one result detail row. A row carries one swimmer and
// event plus up to three swims (prelim, swim-off, finals), each of which
// becomes its own meet result.
func (p *Processor) processD0(line string) {
	p.stats.RowsProcessed++
	metrics.ResultRowsTotal.Inc()

	if p.meet == nil {
		p.swimmer = nil
		p.skipRow("result_without_meet", line)
		return
	}
	if len(line) != d0LineLength {
		p.swimmer = nil
		p.skipRow("bad_line_length", line)
		return
	}

	shortID := field(line, 39, 51)
	if len(shortID) != models.ShortIDLength {
		p.swimmer = nil
		p.skipRow("bad_short_id", line)
		return
	}
	stroke, ok := sdif.ParseStroke(field(line, 71, 72))
	if !ok {
		p.swimmer = nil
		p.skipRow("bad_stroke", line)
		return
	}
	firstName, middleInitial, lastName, err := models.ParseFullName(field(line, 11, 39))
	if err != nil {
		p.swimmer = nil
		p.skipRow("bad_name", line)
		return
	}
	swimDate, err := parseDate(field(line, 80, 88))
	if err != nil {
		p.swimmer = nil
		p.skipRow("bad_swim_date", line)
		return
	}

	swimmerSex, _ := sdif.ParseSex(field(line, 65, 66))
	ageClass, err := models.NormalizeAgeClass(field(line, 63, 65))
	if err != nil {
		ageClass = ""
	}

	isLegacy := models.IsLegacyID(firstName, lastName, middleInitial, shortID)
	birthday := parseBirthday(line, shortID, isLegacy)
	// A legacy ID also encodes the middle initial.
	if isLegacy && middleInitial == "" && shortID[9] != '*' {
		middleInitial = string(shortID[9])
	}

	org, _ := sdif.ParseOrganization(field(line, 2, 3))
	attach, _ := sdif.ParseAttachStatus(field(line, 51, 52))
	citizenship, _ := sdif.ParseCountry(field(line, 52, 55))
	eventSex, _ := sdif.ParseSex(field(line, 66, 67))
	distance := atoiDefault(field(line, 67, 71), 0)
	eventNumber := field(line, 72, 76)
	minAge, maxAge := parseAgeCode(field(line, 76, 80))

	var teamCode string
	var lsc sdif.LSC
	if p.club != nil {
		teamCode = p.club.TeamCode
		lsc = p.club.LSC
	}

	var seedTime swimtime.Time
	var seedCourse sdif.Course
	if s := field(line, 88, 96); s != "" && !ignoredResults[s] {
		if t, err := swimtime.Parse(s); err == nil {
			seedTime = t
			seedCourse, _ = sdif.ParseCourse(field(line, 96, 97))
		}
	}

	p.resolveSwimmer(firstName, middleInitial, lastName, shortID, swimmerSex,
		citizenship, birthday, isLegacy, swimDate)
	if p.swimmer == nil {
		p.skipRow("bad_swimmer", line)
		return
	}

	swims := []struct {
		session   sdif.Session
		timeField string
		course    string
		heat      int
		lane      int
		rank      int
		points    float64
	}{
		{
			session:   sdif.Prelims,
			timeField: field(line, 97, 105),
			course:    field(line, 105, 106),
			heat:      atoiDefault(field(line, 124, 126), -1),
			lane:      atoiDefault(field(line, 126, 128), -1),
			rank:      parsePlace(field(line, 132, 135)),
		},
		{
			session:   sdif.SwimOffs,
			timeField: field(line, 106, 114),
			course:    field(line, 114, 115),
			heat:      -1,
			lane:      -1,
		},
		{
			session:   sdif.Finals,
			timeField: field(line, 115, 123),
			course:    field(line, 123, 124),
			heat:      atoiDefault(field(line, 128, 130), -1),
			lane:      atoiDefault(field(line, 130, 132), -1),
			rank:      parsePlace(field(line, 135, 138)),
			points:    parsePoints(field(line, 138, 142)),
		},
	}

	for _, swim := range swims {
		if swim.timeField == "" || ignoredResults[swim.timeField] {
			continue
		}
		finalTime, err := swimtime.Parse(swim.timeField)
		if err != nil {
			p.skipRow("bad_time", line)
			continue
		}
		course, ok := sdif.ParseCourse(swim.course)
		if !ok {
			p.skipRow("bad_course", line)
			continue
		}
		event, err := sdif.NewEvent(distance, stroke, course)
		if err != nil {
			p.skipRow("unknown_event", line)
			continue
		}

		mr := models.NewMeetResult(p.meet)
		mr.Organization = org
		mr.TeamCode = teamCode
		mr.LSC = lsc
		mr.Session = swim.session
		mr.DateOfSwim = swimDate
		mr.Event = event
		mr.EventMinAge = minAge
		mr.EventMaxAge = maxAge
		mr.EventNumber = eventNumber
		mr.EventSex = eventSex
		mr.Heat = swim.heat
		mr.Lane = swim.lane
		mr.FinalTime = finalTime
		mr.Rank = swim.rank
		mr.Points = swim.points
		mr.SeedTime = seedTime
		mr.SeedCourse = seedCourse
		mr.Swimmer = p.swimmer
		mr.SwimmerFirstName = firstName
		mr.SwimmerLastName = lastName
		mr.SwimmerMiddleInitial = middleInitial
		mr.SwimmerSex = swimmerSex
		mr.SwimmerShortID = shortID
		mr.SwimmerAttachStatus = attach
		mr.SwimmerAgeClass = ageClass
		mr.SwimmerBirthday = birthday
		mr.SwimmerCitizenship = citizenship

		if err := mr.Validate(); err != nil {
			p.skipRow("invalid_result", line)
			continue
		}

		p.swimmer.AddMeetResult(mr)
		if !p.swimmer.HasMeet(p.meet) {
			p.swimmer.AddMeet(p.meet)
		}
		p.meet.AddMeetResult(mr)
		p.db.AddMeetResult(mr)
		if p.club != nil {
			p.club.AddMeetResult(mr)
		}
		p.stats.ResultsCreated++
		metrics.MeetResultsCreatedTotal.Inc()
	}
}

// resolveSwimmer finds or creates the swimmer the detail row belongs to and
// leaves it in p.swimmer. Lookups run by birthday first, then by short ID,
// checking the current club before the whole database. A swimmer found only
// outside the club is moved to it when the row is the swimmer's newest swim.
func (p *Processor) resolveSwimmer(firstName, middleInitial, lastName, shortID string,
	sex sdif.Sex, citizenship sdif.Country, birthday time.Time, isLegacy bool, swimDate time.Time) {

	// Consecutive rows usually belong to the same swimmer.
	if p.swimmer == nil || p.swimmer.ShortID != shortID {
		p.swimmer = nil
		foundInClub := false

		if !birthday.IsZero() {
			if p.club != nil {
				p.swimmer = p.club.FindSwimmerWithBirthday(firstName, middleInitial, lastName, birthday)
			}
			foundInClub = p.swimmer != nil
			if p.swimmer == nil {
				p.swimmer = p.db.FindSwimmerWithBirthday(firstName, middleInitial, lastName, birthday)
			}
		}

		if p.swimmer == nil {
			if p.club != nil {
				p.swimmer = p.club.FindSwimmerWithShortID(shortID)
			}
			foundInClub = p.swimmer != nil
			if p.swimmer == nil {
				p.swimmer = p.db.FindSwimmerWithShortID(shortID)
			}
		}

		created := false
		if p.swimmer == nil {
			// Legacy-format IDs are derived from the name and change
			// when the swimmer renames, so they are not stored as the
			// modern ID.
			id := shortID
			if isLegacy {
				id = ""
			}
			s, err := models.NewSwimmer(firstName, lastName, sex, id, p.club)
			if err != nil {
				return
			}
			s.MiddleInitial = middleInitial
			s.Birthday = birthday
			s.Citizenship = citizenship
			p.db.AddSwimmer(s)
			if p.club != nil {
				p.club.AddSwimmer(s)
			}
			p.swimmer = s
			p.stats.SwimmersCreated++
			metrics.SwimmersCreatedTotal.Inc()
			created = true
		}

		// A database-only hit means the swimmer shows up under a new
		// club. Move them when this row is their newest swim.
		if p.club != nil && !foundInClub && !created {
			recent := p.swimmer.DateOfMostRecentSwim()
			if recent.IsZero() || recent.Before(swimDate) {
				p.swimmer.UpdateClub(p.club)
			}
		}
	}

	// Backfill attributes the earlier rows did not carry.
	if p.swimmer.ShortID == "" && !isLegacy {
		p.swimmer.ShortID = shortID
	}
	if p.swimmer.MiddleInitial == "" && middleInitial != "" {
		p.swimmer.MiddleInitial = middleInitial
	}
	if p.swimmer.Birthday.IsZero() && !birthday.IsZero() {
		p.swimmer.Birthday = birthday
	}
	if p.swimmer.Citizenship == "" && citizenship != "" {
		p.swimmer.Citizenship = citizenship
	}
}

// processD3 backfills the long-format ID and preferred first name onto the
// swimmer of the preceding detail row.
func (p *Processor) processD3(line string) {
	if p.swimmer == nil {
		return
	}

	longID := field(line, 2, 16)
	preferredName := field(line, 16, 31)

	if len(longID) == models.LongIDLength && p.swimmer.LongID == "" {
		legacy := models.IsLegacyID(p.swimmer.FirstName, p.swimmer.LastName,
			p.swimmer.MiddleInitial, longID)
		if !legacy {
			p.swimmer.LongID = longID
		}
	}
	if preferredName != "" && p.swimmer.PreferredFirstName == "" {
		p.swimmer.PreferredFirstName = preferredName
	}
}

// parseBirthday reads the explicit birthday fields, falling back to the
// date encoded in a legacy ID. Two-digit legacy years past the current
// year's last two digits pivot to the 1900s.
func parseBirthday(line, shortID string, isLegacy bool) time.Time {
	monthStr := field(line, 55, 57)
	dayStr := field(line, 57, 59)
	yearStr := field(line, 59, 63)

	if monthStr != "" && dayStr != "" && yearStr != "" {
		t, err := time.Parse("20060102", yearStr+pad2(monthStr)+pad2(dayStr))
		if err == nil {
			return t
		}
	}
	if isLegacy {
		month := atoiDefault(shortID[0:2], 0)
		day := atoiDefault(shortID[2:4], 0)
		yy := atoiDefault(shortID[4:6], 0)
		year := 2000 + yy
		if yy > time.Now().Year()%100 {
			year = 1900 + yy
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// parseAgeCode splits the four-character event age code into bounds. "UN"
// as the low half means no minimum; "OV" as the high half means no maximum.
func parseAgeCode(code string) (minAge, maxAge int) {
	maxAge = models.NoMaxAge
	if len(code) < 4 {
		return 0, maxAge
	}
	if code[0:2] != "UN" {
		minAge = atoiDefault(code[0:2], 0)
	}
	if code[2:4] != "OV" {
		maxAge = atoiDefault(code[2:4], models.NoMaxAge)
	}
	return minAge, maxAge
}

func parsePlace(s string) int {
	place := atoiDefault(s, 0)
	if place < 0 {
		return 0
	}
	return place
}

func parsePoints(s string) float64 {
	if s == "" {
		return 0
	}
	points, err := strconv.ParseFloat(s, 64)
	if err != nil || points < 0 {
		return 0
	}
	return points
}
