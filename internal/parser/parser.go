// Package parser loads meet result interchange files (.cl2) into the
// in-memory database. Files are fixed-width record streams; each line's
// two-character header selects the record type. Malformed rows are skipped
// and counted, never fatal.
package parser

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/metrics"
	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/sdif"
)

// d0LineLength is the required length of a result detail row after the
// trailing newline is stripped.
const d0LineLength = 160

// Result cells holding these tokens carry no swim time.
var ignoredResults = map[string]bool{
	"NT": true, "NS": true, "DNF": true, "DQ": true, "SCR": true,
}

// Processor is the file-reading state machine. Meet, club, and swimmer
// context records set the interpretation of the detail rows that follow
// them, and a terminator row resets all three.
type Processor struct {
	db    *models.Database
	log   *logrus.Logger
	stats *LoadStats

	meet    *models.Meet
	club    *models.Club
	swimmer *models.Swimmer
}

// New creates a processor that loads into db.
func New(db *models.Database, log *logrus.Logger) *Processor {
	return &Processor{
		db:    db,
		log:   log,
		stats: NewLoadStats(),
	}
}

// Stats returns the running load statistics.
func (p *Processor) Stats() *LoadStats {
	return p.stats
}

// ReadDirectory loads every .cl2 file under root, walking recursively.
func (p *Processor) ReadDirectory(root string) error {
	start := time.Now()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".cl2") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	p.log.WithField("files", len(paths)).Info("Loading meet result files")
	for _, path := range paths {
		if err := p.ReadFile(path); err != nil {
			return err
		}
	}

	p.stats.LoadDuration = time.Since(start)
	metrics.LoadDuration.Observe(p.stats.LoadDuration.Seconds())
	dbStats := p.db.Stats()
	metrics.UpdateDatabaseSizes(dbStats.Clubs, dbStats.Swimmers, dbStats.Meets, dbStats.MeetResults)
	p.stats.Log(p.log)
	return nil
}

// ReadFile loads a single .cl2 file.
func (p *Processor) ReadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < 2 {
			continue
		}
		switch line[:2] {
		case "B1":
			p.processB1(line)
		case "C1":
			p.processC1(line)
		case "D0":
			p.processD0(line)
		case "D3":
			p.processD3(line)
		case "Z0":
			p.processZ0()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p.stats.FilesRead++
	metrics.FilesReadTotal.Inc()
	return nil
}

// ReadCl2 loads all .cl2 files under root into a fresh database.
func ReadCl2(root string, log *logrus.Logger) (*models.Database, *LoadStats, error) {
	db := models.NewDatabase()
	p := New(db, log)
	if err := p.ReadDirectory(root); err != nil {
		return nil, p.Stats(), err
	}
	return db, p.Stats(), nil
}

// field returns the trimmed slice [start, end) of line, or "" when the line
// is too short to hold it.
func field(line string, start, end int) string {
	if len(line) < end {
		if len(line) <= start {
			return ""
		}
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

// parseDate parses a MMDDYYYY date field.
func parseDate(s string) (time.Time, error) {
	return time.Parse("01022006", s)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// processB1 starts a new meet context.
func (p *Processor) processB1(line string) {
	org, _ := sdif.ParseOrganization(field(line, 2, 3))
	name := field(line, 11, 41)
	addressOne := field(line, 41, 63)
	city := field(line, 85, 105)

	startDate, err := parseDate(field(line, 121, 129))
	if err != nil {
		p.skipRow("bad_meet_date", line)
		p.meet = nil
		return
	}
	endDate, err := parseDate(field(line, 129, 137))
	if err != nil {
		p.skipRow("bad_meet_date", line)
		p.meet = nil
		return
	}

	meet, err := models.NewMeet(org, name, city, addressOne, startDate, endDate)
	if err != nil {
		p.skipRow("bad_meet", line)
		p.meet = nil
		return
	}
	meet.AddressTwo = field(line, 63, 85)
	meet.PostalCode = field(line, 107, 117)
	if state, ok := sdif.ParseState(field(line, 105, 107)); ok {
		meet.State = state
	}
	if country, ok := sdif.ParseCountry(field(line, 117, 120)); ok {
		meet.Country = country
	}
	if meetType, ok := sdif.ParseMeetType(field(line, 120, 121)); ok {
		meet.MeetType = meetType
	}
	if course, ok := sdif.ParseCourse(field(line, 149, 150)); ok {
		meet.Course = course
	}
	if altitude := field(line, 137, 141); altitude != "" {
		meet.Altitude = atoiDefault(altitude, -1)
	}

	p.meet = meet
	p.db.AddMeet(meet)
}

// processC1 sets the club context. Unattached headers clear the context so
// the following detail rows carry no team affiliation.
func (p *Processor) processC1(line string) {
	if p.meet == nil {
		p.skipRow("club_without_meet", line)
		return
	}

	lscCode := field(line, 11, 13)
	teamCode := field(line, 13, 17)
	fullName := field(line, 17, 47)

	if isUnattached(lscCode, teamCode, fullName) {
		p.club = nil
		return
	}

	org, _ := sdif.ParseOrganization(field(line, 2, 3))
	lsc, _ := sdif.ParseLSC(lscCode)

	// Reuse the existing club for this (team code, LSC) pair, filling in
	// fields earlier files left blank.
	var club *models.Club
	for _, c := range p.db.Clubs {
		if c.TeamCode == teamCode && c.LSC == lsc {
			club = c
			break
		}
	}

	if club != nil {
		p.mergeClubFields(club, line)
	} else {
		var err error
		club, err = models.NewClub(org, teamCode, lsc, fullName)
		if err != nil {
			p.skipRow("bad_club", line)
			p.club = nil
			return
		}
		p.mergeClubFields(club, line)
		p.db.AddClub(club)
	}

	if !club.HasMeet(p.meet) {
		club.AddMeet(p.meet)
	}
	p.club = club
}

func (p *Processor) mergeClubFields(club *models.Club, line string) {
	if club.AbbreviatedName == "" {
		club.AbbreviatedName = field(line, 47, 63)
	}
	if club.AddressOne == "" {
		club.AddressOne = field(line, 63, 85)
	}
	if club.AddressTwo == "" {
		club.AddressTwo = field(line, 85, 107)
	}
	if club.City == "" {
		club.City = field(line, 107, 127)
	}
	if club.State == "" {
		if state, ok := sdif.ParseState(field(line, 127, 129)); ok {
			club.State = state
		}
	}
	if club.PostalCode == "" {
		club.PostalCode = field(line, 129, 139)
	}
	if club.Country == "" {
		if country, ok := sdif.ParseCountry(field(line, 139, 142)); ok {
			club.Country = country
		}
	}
	if club.Region == sdif.RegionUnknown {
		if region, ok := sdif.ParseRegion(field(line, 142, 143)); ok {
			club.Region = region
		}
	}
}

// isUnattached detects the headers meets use for unaffiliated swimmers.
func isUnattached(lscCode, teamCode, fullName string) bool {
	upperTeam := strings.ToUpper(teamCode)
	lowerName := strings.ToLower(fullName)
	if lscCode == "UN" || upperTeam == "UN" {
		return true
	}
	if strings.Contains(lowerName, "unattached") {
		return true
	}
	if strings.Contains(upperTeam, "UN") &&
		(strings.Contains(lowerName, "unat") || strings.Contains(lowerName, "unnat")) {
		return true
	}
	return false
}

// processZ0 ends the current file section.
func (p *Processor) processZ0() {
	p.meet = nil
	p.club = nil
	p.swimmer = nil
}
