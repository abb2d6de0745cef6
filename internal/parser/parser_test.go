package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/sdif"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.ErrorLevel)
	return log
}

// record builds a fixed-width line of the given length from (offset, value)
// placements.
func record(length int, fields map[int]string) string {
	buf := []byte(strings.Repeat(" ", length))
	for start, val := range fields {
		copy(buf[start:], val)
	}
	return string(buf)
}

func meetHeader() string {
	return record(160, map[int]string{
		0:   "B1",
		2:   "1",
		11:  "SUMMER CHAMPIONSHIPS",
		41:  "123 POOL LANE",
		85:  "FRESNO",
		105: "CA",
		117: "USA",
		120: "1",
		121: "07152024",
		129: "07172024",
		137: "328",
		149: "Y",
	})
}

func clubHeader(lsc, teamCode, name string) string {
	return record(160, map[int]string{
		0:  "C1",
		2:  "1",
		11: lsc,
		13: teamCode,
		17: name,
	})
}

type d0Options struct {
	name     string
	shortID  string
	birthday string // MMDDYYYY, empty to omit
	ageClass string
	distance string
	stroke   string
	prelim   string
	finals   string
	swimDate string
}

func resultRow(opt d0Options) string {
	fields := map[int]string{
		0:   "D0",
		2:   "1",
		11:  opt.name,
		39:  opt.shortID,
		51:  "A",
		52:  "USA",
		63:  opt.ageClass,
		65:  "F",
		66:  "F",
		67:  opt.distance,
		71:  opt.stroke,
		72:  "5",
		76:  "1314",
		80:  opt.swimDate,
		88:  "1:05.00",
		96:  "Y",
		124: "3",
		126: "4",
		128: "1",
		130: "5",
		132: "10",
		135: "2",
		138: "13.5",
	}
	if opt.birthday != "" {
		fields[55] = opt.birthday[:2]
		fields[57] = opt.birthday[2:4]
		fields[59] = opt.birthday[4:]
	}
	if opt.prelim != "" {
		fields[97] = opt.prelim
		fields[105] = "Y"
	}
	if opt.finals != "" {
		fields[115] = opt.finals
		fields[123] = "Y"
	}
	return record(160, fields)
}

func loadLines(t *testing.T, lines ...string) (*models.Database, *Processor) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "meet.cl2")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	db := models.NewDatabase()
	p := New(db, testLogger())
	if err := p.ReadDirectory(dir); err != nil {
		t.Fatal(err)
	}
	return db, p
}

func TestLoadPrelimAndFinals(t *testing.T) {
	db, p := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			birthday: "06152010",
			ageClass: "14",
			distance: "100",
			stroke:   "1",
			prelim:   "1:04.50",
			finals:   "1:03.20",
			swimDate: "07152024",
		}),
		record(160, map[int]string{0: "Z0"}),
	)

	if got := len(db.Meets); got != 1 {
		t.Fatalf("meets = %d, want 1", got)
	}
	meet := db.Meets[0]
	if meet.Name != "SUMMER CHAMPIONSHIPS" || meet.Altitude != 328 {
		t.Errorf("meet parsed wrong: %+v", meet)
	}
	if meet.Course != sdif.SCY || meet.State != sdif.State("CA") {
		t.Errorf("meet course/state wrong: %v %v", meet.Course, meet.State)
	}

	if got := len(db.Clubs); got != 1 {
		t.Fatalf("clubs = %d, want 1", got)
	}
	club := db.Clubs[0]
	if club.TeamCode != "DART" || club.LSC != sdif.LSC("SN") {
		t.Errorf("club parsed wrong: %+v", club)
	}
	if len(club.Meets) != 1 || club.Meets[0] != meet {
		t.Error("club should be linked to the meet")
	}

	if got := len(db.Swimmers); got != 1 {
		t.Fatalf("swimmers = %d, want 1", got)
	}
	swimmer := db.Swimmers[0]
	if swimmer.FirstName != "Jane" || swimmer.LastName != "Doe" {
		t.Errorf("swimmer name = %q %q", swimmer.FirstName, swimmer.LastName)
	}
	if swimmer.ShortID != "A1B2C3D4E5F6" {
		t.Errorf("short ID = %q", swimmer.ShortID)
	}
	if swimmer.Birthday.IsZero() {
		t.Error("birthday should be set")
	}
	if swimmer.Club != club {
		t.Error("swimmer should belong to the club")
	}

	// One row with prelim and finals times yields two results.
	if got := len(db.MeetResults); got != 2 {
		t.Fatalf("results = %d, want 2", got)
	}
	var prelim, finals *models.MeetResult
	for _, mr := range db.MeetResults {
		switch mr.Session {
		case sdif.Prelims:
			prelim = mr
		case sdif.Finals:
			finals = mr
		}
	}
	if prelim == nil || finals == nil {
		t.Fatal("expected one prelim and one finals result")
	}
	if prelim.FinalTime.String() != "1:04.50" || prelim.Heat != 3 || prelim.Lane != 4 || prelim.Rank != 10 {
		t.Errorf("prelim result wrong: %+v", prelim)
	}
	if finals.FinalTime.String() != "1:03.20" || finals.Heat != 1 || finals.Lane != 5 || finals.Rank != 2 {
		t.Errorf("finals result wrong: %+v", finals)
	}
	if finals.Points != 13.5 {
		t.Errorf("finals points = %v", finals.Points)
	}
	if prelim.Points != 0 {
		t.Errorf("prelim should carry no points: %v", prelim.Points)
	}
	if finals.TeamCode != "DART" {
		t.Errorf("finals team code = %q", finals.TeamCode)
	}
	if finals.EventMinAge != 13 || finals.EventMaxAge != 14 {
		t.Errorf("event ages = %d..%d", finals.EventMinAge, finals.EventMaxAge)
	}

	if p.Stats().ResultsCreated != 2 || p.Stats().SwimmersCreated != 1 {
		t.Errorf("stats wrong: %s", p.Stats())
	}
}

func TestUnattachedClubHeader(t *testing.T) {
	db, _ := loadLines(t,
		meetHeader(),
		clubHeader("UN", "UN", "UNATTACHED"),
		resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			ageClass: "14",
			distance: "50",
			stroke:   "1",
			finals:   "25.10",
			swimDate: "07152024",
		}),
	)

	if len(db.Clubs) != 0 {
		t.Error("unattached header should not create a club")
	}
	if len(db.MeetResults) != 1 {
		t.Fatalf("results = %d, want 1", len(db.MeetResults))
	}
	if db.MeetResults[0].TeamCode != "" {
		t.Error("unattached result should carry no team code")
	}
	if db.Swimmers[0].Club != nil {
		t.Error("unattached swimmer should have no club")
	}
}

func TestMalformedRowsAreSkipped(t *testing.T) {
	short := "D0 garbage"
	db, p := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		short,
		resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			ageClass: "14",
			distance: "50",
			stroke:   "9", // not a stroke code
			finals:   "25.10",
			swimDate: "07152024",
		}),
	)

	if len(db.MeetResults) != 0 {
		t.Errorf("malformed rows should produce no results, got %d", len(db.MeetResults))
	}
	if p.Stats().SkippedTotal() != 2 {
		t.Errorf("skipped = %d, want 2: %v", p.Stats().SkippedTotal(), p.Stats().SkippedRows)
	}
}

func TestIgnoredResultTokens(t *testing.T) {
	row := resultRow(d0Options{
		name:     "DOE, JANE",
		shortID:  "A1B2C3D4E5F6",
		ageClass: "14",
		distance: "50",
		stroke:   "1",
		swimDate: "07152024",
	})
	// Write NT into the finals cell directly.
	buf := []byte(row)
	copy(buf[115:], "NT      ")
	db, _ := loadLines(t, meetHeader(), string(buf))

	if len(db.MeetResults) != 0 {
		t.Error("NT results should be ignored")
	}
	if len(db.Swimmers) != 1 {
		t.Error("swimmer should still be created from an NT row")
	}
}

func TestD3Backfill(t *testing.T) {
	db, _ := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			ageClass: "14",
			distance: "50",
			stroke:   "1",
			finals:   "25.10",
			swimDate: "07152024",
		}),
		record(160, map[int]string{0: "D3", 2: "A1B2C3D4E5F678", 16: "JANIE"}),
	)

	s := db.Swimmers[0]
	if s.LongID != "A1B2C3D4E5F678" {
		t.Errorf("long ID = %q", s.LongID)
	}
	if s.PreferredFirstName != "JANIE" {
		t.Errorf("preferred name = %q", s.PreferredFirstName)
	}
}

func TestD3SkipsLegacyFormatID(t *testing.T) {
	db, _ := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			ageClass: "14",
			distance: "50",
			stroke:   "1",
			finals:   "25.10",
			swimDate: "07152024",
		}),
		// Legacy-format long ID matching the swimmer's own name.
		record(160, map[int]string{0: "D3", 2: "061510JAN*DOE*"}),
	)

	if got := db.Swimmers[0].LongID; got != "" {
		t.Errorf("legacy-format long ID should not be stored, got %q", got)
	}
}

func TestConsecutiveRowsReuseSwimmer(t *testing.T) {
	row := func(distance string) string {
		return resultRow(d0Options{
			name:     "DOE, JANE",
			shortID:  "A1B2C3D4E5F6",
			ageClass: "14",
			distance: distance,
			stroke:   "1",
			finals:   "25.10",
			swimDate: "07152024",
		})
	}
	db, p := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		row("50"),
		row("100"),
	)

	if len(db.Swimmers) != 1 {
		t.Errorf("swimmers = %d, want 1", len(db.Swimmers))
	}
	if p.Stats().SwimmersCreated != 1 {
		t.Errorf("created = %d, want 1", p.Stats().SwimmersCreated)
	}
	if len(db.MeetResults) != 2 {
		t.Errorf("results = %d, want 2", len(db.MeetResults))
	}
}

func TestLegacyIDDerivesBirthday(t *testing.T) {
	db, _ := loadLines(t,
		meetHeader(),
		clubHeader("SN", "DART", "Davis Arden Racing Team"),
		resultRow(d0Options{
			name:     "CHU, THOMAS",
			shortID:  "020981THO*CH",
			ageClass: "43",
			distance: "50",
			stroke:   "1",
			finals:   "25.10",
			swimDate: "07152024",
		}),
	)

	s := db.Swimmers[0]
	if s.ShortID != "" {
		t.Errorf("legacy ID should not be stored as the modern ID, got %q", s.ShortID)
	}
	if s.Birthday.IsZero() {
		t.Fatal("birthday should come from the legacy ID")
	}
	if s.Birthday.Year() != 1981 || int(s.Birthday.Month()) != 2 || s.Birthday.Day() != 9 {
		t.Errorf("birthday = %v, want 1981-02-09", s.Birthday)
	}
}
