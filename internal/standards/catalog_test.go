package standards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()
	writeTable(t, dir, "B-13-14.csv",
		"Event,SCY-F,SCY-M\n"+
			"100 FR,1:15.00,1:13.00\n"+
			"400/500 FR,6:40.00,6:30.00\n")
	writeTable(t, dir, "BB-13-14.csv",
		"Event,SCY-F,SCY-M\n"+
			"100 FR,1:05.00,1:03.00\n"+
			"400/500 FR,0,5:50.00\n")
	writeTable(t, dir, "AGC-14.csv",
		"Event,SCY-F,SCY-M\n"+
			"100 FR,59.00*,57.00\n")
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	cat, err := Load(dir, log)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestQualifiedStandardsOrder(t *testing.T) {
	cat := testCatalog(t)
	free100, err := sdif.NewEvent(100, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}

	got := cat.QualifiedStandards(swimtime.MustNew(1, 2, 0), free100, 14, sdif.Female)
	if len(got) != 2 || got[0] != B || got[1] != BB {
		t.Fatalf("1:02.00 should make B then BB, got %v", got)
	}
	// The last entry is the best standard achieved.
	if best := got[len(got)-1]; best != BB {
		t.Errorf("best standard = %v, want BB", best)
	}

	got = cat.QualifiedStandards(swimtime.MustNew(0, 58, 50), free100, 14, sdif.Female)
	if len(got) != 3 || got[2] != AGC {
		t.Fatalf("58.50 should add AGC, got %v", got)
	}

	// Cut times are inclusive.
	got = cat.QualifiedStandards(swimtime.MustNew(1, 5, 0), free100, 14, sdif.Female)
	if len(got) != 2 || got[1] != BB {
		t.Errorf("equal to the cut should qualify, got %v", got)
	}
}

func TestZeroCutoffNeverQualifies(t *testing.T) {
	cat := testCatalog(t)
	free500, err := sdif.NewEvent(500, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}

	// The BB 400/500 FR cell for girls is zero (unpublished).
	got := cat.QualifiedStandards(swimtime.MustNew(5, 0, 0), free500, 14, sdif.Female)
	if len(got) != 1 || got[0] != B {
		t.Errorf("zero cutoff must not qualify, got %v", got)
	}

	// The same swim for boys sees a published BB cut.
	got = cat.QualifiedStandards(swimtime.MustNew(5, 0, 0), free500, 14, sdif.Male)
	if len(got) != 2 || got[1] != BB {
		t.Errorf("published cutoff should qualify, got %v", got)
	}
}

func TestRowLabelCollapsesDistanceFreestyle(t *testing.T) {
	cases := []struct {
		distance int
		stroke   sdif.Stroke
		course   sdif.Course
		want     string
	}{
		{400, sdif.Freestyle, sdif.LCM, "400/500 FR"},
		{500, sdif.Freestyle, sdif.SCY, "400/500 FR"},
		{1000, sdif.Freestyle, sdif.SCY, "800/1000 FR"},
		{1650, sdif.Freestyle, sdif.SCY, "1500/1650 FR"},
		{200, sdif.Backstroke, sdif.SCY, "200 BK"},
		{100, sdif.IndividualMedley, sdif.SCY, "100 IM"},
	}
	for _, tt := range cases {
		ev, err := sdif.NewEvent(tt.distance, tt.stroke, tt.course)
		if err != nil {
			t.Fatal(err)
		}
		if got := RowLabel(ev); got != tt.want {
			t.Errorf("RowLabel(%v) = %q, want %q", ev, got, tt.want)
		}
	}
}

func TestColumnLabel(t *testing.T) {
	if got := ColumnLabel(sdif.LCM, sdif.Female); got != "LCM-F" {
		t.Errorf("ColumnLabel = %q", got)
	}
}

func TestLoadToleratesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	cat, err := Load(dir, log)
	if err != nil {
		t.Fatal(err)
	}
	free100, err := sdif.NewEvent(100, sdif.Freestyle, sdif.SCY)
	if err != nil {
		t.Fatal(err)
	}
	if got := cat.QualifiedStandards(swimtime.MustNew(0, 50, 0), free100, 14, sdif.Female); got != nil {
		t.Errorf("empty catalog should qualify nothing, got %v", got)
	}
}

func TestAgeGroupFamilies(t *testing.T) {
	if got := len(B.AgeGroups()); got != 5 {
		t.Errorf("B family size = %d, want 5", got)
	}
	if got := AGC.AgeGroups()[1]; got != sdif.Age11 {
		t.Errorf("AGC second group = %v, want single age 11", got)
	}
	if got := len(OT.AgeGroups()); got != 2 {
		t.Errorf("OT family size = %d, want 2", got)
	}
	if Standards()[0] != B || Standards()[len(Standards())-1] != OT {
		t.Error("declaration order must run B through OT")
	}
}
