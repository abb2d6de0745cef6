package standards

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/swimbase/internal/sdif"
	"github.com/yourusername/swimbase/internal/swimtime"
)

// cutoffTable maps row label ("100 FR") and column label ("SCY-F") to the
// qualifying cutoff. A zero cutoff means the cell was not published and
// never qualifies.
type cutoffTable map[string]map[string]swimtime.Time

// Catalog holds the loaded cutoff tables for every standard and age group.
type Catalog struct {
	tables map[Standard]map[string]cutoffTable // age group label → table
}

// Load reads cutoff tables from dir. Each standard and age group pair lives
// in its own CSV file named "{SHORT}-{AGEGROUP}.csv" (e.g. "B-11-12.csv",
// "SECT-18U.csv") with an Event column of row labels and one column per
// "{COURSE}-{SEX}" pair. Missing files leave gaps that simply never
// qualify; unreadable files are errors.
func Load(dir string, log *logrus.Logger) (*Catalog, error) {
	cat := &Catalog{tables: make(map[Standard]map[string]cutoffTable)}
	for _, std := range Standards() {
		cat.tables[std] = make(map[string]cutoffTable)
		for _, ag := range std.AgeGroups() {
			path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", std.Short(), ag.Label))
			table, err := loadTable(path)
			if os.IsNotExist(err) {
				log.WithField("file", filepath.Base(path)).Debug("No cutoff table")
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
			cat.tables[std][ag.Label] = table
		}
	}
	return cat, nil
}

func loadTable(path string) (cutoffTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 || len(rows[0]) < 2 || rows[0][0] != "Event" {
		return nil, fmt.Errorf("malformed cutoff table")
	}

	columns := rows[0][1:]
	table := make(cutoffTable, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(columns)+1 {
			return nil, fmt.Errorf("row %q has %d cells, want %d", row[0], len(row)-1, len(columns))
		}
		cells := make(map[string]swimtime.Time, len(columns))
		for i, col := range columns {
			cutoff, err := parseCutoff(row[i+1])
			if err != nil {
				return nil, fmt.Errorf("row %q column %q: %w", row[0], col, err)
			}
			cells[col] = cutoff
		}
		table[row[0]] = cells
	}
	return table, nil
}

// parseCutoff reads one cutoff cell. Published tables mark some cells with
// a trailing asterisk and leave unoffered events blank or zero.
func parseCutoff(cell string) (swimtime.Time, error) {
	cell = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell), "*"))
	if cell == "" || cell == "0" {
		return swimtime.Time{}, nil
	}
	return swimtime.Parse(cell)
}

// Cutoff returns the published cutoff for the given cell, and whether the
// cell exists at all.
func (c *Catalog) Cutoff(std Standard, ageGroup sdif.AgeGroup, rowLabel, columnLabel string) (swimtime.Time, bool) {
	table, ok := c.tables[std][ageGroup.Label]
	if !ok {
		return swimtime.Time{}, false
	}
	cells, ok := table[rowLabel]
	if !ok {
		return swimtime.Time{}, false
	}
	cutoff, ok := cells[columnLabel]
	return cutoff, ok
}

// QualifiedStandards returns every standard the swim qualifies for, from
// slowest to fastest cut. Callers wanting the single best standard take the
// last entry.
func (c *Catalog) QualifiedStandards(t swimtime.Time, event sdif.Event, age int, sex sdif.Sex) []Standard {
	if t.IsZero() {
		return nil
	}
	row := RowLabel(event)
	column := ColumnLabel(event.Course(), sex)

	var qualified []Standard
	for _, std := range Standards() {
		var ageGroup sdif.AgeGroup
		found := false
		for _, ag := range std.AgeGroups() {
			if ag.Contains(age) {
				ageGroup = ag
				found = true
				break
			}
		}
		if !found {
			continue
		}

		cutoff, ok := c.Cutoff(std, ageGroup, row, column)
		if !ok || cutoff.IsZero() {
			continue
		}
		if t.Cmp(cutoff) <= 0 {
			qualified = append(qualified, std)
		}
	}
	return qualified
}

// RowLabel returns the cutoff-table row for an event. Distance freestyle
// rows are shared between the yards and meters distances swum over the same
// duration.
func RowLabel(event sdif.Event) string {
	dist := event.Distance()
	stroke := event.Stroke()
	if stroke == sdif.Freestyle {
		switch dist {
		case 400, 500:
			return "400/500 FR"
		case 800, 1000:
			return "800/1000 FR"
		case 1500, 1650:
			return "1500/1650 FR"
		}
	}
	return fmt.Sprintf("%d %s", dist, stroke.Short())
}

// ColumnLabel returns the cutoff-table column for a course and sex.
func ColumnLabel(course sdif.Course, sex sdif.Sex) string {
	return fmt.Sprintf("%s-%s", course, sex)
}
