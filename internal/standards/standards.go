// Package standards holds motivational time-standard cutoffs (B through
// Olympic Trials) and answers which standards a swim qualifies for.
package standards

import (
	"github.com/yourusername/swimbase/internal/sdif"
)

// Standard identifies one published time standard. Declaration order runs
// from slowest to fastest cut; qualification lists preserve this order, so
// the last entry of a list is the highest standard achieved.
type Standard int

const (
	B Standard = iota
	BB
	A
	AGC
	AA
	FW
	AAA
	AAAA
	SECT
	FUT
	JNAT
	NAT
	OT
)

var standardShorts = [...]string{
	"B", "BB", "A", "AGC", "AA", "FW", "AAA", "AAAA",
	"SECT", "FUT", "JNAT", "NAT", "OT",
}

var standardNames = [...]string{
	"B", "BB", "A", "Age Group Championships", "AA", "Far Westerns",
	"AAA", "AAAA", "Sectionals", "Futures", "Junior Nationals",
	"Nationals", "Olympic Trials",
}

// Standards returns every standard in declaration order.
func Standards() []Standard {
	all := make([]Standard, len(standardShorts))
	for i := range all {
		all[i] = Standard(i)
	}
	return all
}

// Short returns the abbreviation used in file names and compact output.
func (s Standard) Short() string {
	if s < 0 || int(s) >= len(standardShorts) {
		return "Unknown"
	}
	return standardShorts[s]
}

func (s Standard) String() string {
	if s < 0 || int(s) >= len(standardNames) {
		return "Unknown"
	}
	return standardNames[s]
}

// Age-group families. Motivational standards are published per two-year
// group, the age-group championship per single year, and the meet cuts from
// Sectionals up split at 18.
var (
	doubleAgeGroups = []sdif.AgeGroup{
		sdif.Age10Under, sdif.Age11To12, sdif.Age13To14, sdif.Age15To16, sdif.Age17To18,
	}
	singleAgeGroups = []sdif.AgeGroup{
		sdif.Age10Under, sdif.Age11, sdif.Age12, sdif.Age13, sdif.Age14,
	}
	seniorAgeGroups = []sdif.AgeGroup{
		sdif.Age18Under, sdif.Age19Over,
	}
)

// AgeGroups returns the age-group family the standard is published for.
func (s Standard) AgeGroups() []sdif.AgeGroup {
	switch s {
	case AGC:
		return singleAgeGroups
	case SECT, FUT, JNAT, NAT, OT:
		return seniorAgeGroups
	default:
		return doubleAgeGroups
	}
}
