package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"MARY":          "Mary",
		"mary jo":       "Mary Jo",
		"VAN  DER BERG": "Van Der Berg",
		"o'neil":        "O'neil",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseFullName(t *testing.T) {
	tests := []struct {
		in                  string
		first, middle, last string
	}{
		{"DURANCE, CATHERINE A", "Catherine", "A", "Durance"},
		{"CHU, THOMAS", "Thomas", "", "Chu"},
		{"YOUNG, CY V", "Cy", "V", "Young"},
		{"O'NEIL, DAVE T", "Dave", "T", "O'neil"},
	}
	for _, tt := range tests {
		first, middle, last, err := ParseFullName(tt.in)
		if err != nil {
			t.Errorf("ParseFullName(%q) error: %v", tt.in, err)
			continue
		}
		if first != tt.first || middle != tt.middle || last != tt.last {
			t.Errorf("ParseFullName(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.in, first, middle, last, tt.first, tt.middle, tt.last)
		}
	}

	if _, _, _, err := ParseFullName("NOCOMMA"); err == nil {
		t.Error("name without comma should fail")
	}
}

func TestGenerateLegacyID(t *testing.T) {
	tests := []struct {
		first, middle, last string
		birthday            time.Time
		want                string
	}{
		{"Catherine", "A", "Durance", date(1953, time.January, 15), "011553CATADURA"},
		{"Cy", "V", "Young", date(1879, time.September, 18), "091879CY*VYOUN"},
		{"Thomas", "", "Chu", date(1981, time.February, 9), "020981THO*CHU*"},
		{"Ty", "", "Lee", date(1873, time.January, 18), "011873TY**LEE*"},
	}
	for _, tt := range tests {
		got := GenerateLegacyID(tt.first, tt.middle, tt.last, tt.birthday)
		if got != tt.want {
			t.Errorf("GenerateLegacyID(%s) = %q, want %q", tt.first, got, tt.want)
		}
	}
}

func TestHammingDistance(t *testing.T) {
	if got := HammingDistance("abc", "abc"); got != 0 {
		t.Errorf("identical strings: %d", got)
	}
	if got := HammingDistance("abc", "axc"); got != 1 {
		t.Errorf("one substitution: %d", got)
	}
	if got := HammingDistance("abc", "abcde"); got != 2 {
		t.Errorf("length difference: %d", got)
	}
}

func TestIsLegacyID(t *testing.T) {
	if !IsLegacyID("Catherine", "Durance", "A", "011553CATADURA") {
		t.Error("exact legacy ID should match")
	}
	// One typo in the alphabetic tail is tolerated.
	if !IsLegacyID("Catherine", "Durance", "A", "011553CATADURX") {
		t.Error("near-match legacy ID should pass")
	}
	// Random modern IDs have non-numeric date parts.
	if IsLegacyID("Catherine", "Durance", "A", "A1B2C3D4E5F6") {
		t.Error("modern random ID should not look legacy")
	}
	// Month 13 is not a date.
	if IsLegacyID("Catherine", "Durance", "A", "131553CATADURA") {
		t.Error("impossible month should fail")
	}
	// Completely different name.
	if IsLegacyID("Zebulon", "Quimby", "", "011553CATADURA") {
		t.Error("mismatched name should fail")
	}
}

func TestCalculateAge(t *testing.T) {
	birthday := date(2010, time.June, 15)
	if got := CalculateAge(birthday, date(2024, time.June, 14)); got != 13 {
		t.Errorf("day before birthday: %d, want 13", got)
	}
	if got := CalculateAge(birthday, date(2024, time.June, 15)); got != 14 {
		t.Errorf("on birthday: %d, want 14", got)
	}
}
