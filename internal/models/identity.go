package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Registration ID lengths. The short form is the modern 12-character random
// ID, the long form is the 14-character legacy format derived from the
// swimmer's birthday and name.
const (
	ShortIDLength = 12
	LongIDLength  = 14
)

// TitleCase lowercases name and capitalizes the first letter of each
// space-separated component. Runs of spaces collapse to one.
func TitleCase(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		part = strings.ToLower(part)
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// ParseFullName splits a "Last, First M" name into its components. The
// middle initial is optional and empty when absent. First and last names are
// returned in title case.
func ParseFullName(fullName string) (first, middle, last string, err error) {
	name := strings.TrimRight(fullName, " ")
	if len(name) >= 2 && name[len(name)-2] == ' ' && name[len(name)-1] >= 'A' && name[len(name)-1] <= 'Z' {
		middle = string(name[len(name)-1])
		name = strings.TrimRight(name[:len(name)-2], " ")
	}
	lastPart, firstPart, ok := strings.Cut(name, ",")
	if !ok {
		return "", "", "", fmt.Errorf("%w: name %q has no comma separator", ErrInvalidInput, fullName)
	}
	first = TitleCase(strings.TrimSpace(firstPart))
	last = TitleCase(strings.TrimSpace(lastPart))
	if first == "" || last == "" {
		return "", "", "", fmt.Errorf("%w: name %q missing first or last component", ErrInvalidInput, fullName)
	}
	return first, middle, last, nil
}

// GenerateLegacyID builds the 14-character legacy registration ID: birthday
// as MMDDYY, first 3 letters of the first name, middle initial, first 4
// letters of the last name. Missing letters are padded with asterisks.
//
// Examples:
//
//	Catherine A. Durance = 011553CATADURA
//	Thomas Chu           = 020981THO*CHU*
func GenerateLegacyID(firstName, middleInitial, lastName string, birthday time.Time) string {
	first := (strings.ToUpper(firstName) + "**")[:3]
	last := (strings.ToUpper(lastName) + "***")[:4]
	if middleInitial == "" {
		middleInitial = "*"
	}
	return fmt.Sprintf("%02d%02d%02d%s%s%s",
		int(birthday.Month()), birthday.Day(), birthday.Year()%100,
		first, middleInitial, last)
}

// HammingDistance counts positions where the two strings differ. A length
// difference counts one per missing character.
func HammingDistance(a, b string) int {
	diffs := len(a) - len(b)
	if diffs < 0 {
		diffs = -diffs
	}
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diffs++
		}
	}
	return diffs
}

// IsLegacyID reports whether id looks like a legacy registration ID for the
// named swimmer. The first six characters must be a plausible MMDD?? date
// and the alphabetic tail must be within Hamming distance 2 of the tail
// constructed from the swimmer's name.
func IsLegacyID(firstName, lastName, middleInitial, id string) bool {
	if len(id) != ShortIDLength && len(id) != LongIDLength {
		return false
	}

	datePart, alphaPart := id[:6], id[6:]
	for _, c := range datePart {
		if c < '0' || c > '9' {
			return false
		}
	}
	for _, c := range alphaPart {
		if c != '*' && !unicode.IsLetter(c) {
			return false
		}
	}

	month := int(datePart[0]-'0')*10 + int(datePart[1]-'0')
	day := int(datePart[2]-'0')*10 + int(datePart[3]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	first := stripNonLetters(firstName)
	last := stripNonLetters(lastName)
	first = (strings.ToUpper(first) + "***")[:3]
	last = (strings.ToUpper(last) + "****")[:4]
	if middleInitial == "" {
		middleInitial = "*"
	}
	construct := first + middleInitial + last
	if len(construct) > len(alphaPart) {
		construct = construct[:len(alphaPart)]
	}
	return HammingDistance(alphaPart, construct) <= 2
}

func stripNonLetters(s string) string {
	var b strings.Builder
	for _, c := range s {
		if unicode.IsLetter(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// CalculateAge returns the swimmer's age on the given date.
func CalculateAge(birthday, onDate time.Time) int {
	age := onDate.Year() - birthday.Year()
	if onDate.Month() < birthday.Month() ||
		(onDate.Month() == birthday.Month() && onDate.Day() < birthday.Day()) {
		age--
	}
	return age
}
