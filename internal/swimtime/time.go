// Package swimtime provides the fixed-precision time value used for meet
// results. Times are stored as (minute, second, hundredth) so the interchange
// format round-trips without floating point loss.
package swimtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrRange indicates a component outside its valid range.
	ErrRange = errors.New("time component out of range")
	// ErrFormat indicates a malformed time string.
	ErrFormat = errors.New("invalid time string")
	// ErrNegative indicates a subtraction that would go below zero.
	ErrNegative = errors.New("cannot subtract larger valued time")
)

// Time represents a swim result time with hundredth-of-a-second precision.
// The zero value means "no time recorded" and renders as an empty string.
type Time struct {
	minute    int
	second    int
	hundredth int
}

// New creates a Time, validating that minutes and seconds are in [0,60) and
// hundredths in [0,100).
func New(minute, second, hundredth int) (Time, error) {
	if minute < 0 || minute >= 60 {
		return Time{}, fmt.Errorf("%w: minute %d", ErrRange, minute)
	}
	if second < 0 || second >= 60 {
		return Time{}, fmt.Errorf("%w: second %d", ErrRange, second)
	}
	if hundredth < 0 || hundredth >= 100 {
		return Time{}, fmt.Errorf("%w: hundredth %d", ErrRange, hundredth)
	}
	return Time{minute: minute, second: second, hundredth: hundredth}, nil
}

// MustNew is New but panics on invalid components. For constants and tests.
func MustNew(minute, second, hundredth int) Time {
	t, err := New(minute, second, hundredth)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses a time string in "m:ss.hh" or "ss.hh" form.
func Parse(s string) (Time, error) {
	minuteStr := "0"
	rest := s
	if parts := strings.Split(s, ":"); len(parts) == 2 {
		minuteStr = parts[0]
		rest = parts[1]
	} else if len(parts) > 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	secParts := strings.Split(rest, ".")
	if len(secParts) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	second, err := strconv.Atoi(secParts[0])
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	hundredth, err := strconv.Atoi(secParts[1])
	if err != nil || len(secParts[1]) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	t, err := New(minute, second, hundredth)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return t, nil
}

// Minute returns the minutes component.
func (t Time) Minute() int { return t.minute }

// Second returns the seconds component.
func (t Time) Second() int { return t.second }

// Hundredth returns the hundredths component.
func (t Time) Hundredth() int { return t.hundredth }

// IsZero reports whether t is the "no time recorded" value.
func (t Time) IsZero() bool {
	return t.minute == 0 && t.second == 0 && t.hundredth == 0
}

// String renders the canonical form: "1:15.23", "32.10", or "" for the zero
// value.
func (t Time) String() string {
	if t.IsZero() {
		return ""
	}
	if t.minute == 0 {
		return fmt.Sprintf("%02d.%02d", t.second, t.hundredth)
	}
	return fmt.Sprintf("%d:%02d.%02d", t.minute, t.second, t.hundredth)
}

// Cmp compares t with other: -1 if t is faster (shorter), 0 if equal, +1 if
// t is slower. Ordering is lexicographic on (minute, second, hundredth).
func (t Time) Cmp(other Time) int {
	if t.minute != other.minute {
		return sign(t.minute - other.minute)
	}
	if t.second != other.second {
		return sign(t.second - other.second)
	}
	return sign(t.hundredth - other.hundredth)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Less reports whether t is a shorter time than other.
func (t Time) Less(other Time) bool { return t.Cmp(other) < 0 }

// Add returns t plus other, carrying across hundredths and seconds. It fails
// with ErrRange when the sum exceeds 59:59.99.
func (t Time) Add(other Time) (Time, error) {
	hundredth := t.hundredth + other.hundredth
	second := t.second + other.second
	minute := t.minute + other.minute
	if hundredth >= 100 {
		hundredth -= 100
		second++
	}
	if second >= 60 {
		second -= 60
		minute++
	}
	return New(minute, second, hundredth)
}

// Sub returns t minus other, borrowing across components. It fails with
// ErrNegative when other is larger than t.
func (t Time) Sub(other Time) (Time, error) {
	if other.Cmp(t) > 0 {
		return Time{}, ErrNegative
	}
	minute, second, hundredth := t.minute, t.second, t.hundredth
	if hundredth < other.hundredth {
		second--
		hundredth += 100
	}
	hundredth -= other.hundredth
	if second < other.second {
		minute--
		second += 60
	}
	second -= other.second
	minute -= other.minute
	return New(minute, second, hundredth)
}
