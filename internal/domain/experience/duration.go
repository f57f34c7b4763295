package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultMonths is assumed when a duration string carries no usable year or
// month figure. Upstream LLM output is not always well-formed; callers must
// tolerate missing data rather than fail.
const DefaultMonths = 12

var (
	yearsRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`)
	monthsRe = regexp.MustCompile(`(\d+)\s*(?:months?|mos?)`)
)

// ParseMonths converts a free-text duration into whole months. It is total:
// any input, including the empty string, yields a non-negative integer.
func ParseMonths(raw string) int {
	return ParseMonthsAt(raw, time.Now().UTC())
}

// ParseMonthsAt is ParseMonths with an explicit reference time for resolving
// "present" in explicit date ranges.
func ParseMonthsAt(raw string, now time.Time) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DefaultMonths
	}

	if m := yearsRe.FindStringSubmatch(s); len(m) == 2 {
		if y, err := strconv.ParseFloat(m[1], 64); err == nil && y >= 0 {
			return int(y * 12)
		}
	}
	if m := monthsRe.FindStringSubmatch(s); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			return n
		}
	}

	if start, end, ok := ParseRange(s, now); ok {
		return monthsBetween(start, end)
	}

	return DefaultMonths
}

// Ongoing reports whether the duration describes a position that is still
// held ("present" or "current").
func Ongoing(raw string) bool {
	s := strings.ToLower(raw)
	return strings.Contains(s, "present") || strings.Contains(s, "current")
}

var rangeSep = regexp.MustCompile(`\s*(?:-|–|—|\bto\b)\s*`)

// Month names match case-insensitively, so the pre-lowercased input is fine.
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"01/2006",
	"2006",
}

// ParseRange parses explicit "Jan 2020 - Mar 2022" style spans. The end of
// an ongoing span resolves to now. ok is false when either side fails to
// parse as a date.
func ParseRange(raw string, now time.Time) (start, end time.Time, ok bool) {
	parts := rangeSep.Split(strings.ToLower(strings.TrimSpace(raw)), 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}

	start, ok = parseDate(parts[0])
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	if Ongoing(parts[1]) {
		return start, now, true
	}

	end, ok = parseDate(parts[1])
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// StartDate infers when an entry began, for ordering a work history. Ongoing
// entries anchor at now; finished ones are backdated by their duration, so a
// position that ended earlier sorts before one still held. Explicit ranges
// win when they parse.
func StartDate(e Entry, now time.Time) time.Time {
	if s, _, ok := ParseRange(e.RawDuration, now); ok {
		return s
	}
	if Ongoing(e.RawDuration) {
		return now
	}
	return now.AddDate(0, -ParseMonthsAt(e.RawDuration, now), 0)
}

// TotalMonths sums the parsed duration of every entry. Each entry is parsed
// independently, so one malformed duration never zeroes the total.
func TotalMonths(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += ParseMonths(e.RawDuration)
	}
	return total
}

// TotalYears is the whole-year floor of TotalMonths.
func TotalYears(entries []Entry) int {
	return TotalMonths(entries) / 12
}
