package experience

import (
	"testing"
	"time"
)

func TestParseMonths_Years(t *testing.T) {
	if got := ParseMonths("3 years"); got != 36 {
		t.Fatalf("expected 36, got %d", got)
	}
	if got := ParseMonths("1 year"); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := ParseMonths("2.5 years"); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestParseMonths_Months(t *testing.T) {
	if got := ParseMonths("18 months"); got != 18 {
		t.Fatalf("expected 18, got %d", got)
	}
	if got := ParseMonths("6 mos"); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestParseMonths_Default(t *testing.T) {
	for _, raw := range []string{"", "Present", "garbage text", "since forever"} {
		if got := ParseMonths(raw); got != DefaultMonths {
			t.Fatalf("ParseMonths(%q) = %d, expected default %d", raw, got, DefaultMonths)
		}
	}
}

func TestParseMonths_NeverNegative(t *testing.T) {
	inputs := []string{"", "-3 years", "0 months", "years", "!!!", "Jan 2025 - Jan 2020"}
	for _, raw := range inputs {
		if got := ParseMonths(raw); got < 0 {
			t.Fatalf("ParseMonths(%q) = %d, expected non-negative", raw, got)
		}
	}
}

func TestParseRange_Explicit(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	start, end, ok := ParseRange("Jan 2020 - Mar 2022", now)
	if !ok {
		t.Fatalf("expected range to parse")
	}
	if start.Year() != 2020 || start.Month() != time.January {
		t.Fatalf("unexpected start %v", start)
	}
	if end.Year() != 2022 || end.Month() != time.March {
		t.Fatalf("unexpected end %v", end)
	}
	if got := monthsBetween(start, end); got != 26 {
		t.Fatalf("expected 26 months, got %d", got)
	}
}

func TestParseRange_Present(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, end, ok := ParseRange("Jan 2020 - Present", now)
	if !ok {
		t.Fatalf("expected range to parse")
	}
	if !end.Equal(now) {
		t.Fatalf("expected end = now, got %v", end)
	}

	if got := ParseMonthsAt("Jan 2020 - Present", now); got != 53 {
		t.Fatalf("expected 53 months, got %d", got)
	}
}

func TestOngoing(t *testing.T) {
	if !Ongoing("Jan 2020 - Present") {
		t.Fatalf("expected ongoing")
	}
	if !Ongoing("2019 - current") {
		t.Fatalf("expected ongoing")
	}
	if Ongoing("3 years") {
		t.Fatalf("expected not ongoing")
	}
}

func TestStartDate_Ordering(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	older := Entry{Position: "Developer", RawDuration: "Jan 2015 - Dec 2018"}
	current := Entry{Position: "Senior Developer", RawDuration: "2 years, Present"}

	if !StartDate(older, now).Before(StartDate(current, now)) {
		t.Fatalf("expected older entry to start before the ongoing one")
	}
}

func TestTotalMonths_BadEntryDoesNotZeroSum(t *testing.T) {
	entries := []Entry{
		{RawDuration: "3 years"},
		{RawDuration: "complete garbage"},
		{RawDuration: "6 months"},
	}
	// 36 + default 12 + 6
	if got := TotalMonths(entries); got != 54 {
		t.Fatalf("expected 54, got %d", got)
	}
	if got := TotalYears(entries); got != 4 {
		t.Fatalf("expected 4 whole years, got %d", got)
	}
}
