package matching

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	SalaryAligned    = "aligned"
	SalaryBelowRange = "below_range"
	SalaryAboveRange = "above_range"
)

type SalaryAlignment struct {
	Score    float64
	Expected int
	Status   string
}

// Bare 4-6 digit numbers in a resume are usually years, so an expectation is
// only recognized with a currency marker.
var expectedSalaryRe = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})+|\d{4,6})`)

// ExtractExpectedSalary pulls the first currency-marked figure out of the
// candidate's text.
func ExtractExpectedSalary(text string) (int, bool) {
	m := expectedSalaryRe.FindStringSubmatch(text)
	if len(m) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// AlignSalary scores how the candidate's stated expectation sits against the
// job's posted range. No stated expectation, or no posted range, is full
// alignment: absence is not a mismatch.
func AlignSalary(resumeText string, rng *SalaryRange) SalaryAlignment {
	expected, ok := ExtractExpectedSalary(resumeText)
	if !ok {
		return SalaryAlignment{Score: 100, Status: SalaryAligned}
	}

	out := SalaryAlignment{Expected: expected, Status: SalaryAligned}
	if rng == nil || rng.Min <= 0 || rng.Max < rng.Min {
		out.Score = 100
		return out
	}

	switch {
	case expected < rng.Min:
		out.Status = SalaryBelowRange
		out.Score = round2(clamp(100 * float64(expected) / float64(rng.Min)))
	case expected > rng.Max:
		out.Status = SalaryAboveRange
		out.Score = round2(clamp(100 * float64(rng.Max) / float64(expected)))
	default:
		out.Score = 100
	}
	return out
}
