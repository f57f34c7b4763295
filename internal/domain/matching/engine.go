package matching

import (
	"math"
	"regexp"
	"strconv"

	"resume-match/internal/domain/skill"
)

type SalaryRange struct {
	Min int
	Max int
}

type JobRequirement struct {
	Title              string
	Description        string
	RequiredSkills     []string
	Requirements       []string
	RequiredExperience string
	SalaryRange        *SalaryRange
}

type ExperienceMatch struct {
	ResumeMonths   int
	RequiredMonths int
	Satisfied      bool
}

type Result struct {
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	RelatedSkills map[string][]string
	Experience    ExperienceMatch
}

// Score computes the baseline match between a candidate's skill list and a
// job requirement. The numeric score is the exact-match skill coverage in
// [0,100]; the experience check is reported as a gate alongside, not blended
// in. An empty required skill list scores 0: an empty requirement cannot be
// satisfied. A resume with no parsed skills is an empty candidate set, not
// an error.
func Score(resumeSkills []string, job JobRequirement, resumeMonths int) Result {
	required := skill.NormalizeAll(job.RequiredSkills)
	rel := skill.Relate(resumeSkills, required)

	// matched/missing partition the required set exactly: matched holds the
	// exact hits, missing everything else. The related-only view is carried
	// separately and never changes the partition.
	matched := rel.Exact
	missing := make([]string, 0, len(required)-len(matched))
	exact := make(map[string]struct{}, len(matched))
	for _, s := range matched {
		exact[s] = struct{}{}
	}
	for _, req := range required {
		if _, ok := exact[req]; !ok {
			missing = append(missing, req)
		}
	}

	score := 0.0
	if len(required) > 0 {
		score = 100 * float64(len(matched)) / float64(len(required))
	}

	return Result{
		Score:         round2(clamp(score)),
		MatchedSkills: matched,
		MissingSkills: missing,
		RelatedSkills: rel.Related,
		Experience:    checkExperience(job.RequiredExperience, resumeMonths),
	}
}

var firstIntRe = regexp.MustCompile(`\d+`)

// checkExperience extracts the minimum year count from the job's free-text
// experience requirement. No number means the requirement is satisfied
// unconditionally.
func checkExperience(requiredExperience string, resumeMonths int) ExperienceMatch {
	m := ExperienceMatch{ResumeMonths: resumeMonths}
	if resumeMonths < 0 {
		m.ResumeMonths = 0
	}

	digits := firstIntRe.FindString(requiredExperience)
	if digits == "" {
		m.Satisfied = true
		return m
	}
	years, err := strconv.Atoi(digits)
	if err != nil || years <= 0 {
		m.Satisfied = true
		return m
	}

	m.RequiredMonths = years * 12
	m.Satisfied = m.ResumeMonths/12 >= years
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
