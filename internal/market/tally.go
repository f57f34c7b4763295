package market

import (
	"math"
	"sort"
	"strings"
	"time"

	"resume-match/internal/domain/skill"
	"resume-match/internal/domain/trending"
)

// Posting is one collected job posting reduced to what the tally needs.
type Posting struct {
	Title       string
	Description string
	SalaryMin   int
	SalaryMax   int
}

// Tally derives market stats for the tracked skills from a batch of
// postings. Demand counts postings mentioning the skill, relevance is the
// mention rate, and salary impact is the premium of mentioning postings over
// the batch average. Skills no posting mentions are left out; stale rows in
// the table keep their previous stats.
func Tally(postings []Posting, tracked []string, now time.Time) []trending.Skill {
	if len(postings) == 0 || len(tracked) == 0 {
		return nil
	}

	texts := make([]string, len(postings))
	for i, p := range postings {
		texts[i] = strings.ToLower(p.Title + " " + p.Description)
	}

	batchAvg := averageMidpoint(postings, nil)

	out := make([]trending.Skill, 0, len(tracked))
	for _, name := range skill.NormalizeAll(tracked) {
		var mentions []int
		for i, text := range texts {
			if strings.Contains(text, name) {
				mentions = append(mentions, i)
			}
		}
		if len(mentions) == 0 {
			continue
		}

		impact := averageMidpoint(postings, mentions) - batchAvg
		if impact < 0 {
			impact = 0
		}

		out = append(out, trending.Skill{
			Name:         name,
			Demand:       len(mentions),
			Relevance:    math.Round(float64(len(mentions))/float64(len(postings))*100) / 100,
			SalaryImpact: impact,
			UpdatedAt:    now,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// averageMidpoint averages the salary range midpoints of the selected
// postings (all of them when idx is nil), skipping postings without a posted
// range.
func averageMidpoint(postings []Posting, idx []int) int {
	sum, n := 0, 0
	consider := func(p Posting) {
		if p.SalaryMin <= 0 || p.SalaryMax < p.SalaryMin {
			return
		}
		sum += (p.SalaryMin + p.SalaryMax) / 2
		n++
	}

	if idx == nil {
		for _, p := range postings {
			consider(p)
		}
	} else {
		for _, i := range idx {
			consider(postings[i])
		}
	}

	if n == 0 {
		return 0
	}
	return sum / n
}
