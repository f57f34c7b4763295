package search

import (
	"sort"
	"strings"
	"time"

	"resume-match/internal/domain/job"
)

type Score struct {
	Relevance    float64
	Freshness    float64
	Completeness float64
	Final        float64
}

// ComputeRelevance scores how strongly a posting matches the query
// variants. Title hits weigh most, then a required skill, then the
// description or company. Capped at 10.
func ComputeRelevance(j job.Job, variants []string) float64 {
	if len(variants) == 0 {
		return 0
	}

	title := strings.ToLower(j.Title)
	desc := strings.ToLower(j.Description)
	company := strings.ToLower(j.Company)

	score := 0.0
	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if title != "" && strings.Contains(title, v) {
			score += 3
		}
		for _, s := range j.RequiredSkills {
			if strings.Contains(strings.ToLower(s), v) {
				score += 2
				break
			}
		}
		if desc != "" && strings.Contains(desc, v) {
			score++
		}
		if company != "" && strings.Contains(company, v) {
			score++
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}

func ComputeFreshness(j job.Job, now time.Time) float64 {
	if j.CreatedAt.IsZero() {
		return 0
	}

	age := now.Sub(j.CreatedAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	}
	return 0
}

// ComputeCompleteness rewards postings that carry enough detail to match
// against: skills, a real description, and a salary range.
func ComputeCompleteness(j job.Job) float64 {
	score := 0.0
	if strings.TrimSpace(j.Company) != "" {
		score++
	}
	if len(j.RequiredSkills) > 0 {
		score++
	}
	if len(strings.TrimSpace(j.Description)) > 100 {
		score++
	}
	if strings.TrimSpace(j.RequiredExperience) != "" {
		score++
	}
	if j.SalaryMin > 0 && j.SalaryMax >= j.SalaryMin {
		score++
	}
	return score
}

func ScoreJob(j job.Job, variants []string, now time.Time) Score {
	rel := ComputeRelevance(j, variants)
	fresh := ComputeFreshness(j, now)
	comp := ComputeCompleteness(j)

	return Score{
		Relevance:    rel,
		Freshness:    fresh,
		Completeness: comp,
		Final:        rel*2.0 + fresh*1.5 + comp*0.5,
	}
}

// RankJobs filters postings to those relevant to the query and orders them
// by final score. With no relevant posting the original order comes back
// unchanged so callers can fall through to plain listing.
func RankJobs(jobs []job.Job, variants []string, now time.Time) []job.Job {
	if len(jobs) == 0 || len(variants) == 0 {
		return jobs
	}

	type scored struct {
		idx   int
		rel   float64
		final float64
	}

	items := make([]scored, 0, len(jobs))
	anyRelevant := false
	for i := range jobs {
		s := ScoreJob(jobs[i], variants, now)
		if s.Relevance > 0 {
			anyRelevant = true
		}
		items = append(items, scored{idx: i, rel: s.Relevance, final: s.Final})
	}

	if !anyRelevant {
		return jobs
	}

	kept := items[:0]
	for _, it := range items {
		if it.rel > 0 {
			kept = append(kept, it)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].final > kept[j].final
	})

	out := make([]job.Job, 0, len(kept))
	for _, it := range kept {
		out = append(out, jobs[it.idx])
	}
	return out
}
