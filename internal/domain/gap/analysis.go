package gap

import (
	"math"
	"sort"
)

// TrendingSkill is one row of the market reference table. The table is
// supplied by the caller and treated as immutable for the duration of a
// computation.
type TrendingSkill struct {
	Demand       int
	Relevance    float64
	SalaryImpact int
}

// Demand above this marks a missing skill as high priority. Fixed rather
// than data-derived so results stay reproducible without live market data.
const highDemandThreshold = 6000

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

type PrioritySkill struct {
	Skill        string
	Priority     string
	Demand       int
	SalaryImpact int
}

type SkillScore struct {
	Relevance    float64
	Demand       int
	SalaryImpact int
}

type CategoryGroup struct {
	Category string
	Skills   []string
}

type Analysis struct {
	MissingSkills  []string
	ExistingSkills []string
	GapPercentage  float64
	SkillScores    map[string]SkillScore
	PrioritySkills []PrioritySkill
	LearningPath   []CategoryGroup
}

// Analyze compares a candidate's aggregated skill frequencies against the
// trending-skills table. Neither input is mutated. An empty trending table
// yields a zero gap: no data, no gap to report.
func Analyze(candidate map[string]int, trending map[string]TrendingSkill) Analysis {
	a := Analysis{
		MissingSkills:  make([]string, 0),
		ExistingSkills: make([]string, 0),
		SkillScores:    make(map[string]SkillScore),
	}

	for name, entry := range trending {
		if _, ok := candidate[name]; ok {
			a.ExistingSkills = append(a.ExistingSkills, name)
			a.SkillScores[name] = SkillScore{
				Relevance:    entry.Relevance,
				Demand:       entry.Demand,
				SalaryImpact: entry.SalaryImpact,
			}
		} else {
			a.MissingSkills = append(a.MissingSkills, name)
		}
	}
	sort.Strings(a.MissingSkills)
	sort.Strings(a.ExistingSkills)

	if len(trending) > 0 {
		a.GapPercentage = round2(100 * float64(len(a.MissingSkills)) / float64(len(trending)))
	}

	a.PrioritySkills = prioritize(a.MissingSkills, trending)
	a.LearningPath = groupLearningPath(a.MissingSkills)
	return a
}

// prioritize ranks missing skills by salary impact, then demand, then name
// so equal market stats still order deterministically.
func prioritize(missing []string, trending map[string]TrendingSkill) []PrioritySkill {
	out := make([]PrioritySkill, 0, len(missing))
	for _, name := range missing {
		entry := trending[name]
		priority := PriorityMedium
		if entry.Demand > highDemandThreshold {
			priority = PriorityHigh
		}
		out = append(out, PrioritySkill{
			Skill:        name,
			Priority:     priority,
			Demand:       entry.Demand,
			SalaryImpact: entry.SalaryImpact,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SalaryImpact != out[j].SalaryImpact {
			return out[i].SalaryImpact > out[j].SalaryImpact
		}
		if out[i].Demand != out[j].Demand {
			return out[i].Demand > out[j].Demand
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// skillCategories is the static membership table for learning-path grouping.
// Skills outside every category are left out of the grouped view on purpose;
// they stay in the flat missing list.
var skillCategories = []CategoryGroup{
	{Category: "frontend", Skills: []string{"react", "angular", "vue.js", "typescript"}},
	{Category: "backend", Skills: []string{"python", "node.js", "java", "go"}},
	{Category: "cloud", Skills: []string{"aws", "azure", "gcp", "docker", "kubernetes"}},
	{Category: "data", Skills: []string{"machine learning", "data science", "sql", "mongodb"}},
	{Category: "devops", Skills: []string{"ci/cd", "terraform", "jenkins", "gitlab"}},
}

func groupLearningPath(missing []string) []CategoryGroup {
	missingSet := make(map[string]struct{}, len(missing))
	for _, s := range missing {
		missingSet[s] = struct{}{}
	}

	path := make([]CategoryGroup, 0, len(skillCategories))
	for _, cat := range skillCategories {
		var skills []string
		for _, s := range cat.Skills {
			if _, ok := missingSet[s]; ok {
				skills = append(skills, s)
			}
		}
		if len(skills) > 0 {
			path = append(path, CategoryGroup{Category: cat.Category, Skills: skills})
		}
	}
	return path
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
