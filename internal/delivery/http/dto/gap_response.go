package dto

import "resume-match/internal/domain/gap"

type GapResponse struct {
	MissingSkills  []string                   `json:"missing_skills"`
	ExistingSkills []string                   `json:"existing_skills"`
	GapPercentage  float64                    `json:"gap_percentage"`
	SkillScores    map[string]SkillScoreEntry `json:"skill_scores"`
	PrioritySkills []PrioritySkillEntry       `json:"priority_skills"`
	LearningPath   []LearningPathGroup        `json:"learning_path"`
}

type SkillScoreEntry struct {
	Relevance    float64 `json:"relevance"`
	Demand       int     `json:"demand"`
	SalaryImpact int     `json:"salary_impact"`
}

type PrioritySkillEntry struct {
	Skill        string `json:"skill"`
	Priority     string `json:"priority"`
	Demand       int    `json:"demand"`
	SalaryImpact int    `json:"salary_impact"`
}

type LearningPathGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

func NewGapResponse(a gap.Analysis) GapResponse {
	scores := make(map[string]SkillScoreEntry, len(a.SkillScores))
	for name, s := range a.SkillScores {
		scores[name] = SkillScoreEntry{Relevance: s.Relevance, Demand: s.Demand, SalaryImpact: s.SalaryImpact}
	}

	priorities := make([]PrioritySkillEntry, 0, len(a.PrioritySkills))
	for _, p := range a.PrioritySkills {
		priorities = append(priorities, PrioritySkillEntry{
			Skill:        p.Skill,
			Priority:     p.Priority,
			Demand:       p.Demand,
			SalaryImpact: p.SalaryImpact,
		})
	}

	path := make([]LearningPathGroup, 0, len(a.LearningPath))
	for _, g := range a.LearningPath {
		path = append(path, LearningPathGroup{Category: g.Category, Skills: g.Skills})
	}

	return GapResponse{
		MissingSkills:  emptyIfNil(a.MissingSkills),
		ExistingSkills: emptyIfNil(a.ExistingSkills),
		GapPercentage:  a.GapPercentage,
		SkillScores:    scores,
		PrioritySkills: priorities,
		LearningPath:   path,
	}
}
