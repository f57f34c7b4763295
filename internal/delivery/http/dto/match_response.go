package dto

import (
	"time"

	"resume-match/internal/domain/match"
)

type MatchResponse struct {
	ResumeID      string              `json:"resume_id"`
	JobID         string              `json:"job_id"`
	Score         float64             `json:"score"`
	MatchedSkills []string            `json:"matched_skills"`
	MissingSkills []string            `json:"missing_skills"`
	RelatedSkills map[string][]string `json:"related_skills"`

	ResumeMonths    int  `json:"resume_months"`
	RequiredMonths  int  `json:"required_months"`
	ExperienceMatch bool `json:"experience_match"`

	OverallScore       float64 `json:"overall_score"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	SkillRelevance     float64 `json:"skill_relevance"`
	ExperienceFit      float64 `json:"experience_fit"`
	CulturalFit        float64 `json:"cultural_fit"`
	SalaryAlignment    float64 `json:"salary_alignment"`

	ComputedAt time.Time `json:"computed_at"`
}

func NewMatchResponse(r match.Result) MatchResponse {
	return MatchResponse{
		ResumeID:      r.ResumeID.String(),
		JobID:         r.JobID.String(),
		Score:         r.Score,
		MatchedSkills: emptyIfNil(r.MatchedSkills),
		MissingSkills: emptyIfNil(r.MissingSkills),
		RelatedSkills: r.RelatedSkills,

		ResumeMonths:    r.ResumeMonths,
		RequiredMonths:  r.RequiredMonths,
		ExperienceMatch: r.ExperienceMatch,

		OverallScore:       r.OverallScore,
		SemanticSimilarity: r.SemanticSimilarity,
		SkillRelevance:     r.SkillRelevance,
		ExperienceFit:      r.ExperienceFit,
		CulturalFit:        r.CulturalFit,
		SalaryAlignment:    r.SalaryAlignment,

		ComputedAt: r.ComputedAt,
	}
}

func NewMatchListResponse(items []match.Result) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewMatchResponse(r))
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
