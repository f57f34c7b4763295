package matching

import (
	"strings"

	"resume-match/internal/domain/experience"
	"resume-match/internal/domain/skill"
)

// Extended scoring blend weights.
const (
	semanticWeight   = 0.4
	skillWeight      = 0.3
	experienceWeight = 0.3
)

// ExtendedInput carries everything the extended scoring mode inspects. All
// fields come from already-structured records; nothing here performs I/O.
type ExtendedInput struct {
	ResumeText string
	Skills     []string
	Experience []experience.Entry
}

type ExtendedResult struct {
	OverallScore        float64
	SemanticSimilarity  float64
	SkillRelevance      float64
	ExperienceRelevance float64
	CulturalFit         CulturalFit
	SalaryAlignment     SalaryAlignment
}

// ScoreExtended blends semantic, skill, and experience relevance into one
// composite. Cultural fit and salary alignment ride alongside as auxiliary
// scores and never fold into the composite.
func ScoreExtended(resume ExtendedInput, job JobRequirement) ExtendedResult {
	jobText := jobFullText(job)

	semantic := 100 * cosineSimilarity(tokenize(resume.ResumeText), tokenize(jobText))
	skillRel := skillRelevance(resume.Skills, job.RequiredSkills)
	expRel := experienceRelevance(resume.Experience, job.Requirements)

	overall := semanticWeight*semantic + skillWeight*skillRel + experienceWeight*expRel

	return ExtendedResult{
		OverallScore:        round2(clamp(overall)),
		SemanticSimilarity:  round2(clamp(semantic)),
		SkillRelevance:      round2(clamp(skillRel)),
		ExperienceRelevance: round2(clamp(expRel)),
		CulturalFit:         AssessCulturalFit(resume.ResumeText, jobText),
		SalaryAlignment:     AlignSalary(resume.ResumeText, job.SalaryRange),
	}
}

func jobFullText(job JobRequirement) string {
	parts := []string{job.Title, job.Description}
	if len(job.Requirements) > 0 {
		parts = append(parts, "Requirements: "+strings.Join(job.Requirements, " "))
	}
	if len(job.RequiredSkills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(job.RequiredSkills, " "))
	}
	return strings.Join(parts, " ")
}

func skillRelevance(resumeSkills, requiredSkills []string) float64 {
	required := skill.NormalizeAll(requiredSkills)
	if len(required) == 0 {
		return 0
	}
	rel := skill.Relate(resumeSkills, required)
	return 100 * float64(len(rel.Exact)) / float64(len(required))
}

// experienceRelevance measures how many positions look relevant to the job's
// requirement lines. A position counts when more than 30% of the requirement
// lines share at least one word with its title or description.
func experienceRelevance(entries []experience.Entry, requirements []string) float64 {
	if len(entries) == 0 {
		return 0
	}

	relevant := 0
	for _, e := range entries {
		text := strings.ToLower(e.Position + " " + e.Description)
		if requirementOverlap(text, requirements) > 0.3 {
			relevant++
		}
	}
	return 100 * float64(relevant) / float64(len(entries))
}

func requirementOverlap(text string, requirements []string) float64 {
	if len(requirements) == 0 {
		return 0
	}
	matches := 0
	for _, req := range requirements {
		for _, word := range strings.Fields(strings.ToLower(req)) {
			if strings.Contains(text, word) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(requirements))
}
