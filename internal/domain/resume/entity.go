package resume

import (
	"strings"

	"resume-match/internal/domain/experience"
)

// Parsed is the structured form of a resume as produced by the LLM
// structuring step. Every field has a usable zero value, so a partially
// parsed resume is handled once here at the boundary instead of scattered
// nil checks through the scoring code.
type Parsed struct {
	PersonalInfo   PersonalInfo       `json:"personal_info"`
	Summary        string             `json:"summary"`
	WorkExperience []experience.Entry `json:"work_experience"`
	Education      []Education        `json:"education"`
	Skills         SkillGroups        `json:"skills"`
	Certifications []string           `json:"certifications"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
}

type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages"`
}

// Empty is the defined default for a resume that failed structuring. A
// worker that cannot parse stores this instead of erroring the whole run.
func Empty() Parsed {
	return Parsed{
		WorkExperience: []experience.Entry{},
		Education:      []Education{},
		Skills: SkillGroups{
			Technical: []string{},
			Soft:      []string{},
			Languages: []string{},
		},
		Certifications: []string{},
	}
}

// FullText flattens the parsed resume into one searchable string for
// semantic and cultural comparisons.
func (p Parsed) FullText() string {
	var b strings.Builder
	if p.Summary != "" {
		b.WriteString(p.Summary)
		b.WriteString(" ")
	}
	for _, e := range p.WorkExperience {
		b.WriteString(e.Position)
		b.WriteString(" at ")
		b.WriteString(e.Company)
		b.WriteString(" ")
		b.WriteString(e.Description)
		b.WriteString(" ")
	}
	for _, ed := range p.Education {
		b.WriteString(ed.Degree)
		b.WriteString(" from ")
		b.WriteString(ed.Institution)
		b.WriteString(" ")
	}
	all := append(append(append([]string{}, p.Skills.Technical...), p.Skills.Soft...), p.Skills.Languages...)
	if len(all) > 0 {
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(all, ", "))
	}
	return strings.TrimSpace(b.String())
}
