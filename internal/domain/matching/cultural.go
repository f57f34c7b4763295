package matching

import "strings"

// culturalIndicator is one behavioral dimension compared between resume and
// job language via keyword density.
type culturalIndicator struct {
	name     string
	weight   float64
	keywords []string
}

// Weights sum to 1.00.
var culturalIndicators = []culturalIndicator{
	{name: "collaboration", weight: 0.25, keywords: []string{"team", "collaborate", "together", "group", "peer"}},
	{name: "leadership", weight: 0.20, keywords: []string{"lead", "manage", "mentor", "guide", "direct"}},
	{name: "innovation", weight: 0.20, keywords: []string{"innovate", "create", "new", "improve", "optimize"}},
	{name: "learning", weight: 0.20, keywords: []string{"learn", "train", "certification", "course", "skill"}},
	{name: "autonomy", weight: 0.15, keywords: []string{"independent", "self-directed", "initiative", "ownership"}},
}

type CulturalFit struct {
	Overall    float64
	Indicators map[string]float64
}

// AssessCulturalFit compares keyword densities between resume and job text.
// An indicator the job never mentions is excluded and the remaining weights
// renormalized; a job with no indicator language at all scores 0.
func AssessCulturalFit(resumeText, jobText string) CulturalFit {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobText)

	fit := CulturalFit{Indicators: make(map[string]float64, len(culturalIndicators))}

	var weighted, weightSum float64
	for _, ind := range culturalIndicators {
		jobCount := keywordCount(job, ind.keywords)
		if jobCount == 0 {
			continue
		}
		ratio := float64(keywordCount(resume, ind.keywords)) / float64(jobCount)
		if ratio > 1 {
			ratio = 1
		}
		fit.Indicators[ind.name] = round2(100 * ratio)
		weighted += ind.weight * ratio
		weightSum += ind.weight
	}

	if weightSum > 0 {
		fit.Overall = round2(clamp(100 * weighted / weightSum))
	}
	return fit
}

func keywordCount(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(text, kw)
	}
	return n
}
