package gap

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	candidate := map[string]int{"python": 3, "react": 1}
	trending := map[string]TrendingSkill{
		"python": {Demand: 9500, Relevance: 0.95, SalaryImpact: 15000},
		"aws":    {Demand: 7800, Relevance: 0.90, SalaryImpact: 18000},
		"docker": {Demand: 6500, Relevance: 0.88, SalaryImpact: 10000},
	}

	a := Analyze(candidate, trending)

	if !reflect.DeepEqual(a.MissingSkills, []string{"aws", "docker"}) {
		t.Fatalf("missing skills = %v", a.MissingSkills)
	}
	if !reflect.DeepEqual(a.ExistingSkills, []string{"python"}) {
		t.Fatalf("existing skills = %v", a.ExistingSkills)
	}
	if a.GapPercentage != 66.67 {
		t.Fatalf("gap percentage = %v, want 66.67", a.GapPercentage)
	}
	if got := a.SkillScores["python"]; got.Demand != 9500 || got.Relevance != 0.95 {
		t.Fatalf("skill score for python = %+v", got)
	}
}

func TestAnalyze_EmptyTrending(t *testing.T) {
	a := Analyze(map[string]int{"python": 2}, nil)
	if a.GapPercentage != 0 {
		t.Fatalf("gap percentage with no trending data = %v, want 0", a.GapPercentage)
	}
	if len(a.MissingSkills) != 0 || len(a.ExistingSkills) != 0 {
		t.Fatalf("expected empty partitions, got missing=%v existing=%v", a.MissingSkills, a.ExistingSkills)
	}
}

func TestAnalyze_CandidateCoversTrending(t *testing.T) {
	candidate := map[string]int{"python": 4, "aws": 2, "docker": 1, "graphql": 1}
	trending := map[string]TrendingSkill{
		"python": {Demand: 9500, SalaryImpact: 15000},
		"aws":    {Demand: 7800, SalaryImpact: 18000},
		"docker": {Demand: 6500, SalaryImpact: 10000},
	}

	a := Analyze(candidate, trending)

	if a.GapPercentage != 0 {
		t.Fatalf("gap percentage with full coverage = %v, want 0", a.GapPercentage)
	}
	if len(a.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", a.MissingSkills)
	}
	if !reflect.DeepEqual(a.ExistingSkills, []string{"aws", "docker", "python"}) {
		t.Fatalf("existing skills = %v", a.ExistingSkills)
	}
	if len(a.PrioritySkills) != 0 {
		t.Fatalf("expected no priority skills, got %v", a.PrioritySkills)
	}
}

func TestAnalyze_Priorities(t *testing.T) {
	trending := map[string]TrendingSkill{
		"aws":     {Demand: 7800, SalaryImpact: 18000},
		"docker":  {Demand: 6500, SalaryImpact: 10000},
		"graphql": {Demand: 4200, SalaryImpact: 12000},
	}

	a := Analyze(map[string]int{}, trending)

	want := []PrioritySkill{
		{Skill: "aws", Priority: PriorityHigh, Demand: 7800, SalaryImpact: 18000},
		{Skill: "graphql", Priority: PriorityMedium, Demand: 4200, SalaryImpact: 12000},
		{Skill: "docker", Priority: PriorityHigh, Demand: 6500, SalaryImpact: 10000},
	}
	if !reflect.DeepEqual(a.PrioritySkills, want) {
		t.Fatalf("priority skills = %+v", a.PrioritySkills)
	}
}

func TestAnalyze_PriorityTieBreaks(t *testing.T) {
	trending := map[string]TrendingSkill{
		"b-skill": {Demand: 5000, SalaryImpact: 9000},
		"a-skill": {Demand: 5000, SalaryImpact: 9000},
		"c-skill": {Demand: 7000, SalaryImpact: 9000},
	}

	a := Analyze(nil, trending)

	got := make([]string, 0, len(a.PrioritySkills))
	for _, p := range a.PrioritySkills {
		got = append(got, p.Skill)
	}
	want := []string{"c-skill", "a-skill", "b-skill"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("priority order = %v, want %v", got, want)
	}
}

func TestAnalyze_LearningPath(t *testing.T) {
	trending := map[string]TrendingSkill{
		"aws":        {Demand: 7800},
		"kubernetes": {Demand: 6200},
		"react":      {Demand: 8200},
		"cobol":      {Demand: 100},
	}

	a := Analyze(nil, trending)

	want := []CategoryGroup{
		{Category: "frontend", Skills: []string{"react"}},
		{Category: "cloud", Skills: []string{"aws", "kubernetes"}},
	}
	if !reflect.DeepEqual(a.LearningPath, want) {
		t.Fatalf("learning path = %+v", a.LearningPath)
	}
}

func TestAnalyze_InputNotMutated(t *testing.T) {
	candidate := map[string]int{"python": 1}
	trending := map[string]TrendingSkill{"python": {Demand: 9500}, "aws": {Demand: 7800}}

	Analyze(candidate, trending)

	if len(candidate) != 1 || len(trending) != 2 {
		t.Fatalf("inputs mutated: candidate=%v trending=%v", candidate, trending)
	}
}
