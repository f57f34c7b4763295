package matching

import (
	"reflect"
	"testing"
)

func TestScore_SkillOverlap(t *testing.T) {
	job := JobRequirement{RequiredSkills: []string{"python", "aws"}}
	res := Score([]string{"python", "react"}, job, 0)

	if res.Score != 50.0 {
		t.Fatalf("expected score 50.0, got %v", res.Score)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"python"}) {
		t.Fatalf("expected matched [python], got %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"aws"}) {
		t.Fatalf("expected missing [aws], got %v", res.MissingSkills)
	}
}

func TestScore_EmptyRequirement(t *testing.T) {
	res := Score([]string{"python"}, JobRequirement{}, 24)
	if res.Score != 0 {
		t.Fatalf("expected score 0 for empty requirement, got %v", res.Score)
	}
	if len(res.MatchedSkills) != 0 || len(res.MissingSkills) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", res.MatchedSkills, res.MissingSkills)
	}
}

func TestScore_EmptyResume(t *testing.T) {
	job := JobRequirement{RequiredSkills: []string{"python", "aws"}}
	res := Score(nil, job, 0)
	if res.Score != 0 {
		t.Fatalf("expected score 0 for empty resume skills, got %v", res.Score)
	}
	if len(res.MissingSkills) != 2 {
		t.Fatalf("expected every required skill missing, got %v", res.MissingSkills)
	}
}

func TestScore_MatchedMissingPartitionRequired(t *testing.T) {
	job := JobRequirement{RequiredSkills: []string{"Go", "Python", "AWS", "Docker"}}
	res := Score([]string{"go", "docker"}, job, 0)

	seen := make(map[string]int)
	for _, s := range res.MatchedSkills {
		seen[s]++
	}
	for _, s := range res.MissingSkills {
		seen[s]++
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 required skills accounted for, got %d", len(seen))
	}
	for s, n := range seen {
		if n != 1 {
			t.Fatalf("skill %q appears %d times across matched+missing", s, n)
		}
	}
}

func TestScore_MonotonicInMatches(t *testing.T) {
	job := JobRequirement{RequiredSkills: []string{"a", "b", "c", "d"}}
	prev := -1.0
	candidate := []string{}
	for _, s := range []string{"a", "b", "c", "d"} {
		candidate = append(candidate, s)
		res := Score(candidate, job, 0)
		if res.Score < prev {
			t.Fatalf("score decreased from %v to %v with more matches", prev, res.Score)
		}
		prev = res.Score
	}
	if prev != 100.0 {
		t.Fatalf("expected full match to score 100, got %v", prev)
	}
}

func TestScore_Idempotent(t *testing.T) {
	job := JobRequirement{
		Title:              "Backend Engineer",
		RequiredSkills:     []string{"Go", "PostgreSQL"},
		RequiredExperience: "3+ years",
	}
	a := Score([]string{"go", "redis"}, job, 48)
	b := Score([]string{"go", "redis"}, job, 48)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestCheckExperience(t *testing.T) {
	m := checkExperience("3+ years", 48)
	if !m.Satisfied {
		t.Fatalf("4 years should satisfy a 3 year requirement")
	}
	if m.RequiredMonths != 36 {
		t.Fatalf("expected 36 required months, got %d", m.RequiredMonths)
	}

	m = checkExperience("5 years minimum", 48)
	if m.Satisfied {
		t.Fatalf("4 years should not satisfy a 5 year requirement")
	}

	m = checkExperience("", 0)
	if !m.Satisfied {
		t.Fatalf("no requirement should be satisfied unconditionally")
	}

	m = checkExperience("some experience preferred", 0)
	if !m.Satisfied {
		t.Fatalf("numberless requirement should be satisfied unconditionally")
	}
}
