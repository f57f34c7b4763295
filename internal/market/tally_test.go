package market

import (
	"testing"
	"time"
)

func TestTally(t *testing.T) {
	now := time.Now().UTC()
	postings := []Posting{
		{Title: "Python Engineer", Description: "python backend", SalaryMin: 120000, SalaryMax: 160000},
		{Title: "Frontend Developer", Description: "react dashboard", SalaryMin: 80000, SalaryMax: 100000},
		{Title: "ML Engineer", Description: "python models on aws", SalaryMin: 140000, SalaryMax: 180000},
	}

	out := Tally(postings, []string{"Python", "React", "AWS", "cobol"}, now)
	if len(out) != 3 {
		t.Fatalf("expected 3 mentioned skills, got %d", len(out))
	}

	// sorted by name: aws, python, react
	if out[0].Name != "aws" || out[1].Name != "python" || out[2].Name != "react" {
		t.Fatalf("unexpected order: %v, %v, %v", out[0].Name, out[1].Name, out[2].Name)
	}

	py := out[1]
	if py.Demand != 2 {
		t.Fatalf("expected python demand 2, got %d", py.Demand)
	}
	if py.Relevance != 0.67 {
		t.Fatalf("expected python relevance 0.67, got %v", py.Relevance)
	}
	// batch midpoints: 140000, 90000, 160000 -> avg 130000
	// python postings: 140000, 160000 -> avg 150000 -> impact 20000
	if py.SalaryImpact != 20000 {
		t.Fatalf("expected python salary impact 20000, got %d", py.SalaryImpact)
	}

	react := out[2]
	if react.SalaryImpact != 0 {
		t.Fatalf("below-average skill must floor at 0, got %d", react.SalaryImpact)
	}
}

func TestTally_EmptyInputs(t *testing.T) {
	if out := Tally(nil, []string{"python"}, time.Now()); out != nil {
		t.Fatalf("expected nil for no postings, got %v", out)
	}
	if out := Tally([]Posting{{Title: "x"}}, nil, time.Now()); out != nil {
		t.Fatalf("expected nil for no tracked skills, got %v", out)
	}
}

func TestTally_SkipsInvalidSalaryRanges(t *testing.T) {
	postings := []Posting{
		{Title: "Python Engineer", SalaryMin: 0, SalaryMax: 0},
		{Title: "Python Developer", SalaryMin: 100000, SalaryMax: 120000},
	}

	out := Tally(postings, []string{"python"}, time.Now().UTC())
	if len(out) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(out))
	}
	// the only priced posting defines both averages, so no premium
	if out[0].SalaryImpact != 0 {
		t.Fatalf("expected 0 impact, got %d", out[0].SalaryImpact)
	}
	if out[0].Demand != 2 {
		t.Fatalf("expected demand 2, got %d", out[0].Demand)
	}
}
