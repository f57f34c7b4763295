package search

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/job"
)

func TestComputeRelevance(t *testing.T) {
	j := job.Job{
		Title:          "Senior Backend Engineer",
		Company:        "Acme",
		Description:    "Own our Go services",
		RequiredSkills: []string{"go", "postgresql"},
	}

	if got := ComputeRelevance(j, []string{"backend"}); got != 3 {
		t.Fatalf("expected relevance 3 from a title hit, got %v", got)
	}
	if got := ComputeRelevance(j, []string{"go"}); got != 3 {
		// a required skill (2) plus the description (1)
		t.Fatalf("expected relevance 3, got %v", got)
	}
	if got := ComputeRelevance(j, nil); got != 0 {
		t.Fatalf("expected 0 without variants, got %v", got)
	}
	if got := ComputeRelevance(job.Job{}, []string{"backend"}); got != 0 {
		t.Fatalf("expected 0 for empty posting, got %v", got)
	}
}

func TestComputeFreshness(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		age  time.Duration
		want float64
	}{
		{12 * time.Hour, 5},
		{2 * 24 * time.Hour, 4},
		{6 * 24 * time.Hour, 3},
		{10 * 24 * time.Hour, 2},
		{20 * 24 * time.Hour, 1},
		{90 * 24 * time.Hour, 0},
	}
	for _, c := range cases {
		j := job.Job{CreatedAt: now.Add(-c.age)}
		if got := ComputeFreshness(j, now); got != c.want {
			t.Fatalf("freshness for age %v = %v, want %v", c.age, got, c.want)
		}
	}
}

func TestRankJobs_RelevantFirst(t *testing.T) {
	now := time.Now().UTC()
	match := job.Job{ID: uuid.New(), Title: "Backend Engineer", CreatedAt: now}
	other := job.Job{ID: uuid.New(), Title: "Product Designer", CreatedAt: now}

	ranked := RankJobs([]job.Job{other, match}, []string{"backend"}, now)
	if len(ranked) != 1 {
		t.Fatalf("expected only the relevant posting, got %d", len(ranked))
	}
	if ranked[0].ID != match.ID {
		t.Fatalf("expected the backend posting first")
	}
}

func TestRankJobs_NoRelevantFallsThrough(t *testing.T) {
	now := time.Now().UTC()
	jobs := []job.Job{
		{ID: uuid.New(), Title: "Product Designer"},
		{ID: uuid.New(), Title: "Accountant"},
	}

	ranked := RankJobs(jobs, []string{"astronaut"}, now)
	if len(ranked) != 2 {
		t.Fatalf("expected original listing back, got %d", len(ranked))
	}
	if ranked[0].ID != jobs[0].ID {
		t.Fatalf("expected original order preserved")
	}
}
