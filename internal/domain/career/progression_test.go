package career

import (
	"testing"
	"time"

	"resume-match/internal/domain/experience"
)

var progressionNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestProgression_OrdersByStartDate(t *testing.T) {
	entries := []experience.Entry{
		{Position: "Senior Engineer", Company: "c3", RawDuration: "Jan 2022 - Present"},
		{Position: "Junior Developer", Company: "c1", RawDuration: "Jan 2015 - Dec 2017"},
		{Position: "Software Engineer", Company: "c2", RawDuration: "Jan 2018 - Dec 2021"},
	}

	steps := Progression(entries, progressionNow)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}

	wantOrder := []string{"c1", "c2", "c3"}
	wantLevels := []Level{Junior, Mid, Senior}
	for i, step := range steps {
		if step.Company != wantOrder[i] {
			t.Fatalf("step %d company = %s, want %s", i, step.Company, wantOrder[i])
		}
		if step.Level != wantLevels[i] {
			t.Fatalf("step %d level = %v, want %v", i, step.Level, wantLevels[i])
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	entries := []experience.Entry{
		{Position: "Junior Developer", RawDuration: "Jan 2015 - Dec 2017"},
		{Position: "Senior Engineer", RawDuration: "Jan 2022 - Present"},
	}
	if got := CurrentLevel(entries, progressionNow); got != Senior {
		t.Fatalf("CurrentLevel = %v, want %v", got, Senior)
	}
	if got := CurrentLevel(nil, progressionNow); got != Mid {
		t.Fatalf("CurrentLevel on empty history = %v, want %v", got, Mid)
	}
}

func TestPredictNext(t *testing.T) {
	preds := PredictNext(Mid)
	if len(preds) != 2 {
		t.Fatalf("expected 2 predictions for Mid, got %d", len(preds))
	}
	if preds[0].Role != Senior || preds[0].Timeline != "1 year" {
		t.Fatalf("first prediction = %+v", preds[0])
	}
	if preds[1].Role != Lead || preds[1].Timeline != "2 years" {
		t.Fatalf("second prediction = %+v", preds[1])
	}
}

func TestPredictNext_CapsAtThree(t *testing.T) {
	preds := PredictNext(Senior)
	if len(preds) != 3 {
		t.Fatalf("expected 3 predictions for Senior, got %d", len(preds))
	}
	if preds[2].Timeline != "3 years" {
		t.Fatalf("third timeline = %s", preds[2].Timeline)
	}
}

func TestPredictNext_TopOfScale(t *testing.T) {
	if preds := PredictNext(Manager); len(preds) != 0 {
		t.Fatalf("Manager should have no predicted next roles, got %+v", preds)
	}
}
