package matching

import "testing"

func TestAssessCulturalFit_FullOverlap(t *testing.T) {
	job := "We want someone who can lead a team, mentor peers, and learn new tools"
	fit := AssessCulturalFit(job, job)
	if fit.Overall != 100 {
		t.Fatalf("identical texts should be a perfect fit, got %v", fit.Overall)
	}
}

func TestAssessCulturalFit_JobSilentIndicatorsExcluded(t *testing.T) {
	// Job only talks about teamwork; the candidate's leadership language
	// must not count against any indicator.
	job := "collaborate with the team"
	resume := "collaborate with the team; also lead and mentor engineers independently"

	fit := AssessCulturalFit(resume, job)
	if _, ok := fit.Indicators["leadership"]; ok {
		t.Fatalf("leadership should be excluded when the job does not mention it")
	}
	if _, ok := fit.Indicators["collaboration"]; !ok {
		t.Fatalf("collaboration should be assessed")
	}
	if fit.Overall != 100 {
		t.Fatalf("expected 100 when all assessed indicators are saturated, got %v", fit.Overall)
	}
}

func TestAssessCulturalFit_NoIndicatorLanguage(t *testing.T) {
	fit := AssessCulturalFit("some resume", "short job post")
	if fit.Overall != 0 {
		t.Fatalf("expected 0 when the job mentions no indicators, got %v", fit.Overall)
	}
	if len(fit.Indicators) != 0 {
		t.Fatalf("expected no assessed indicators, got %v", fit.Indicators)
	}
}

func TestAssessCulturalFit_RatioCapped(t *testing.T) {
	job := "join our team"
	resume := "team team team team"
	fit := AssessCulturalFit(resume, job)
	if got := fit.Indicators["collaboration"]; got != 100 {
		t.Fatalf("indicator ratio must cap at 100, got %v", got)
	}
}
