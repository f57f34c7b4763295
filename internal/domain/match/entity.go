package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match result not found")

// Result is a persisted scoring run for one resume against one job. The
// extended fields are zero when only the basic engine ran.
type Result struct {
	ID            uuid.UUID
	ResumeID      uuid.UUID
	JobID         uuid.UUID
	Score         float64
	MatchedSkills []string
	MissingSkills []string
	RelatedSkills map[string][]string

	ResumeMonths    int
	RequiredMonths  int
	ExperienceMatch bool

	OverallScore       float64
	SemanticSimilarity float64
	SkillRelevance     float64
	ExperienceFit      float64
	CulturalFit        float64
	SalaryAlignment    float64

	ComputedAt time.Time
}

type Repository interface {
	// Upsert keeps one row per (resume, job) pair; a rescore replaces the
	// previous result.
	Upsert(ctx context.Context, r Result) error
	Get(ctx context.Context, resumeID, jobID uuid.UUID) (Result, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]Result, error)
}
