package trending

import (
	"context"
	"time"
)

// Skill is one row of the market reference table used for gap analysis.
// Names are stored normalized (lowercase, trimmed).
type Skill struct {
	Name         string
	Demand       int
	Relevance    float64
	SalaryImpact int
	Source       string
	UpdatedAt    time.Time
}

type Repository interface {
	ListAll(ctx context.Context) ([]Skill, error)
	// Upsert replaces the market stats for a skill, keyed by name.
	Upsert(ctx context.Context, s Skill) error
}
