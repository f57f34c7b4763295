package career

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/career"
	"resume-match/internal/domain/experience"
	"resume-match/internal/domain/resume"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrInternal       = errors.New("internal error")
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Insight is the full career view for one resume: the ordered history, the
// current level, and the predicted next roles.
type Insight struct {
	Progression  []career.ProgressionStep `json:"progression"`
	CurrentLevel string                   `json:"current_level"`
	TotalYears   int                      `json:"total_years"`
	NextRoles    []RolePrediction         `json:"next_roles"`
}

type RolePrediction struct {
	Role     string `json:"role"`
	Timeline string `json:"timeline"`
}

type CareerUsecase interface {
	Insight(ctx context.Context, userID, resumeID uuid.UUID) (Insight, error)
}

type Service struct {
	resumes resume.Repository
	cache   Cache
	logger  *log.Logger
	now     func() time.Time
}

func NewService(resumes resume.Repository, c Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{resumes: resumes, cache: c, logger: logger, now: time.Now}
}

func (s *Service) Insight(ctx context.Context, userID, resumeID uuid.UUID) (Insight, error) {
	rec, err := s.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return Insight{}, ErrResumeNotFound
		}
		return Insight{}, ErrInternal
	}
	if userID != uuid.Nil && rec.UserID != userID {
		return Insight{}, ErrResumeNotFound
	}

	cacheKey := "career:" + resumeID.String()
	if s.cache != nil {
		var cached Insight
		if found, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	insight := Build(rec.Parsed.WorkExperience, s.now().UTC())

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, insight, 0)
	}
	return insight, nil
}

// Build derives the career view from a work history at a fixed reference
// time.
func Build(entries []experience.Entry, now time.Time) Insight {
	steps := career.Progression(entries, now)
	level := career.CurrentLevel(entries, now)

	preds := career.PredictNext(level)
	next := make([]RolePrediction, 0, len(preds))
	for _, p := range preds {
		next = append(next, RolePrediction{Role: p.Role.String(), Timeline: p.Timeline})
	}

	return Insight{
		Progression:  steps,
		CurrentLevel: level.String(),
		TotalYears:   experience.TotalYears(entries),
		NextRoles:    next,
	}
}
