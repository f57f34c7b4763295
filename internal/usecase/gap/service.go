package gap

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/gap"
	"resume-match/internal/domain/resume"
	"resume-match/internal/domain/skill"
	"resume-match/internal/domain/trending"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrInternal       = errors.New("internal error")
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type GapUsecase interface {
	Analyze(ctx context.Context, userID, resumeID uuid.UUID) (gap.Analysis, error)
}

type Service struct {
	resumes  resume.Repository
	trending trending.Repository
	cache    Cache
	logger   *log.Logger
}

func NewService(resumes resume.Repository, t trending.Repository, c Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{resumes: resumes, trending: t, cache: c, logger: logger}
}

// Analyze compares one resume's skills against the trending table. Results
// cache under the resume id; uploads and market refreshes both invalidate.
func (s *Service) Analyze(ctx context.Context, userID, resumeID uuid.UUID) (gap.Analysis, error) {
	rec, err := s.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return gap.Analysis{}, ErrResumeNotFound
		}
		return gap.Analysis{}, ErrInternal
	}
	if userID != uuid.Nil && rec.UserID != userID {
		return gap.Analysis{}, ErrResumeNotFound
	}

	cacheKey := "gap:" + resumeID.String()
	if s.cache != nil {
		var cached gap.Analysis
		if found, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	rows, err := s.trending.ListAll(ctx)
	if err != nil {
		return gap.Analysis{}, ErrInternal
	}

	analysis := gap.Analyze(SkillFrequencies(rec.Parsed), trendingTable(rows))

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, analysis, 0)
	}
	return analysis, nil
}

// SkillFrequencies counts how often each of the candidate's technical skills
// shows up across the whole resume text, with the skills-list entry itself
// guaranteeing at least one.
func SkillFrequencies(p resume.Parsed) map[string]int {
	text := strings.ToLower(p.FullText())
	out := make(map[string]int)
	for _, name := range skill.NormalizeAll(p.Skills.Technical) {
		n := strings.Count(text, name)
		if n < 1 {
			n = 1
		}
		out[name] = n
	}
	return out
}

func trendingTable(rows []trending.Skill) map[string]gap.TrendingSkill {
	out := make(map[string]gap.TrendingSkill, len(rows))
	for _, r := range rows {
		name := skill.Normalize(r.Name)
		if name == "" {
			continue
		}
		out[name] = gap.TrendingSkill{
			Demand:       r.Demand,
			Relevance:    r.Relevance,
			SalaryImpact: r.SalaryImpact,
		}
	}
	return out
}
