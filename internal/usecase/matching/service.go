package matching

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/experience"
	"resume-match/internal/domain/job"
	"resume-match/internal/domain/match"
	"resume-match/internal/domain/matching"
	"resume-match/internal/domain/resume"
	"resume-match/internal/domain/skill"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrJobNotFound    = errors.New("job not found")
	ErrInternal       = errors.New("internal error")
)

// Cache is the slice of the redis wrapper this usecase needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type MatchingUsecase interface {
	Match(ctx context.Context, userID, resumeID, jobID uuid.UUID) (match.Result, error)
	ListForResume(ctx context.Context, userID, resumeID uuid.UUID) ([]match.Result, error)
}

type Service struct {
	resumes resume.Repository
	jobs    job.Repository
	results match.Repository
	cache   Cache
	logger  *log.Logger
}

func NewService(resumes resume.Repository, jobs job.Repository, results match.Repository, c Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{resumes: resumes, jobs: jobs, results: results, cache: c, logger: logger}
}

// Match scores one resume against one job, persists the result, and caches
// it until the resume is reparsed or the job changes.
func (s *Service) Match(ctx context.Context, userID, resumeID, jobID uuid.UUID) (match.Result, error) {
	rec, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		return match.Result{}, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return match.Result{}, ErrJobNotFound
		}
		return match.Result{}, ErrInternal
	}

	cacheKey := "match:" + resumeID.String() + ":" + jobID.String()
	if s.cache != nil {
		var cached match.Result
		if found, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	result := Compute(rec, j)

	if err := s.results.Upsert(ctx, result); err != nil {
		s.logger.Printf("[Match] persist failed resume_id=%s job_id=%s err=%v", resumeID, jobID, err)
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cacheKey, result, 0)
	}

	return result, nil
}

func (s *Service) ListForResume(ctx context.Context, userID, resumeID uuid.UUID) ([]match.Result, error) {
	if _, err := s.loadResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	out, err := s.results.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) loadResume(ctx context.Context, userID, resumeID uuid.UUID) (resume.Resume, error) {
	rec, err := s.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	if userID != uuid.Nil && rec.UserID != userID {
		return resume.Resume{}, ErrResumeNotFound
	}
	return rec, nil
}

// Compute runs both scoring passes over an already-loaded pair. The worker
// reuses it outside the ownership checks.
func Compute(rec resume.Resume, j job.Job) match.Result {
	req := Requirement(j)
	candidate := skill.NormalizeAll(rec.Parsed.Skills.Technical)
	months := experience.TotalMonths(rec.Parsed.WorkExperience)

	basic := matching.Score(candidate, req, months)
	extended := matching.ScoreExtended(matching.ExtendedInput{
		ResumeText: rec.Parsed.FullText(),
		Skills:     candidate,
		Experience: rec.Parsed.WorkExperience,
	}, req)

	return match.Result{
		ResumeID:      rec.ID,
		JobID:         j.ID,
		Score:         basic.Score,
		MatchedSkills: basic.MatchedSkills,
		MissingSkills: basic.MissingSkills,
		RelatedSkills: basic.RelatedSkills,

		ResumeMonths:    basic.Experience.ResumeMonths,
		RequiredMonths:  basic.Experience.RequiredMonths,
		ExperienceMatch: basic.Experience.Satisfied,

		OverallScore:       extended.OverallScore,
		SemanticSimilarity: extended.SemanticSimilarity,
		SkillRelevance:     extended.SkillRelevance,
		ExperienceFit:      extended.ExperienceRelevance,
		CulturalFit:        extended.CulturalFit.Overall,
		SalaryAlignment:    extended.SalaryAlignment.Score,

		ComputedAt: time.Now().UTC(),
	}
}

// Requirement maps a stored job onto the scoring engine's input.
func Requirement(j job.Job) matching.JobRequirement {
	req := matching.JobRequirement{
		Title:              j.Title,
		Description:        j.Description,
		RequiredSkills:     j.RequiredSkills,
		Requirements:       j.Requirements,
		RequiredExperience: j.RequiredExperience,
	}
	if j.SalaryMin > 0 && j.SalaryMax >= j.SalaryMin {
		req.SalaryRange = &matching.SalaryRange{Min: j.SalaryMin, Max: j.SalaryMax}
	}
	return req
}
