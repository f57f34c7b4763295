package analysis

import (
	"context"
	"errors"
	"log"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/match"
	"resume-match/internal/domain/resume"
	"resume-match/internal/queue"
	matchinguc "resume-match/internal/usecase/matching"
	"resume-match/internal/ws"
)

// Structurer is the LLM step the worker depends on.
type Structurer interface {
	Structure(ctx context.Context, rawText string) (resume.Parsed, error)
}

type Invalidator interface {
	InvalidateResume(ctx context.Context, resumeID string) error
}

const jobPageSize = 100

// Service runs the background half of an upload: structure the raw text,
// store the parse, and precompute match results against the current jobs.
type Service struct {
	resumes    resume.Repository
	jobs       job.Repository
	results    match.Repository
	structurer Structurer
	cache      Invalidator
	logger     *log.Logger
}

func NewService(resumes resume.Repository, jobs job.Repository, results match.Repository, structurer Structurer, cache Invalidator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		resumes:    resumes,
		jobs:       jobs,
		results:    results,
		structurer: structurer,
		cache:      cache,
		logger:     logger,
	}
}

// Process handles one queued analysis task. Structuring failures mark the
// resume failed and notify the owner; scoring failures against individual
// jobs are logged and skipped.
func (s *Service) Process(ctx context.Context, task queue.AnalysisTask) error {
	rec, err := s.resumes.GetByID(ctx, task.ResumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			s.logger.Printf("[Analysis] resume gone, dropping task resume_id=%s", task.ResumeID)
			return nil
		}
		return err
	}

	parsed, err := s.structurer.Structure(ctx, rec.RawText)
	if err != nil {
		_ = s.resumes.UpdateStatus(ctx, rec.ID, resume.StatusFailed)
		ws.NotifyAnalysisCompleted(task.UserID, rec.ID, resume.StatusFailed)
		return err
	}

	if err := s.resumes.UpdateParsed(ctx, rec.ID, parsed, resume.StatusParsed); err != nil {
		return err
	}
	rec.Parsed = parsed

	if s.cache != nil {
		_ = s.cache.InvalidateResume(ctx, rec.ID.String())
	}

	s.scoreAll(ctx, rec)

	ws.NotifyAnalysisCompleted(task.UserID, rec.ID, resume.StatusParsed)
	s.logger.Printf("[Analysis] completed resume_id=%s", rec.ID)
	return nil
}

func (s *Service) scoreAll(ctx context.Context, rec resume.Resume) {
	for offset := 0; ; offset += jobPageSize {
		jobs, err := s.jobs.List(ctx, jobPageSize, offset)
		if err != nil {
			s.logger.Printf("[Analysis] list jobs: %v", err)
			return
		}
		if len(jobs) == 0 {
			return
		}
		for _, j := range jobs {
			result := matchinguc.Compute(rec, j)
			if err := s.results.Upsert(ctx, result); err != nil {
				s.logger.Printf("[Analysis] persist match resume_id=%s job_id=%s err=%v", rec.ID, j.ID, err)
			}
		}
		if len(jobs) < jobPageSize {
			return
		}
	}
}
