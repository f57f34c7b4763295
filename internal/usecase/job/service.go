package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/skill"
	"resume-match/internal/search"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("job not found")
	ErrInternal     = errors.New("internal error")
)

type CreateInput struct {
	Title              string
	Company            string
	Description        string
	RequiredSkills     []string
	Requirements       []string
	RequiredExperience string
	SalaryMin          int
	SalaryMax          int
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateInput) (job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, limit, offset int) ([]job.Job, int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]job.Job, int, error)
}

type Service struct {
	jobs job.Repository
}

func NewService(jobs job.Repository) *Service {
	return &Service{jobs: jobs}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 || (in.SalaryMax > 0 && in.SalaryMax < in.SalaryMin) {
		return job.Job{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	j := job.Job{
		ID:                 uuid.New(),
		Title:              title,
		Company:            strings.TrimSpace(in.Company),
		Description:        strings.TrimSpace(in.Description),
		RequiredSkills:     skill.NormalizeAll(in.RequiredSkills),
		Requirements:       trimAll(in.Requirements),
		RequiredExperience: strings.TrimSpace(in.RequiredExperience),
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]job.Job, int, error) {
	jobs, err := s.jobs.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, ErrInternal
	}
	total, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return jobs, total, nil
}

// searchWindow bounds how many recent postings a query is ranked against.
const searchWindow = 200

// Search ranks recent postings against the query and pages through the
// relevant ones. A blank query falls back to plain listing.
func (s *Service) Search(ctx context.Context, query string, limit, offset int) ([]job.Job, int, error) {
	q := search.ProcessQuery(query)
	if q.Normalized == "" {
		return s.List(ctx, limit, offset)
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	window := make([]job.Job, 0, searchWindow)
	for page := 0; len(window) < searchWindow; page++ {
		batch, err := s.jobs.List(ctx, 100, page*100)
		if err != nil {
			return nil, 0, ErrInternal
		}
		window = append(window, batch...)
		if len(batch) < 100 {
			break
		}
	}

	ranked := search.RankJobs(window, q.Variants, time.Now().UTC())
	total := len(ranked)
	if offset >= total {
		return []job.Job{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return ranked[offset:end], total, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
