package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// Job is a posting candidates are matched against.
type Job struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Description        string
	RequiredSkills     []string
	Requirements       []string
	RequiredExperience string
	SalaryMin          int
	SalaryMax          int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Count(ctx context.Context) (int, error)
}
