package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Processing status of an uploaded resume. Uploads move uploaded -> parsed,
// or uploaded -> failed when extraction or structuring gives up.
const (
	StatusUploaded = "uploaded"
	StatusParsed   = "parsed"
	StatusFailed   = "failed"
)

var ErrNotFound = errors.New("resume not found")

// Resume is the stored upload plus its extracted and structured content.
type Resume struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Filename    string
	ContentType string
	RawText     string
	Parsed      Parsed
	Status      string
	UploadedAt  time.Time
	ParsedAt    *time.Time
}

type Repository interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error)
	UpdateParsed(ctx context.Context, id uuid.UUID, parsed Parsed, status string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
