package resume

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/resume"
	"resume-match/internal/extract"
	"resume-match/internal/queue"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrNotFound        = errors.New("resume not found")
	ErrInternal        = errors.New("internal error")
)

type Publisher interface {
	PublishAnalysis(task queue.AnalysisTask) error
}

type ResumeUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (resume.Resume, error)
	Get(ctx context.Context, userID, id uuid.UUID) (resume.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error)
}

type Service struct {
	resumes   resume.Repository
	publisher Publisher
	maxSize   int64
	logger    *log.Logger
}

func NewService(resumes resume.Repository, publisher Publisher, maxSize int64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &Service{resumes: resumes, publisher: publisher, maxSize: maxSize, logger: logger}
}

// Upload stores the raw upload with its extracted text and queues the
// structuring run. The caller gets the record back immediately in status
// "uploaded"; structuring and scoring happen in the worker.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (resume.Resume, error) {
	if userID == uuid.Nil || len(data) == 0 {
		return resume.Resume{}, ErrInvalidInput
	}
	if int64(len(data)) > s.maxSize {
		return resume.Resume{}, ErrTooLarge
	}

	text, err := extract.Text(contentType, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return resume.Resume{}, ErrUnsupportedType
		}
		return resume.Resume{}, ErrInvalidInput
	}

	rec := resume.Resume{
		ID:          uuid.New(),
		UserID:      userID,
		Filename:    filename,
		ContentType: contentType,
		RawText:     text,
		Parsed:      resume.Empty(),
		Status:      resume.StatusUploaded,
		UploadedAt:  time.Now().UTC(),
	}

	if err := s.resumes.Create(ctx, rec); err != nil {
		return resume.Resume{}, ErrInternal
	}

	if s.publisher != nil {
		task := queue.AnalysisTask{ResumeID: rec.ID, UserID: userID}
		if err := s.publisher.PublishAnalysis(task); err != nil {
			// The record stands either way; a stuck queue shows up as a
			// resume that never leaves "uploaded".
			s.logger.Printf("[Resume] enqueue analysis failed resume_id=%s err=%v", rec.ID, err)
		}
	}

	return rec, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (resume.Resume, error) {
	rec, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	// Ownership failures read as not-found so ids cannot be probed.
	if rec.UserID != userID {
		return resume.Resume{}, ErrNotFound
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := s.resumes.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
