package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resume-match/internal/domain/job"
	"resume-match/internal/domain/match"
	"resume-match/internal/domain/resume"
	"resume-match/internal/queue"
)

type mockResumeRepo struct {
	byID     map[uuid.UUID]resume.Resume
	parsed   map[uuid.UUID]resume.Parsed
	statuses []string
}

func (m *mockResumeRepo) Create(context.Context, resume.Resume) error { return nil }

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return resume.Resume{}, resume.ErrNotFound
}

func (m *mockResumeRepo) ListByUser(context.Context, uuid.UUID) ([]resume.Resume, error) {
	return nil, nil
}

func (m *mockResumeRepo) UpdateParsed(_ context.Context, id uuid.UUID, p resume.Parsed, status string) error {
	if m.parsed == nil {
		m.parsed = map[uuid.UUID]resume.Parsed{}
	}
	m.parsed[id] = p
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *mockResumeRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status string) error {
	m.statuses = append(m.statuses, status)
	return nil
}

type mockJobRepo struct {
	jobs []job.Job
}

func (m *mockJobRepo) Create(context.Context, job.Job) error { return nil }

func (m *mockJobRepo) GetByID(context.Context, uuid.UUID) (job.Job, error) {
	return job.Job{}, job.ErrNotFound
}

func (m *mockJobRepo) List(_ context.Context, limit, offset int) ([]job.Job, error) {
	if offset >= len(m.jobs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.jobs) {
		end = len(m.jobs)
	}
	return m.jobs[offset:end], nil
}

func (m *mockJobRepo) Count(context.Context) (int, error) { return len(m.jobs), nil }

type mockResultRepo struct {
	upserted []match.Result
}

func (m *mockResultRepo) Upsert(_ context.Context, r match.Result) error {
	m.upserted = append(m.upserted, r)
	return nil
}

func (m *mockResultRepo) Get(context.Context, uuid.UUID, uuid.UUID) (match.Result, error) {
	return match.Result{}, nil
}

func (m *mockResultRepo) ListByResume(context.Context, uuid.UUID) ([]match.Result, error) {
	return nil, nil
}

type fakeStructurer struct {
	parsed resume.Parsed
	err    error
}

func (f fakeStructurer) Structure(context.Context, string) (resume.Parsed, error) {
	return f.parsed, f.err
}

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) InvalidateResume(_ context.Context, resumeID string) error {
	f.invalidated = append(f.invalidated, resumeID)
	return nil
}

func TestProcess_StructuresScoresAndInvalidates(t *testing.T) {
	rec := resume.Resume{ID: uuid.New(), UserID: uuid.New(), RawText: "raw", Status: resume.StatusUploaded}
	resumes := &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{rec.ID: rec}}
	jobs := &mockJobRepo{jobs: []job.Job{
		{ID: uuid.New(), Title: "Backend", RequiredSkills: []string{"python"}},
		{ID: uuid.New(), Title: "Frontend", RequiredSkills: []string{"react"}},
	}}
	results := &mockResultRepo{}
	inv := &fakeInvalidator{}

	parsed := resume.Empty()
	parsed.Skills.Technical = []string{"python"}

	svc := NewService(resumes, jobs, results, fakeStructurer{parsed: parsed}, inv, nil)

	err := svc.Process(context.Background(), queue.AnalysisTask{ResumeID: rec.ID, UserID: rec.UserID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := resumes.parsed[rec.ID]; len(got.Skills.Technical) != 1 {
		t.Fatalf("expected parse stored, got %+v", got)
	}
	if len(resumes.statuses) != 1 || resumes.statuses[0] != resume.StatusParsed {
		t.Fatalf("expected status parsed, got %v", resumes.statuses)
	}
	if len(results.upserted) != 2 {
		t.Fatalf("expected a match per job, got %d", len(results.upserted))
	}
	if results.upserted[0].Score != 100 {
		t.Fatalf("expected full match against the python job, got %v", results.upserted[0].Score)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != rec.ID.String() {
		t.Fatalf("expected cache invalidated for the resume, got %v", inv.invalidated)
	}
}

func TestProcess_StructureFailureMarksFailed(t *testing.T) {
	rec := resume.Resume{ID: uuid.New(), UserID: uuid.New(), RawText: "raw"}
	resumes := &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{rec.ID: rec}}

	svc := NewService(resumes, &mockJobRepo{}, &mockResultRepo{}, fakeStructurer{err: errors.New("llm timeout")}, nil, nil)

	err := svc.Process(context.Background(), queue.AnalysisTask{ResumeID: rec.ID, UserID: rec.UserID})
	if err == nil {
		t.Fatalf("expected error surfaced for requeue accounting")
	}
	if len(resumes.statuses) != 1 || resumes.statuses[0] != resume.StatusFailed {
		t.Fatalf("expected status failed, got %v", resumes.statuses)
	}
}

func TestProcess_MissingResumeDropsTask(t *testing.T) {
	svc := NewService(&mockResumeRepo{}, &mockJobRepo{}, &mockResultRepo{}, fakeStructurer{}, nil, nil)

	err := svc.Process(context.Background(), queue.AnalysisTask{ResumeID: uuid.New()})
	if err != nil {
		t.Fatalf("a vanished resume should not error the consumer, got %v", err)
	}
}
