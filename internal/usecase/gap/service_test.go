package gap

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/domain/resume"
	"resume-match/internal/domain/trending"
)

type mockResumeRepo struct {
	byID map[uuid.UUID]resume.Resume
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

func (m *mockResumeRepo) UpdateParsed(context.Context, uuid.UUID, resume.Parsed, string) error {
	return nil
}

func (m *mockResumeRepo) UpdateStatus(context.Context, uuid.UUID, string) error { return nil }

type mockTrendingRepo struct {
	rows []trending.Skill
	err  error
}

func (m *mockTrendingRepo) ListAll(context.Context) ([]trending.Skill, error) {
	return m.rows, m.err
}

func (m *mockTrendingRepo) Upsert(context.Context, trending.Skill) error { return nil }

type fakeCache struct {
	entries map[string][]byte
	sets    []string
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.entries == nil {
		f.entries = map[string][]byte{}
	}
	f.entries[key] = b
	f.sets = append(f.sets, key)
	return nil
}

func parsedWithSkills(skills ...string) resume.Parsed {
	p := resume.Empty()
	p.Skills.Technical = skills
	return p
}

func TestAnalyze_MissingAndExisting(t *testing.T) {
	rec := resume.Resume{ID: uuid.New(), UserID: uuid.New(), Parsed: parsedWithSkills("Python", "React")}
	resumes := &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{rec.ID: rec}}
	trend := &mockTrendingRepo{rows: []trending.Skill{
		{Name: "python", Demand: 9500, Relevance: 0.95, SalaryImpact: 15000},
		{Name: "aws", Demand: 7800, Relevance: 0.90, SalaryImpact: 18000},
		{Name: "docker", Demand: 6500, Relevance: 0.88, SalaryImpact: 10000},
	}}
	c := &fakeCache{}

	svc := NewService(resumes, trend, c, nil)

	a, err := svc.Analyze(context.Background(), rec.UserID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(a.MissingSkills) != 2 {
		t.Fatalf("expected 2 missing skills, got %v", a.MissingSkills)
	}
	if len(a.ExistingSkills) != 1 || a.ExistingSkills[0] != "python" {
		t.Fatalf("unexpected existing skills: %v", a.ExistingSkills)
	}
	if a.GapPercentage != 66.67 {
		t.Fatalf("expected gap 66.67, got %v", a.GapPercentage)
	}
	if len(c.sets) != 1 || c.sets[0] != "gap:"+rec.ID.String() {
		t.Fatalf("expected analysis cached under the resume id, got %v", c.sets)
	}
}

func TestAnalyze_CacheHit(t *testing.T) {
	rec := resume.Resume{ID: uuid.New(), UserID: uuid.New(), Parsed: parsedWithSkills("Python")}
	resumes := &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{rec.ID: rec}}
	trend := &mockTrendingRepo{err: errors.New("must not be called")}

	cached, _ := json.Marshal(map[string]any{"GapPercentage": 12.5})
	c := &fakeCache{entries: map[string][]byte{"gap:" + rec.ID.String(): cached}}

	svc := NewService(resumes, trend, c, nil)

	a, err := svc.Analyze(context.Background(), rec.UserID, rec.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.GapPercentage != 12.5 {
		t.Fatalf("expected cached gap 12.5, got %v", a.GapPercentage)
	}
}

func TestAnalyze_ForeignResume(t *testing.T) {
	rec := resume.Resume{ID: uuid.New(), UserID: uuid.New()}
	resumes := &mockResumeRepo{byID: map[uuid.UUID]resume.Resume{rec.ID: rec}}
	svc := NewService(resumes, &mockTrendingRepo{}, &fakeCache{}, nil)

	_, err := svc.Analyze(context.Background(), uuid.New(), rec.ID)
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestSkillFrequencies(t *testing.T) {
	p := resume.Empty()
	p.Summary = "Python developer shipping python services"
	p.Skills.Technical = []string{"Python", "Kafka"}

	freq := SkillFrequencies(p)
	if freq["python"] < 2 {
		t.Fatalf("expected python counted in text, got %d", freq["python"])
	}
	if freq["kafka"] != 1 {
		t.Fatalf("expected unmentioned skill floored at 1, got %d", freq["kafka"])
	}
}
