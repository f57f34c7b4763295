package llm

import (
	"context"
	"errors"
	"testing"
)

type cannedGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *cannedGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := CleanJSON(c.in); got != c.want {
			t.Fatalf("CleanJSON(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStructure_DecodesFencedResponse(t *testing.T) {
	gen := &cannedGenerator{response: "```json\n" + `{
		"summary": "Backend engineer",
		"work_experience": [{"company": "Acme", "position": "Engineer", "duration": "Jan 2020 - Present", "description": "Go services"}],
		"skills": {"technical": ["Go", "PostgreSQL"], "soft": [], "languages": []}
	}` + "\n```"}

	s := NewStructurer(gen, nil)
	parsed, err := s.Structure(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if parsed.Summary != "Backend engineer" {
		t.Fatalf("unexpected summary: %q", parsed.Summary)
	}
	if len(parsed.WorkExperience) != 1 || parsed.WorkExperience[0].RawDuration != "Jan 2020 - Present" {
		t.Fatalf("unexpected work experience: %+v", parsed.WorkExperience)
	}
	if len(parsed.Skills.Technical) != 2 {
		t.Fatalf("unexpected skills: %+v", parsed.Skills)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}
}

func TestStructure_GarbageDegradesToEmpty(t *testing.T) {
	gen := &cannedGenerator{response: "I could not parse that resume, sorry."}

	s := NewStructurer(gen, nil)
	parsed, err := s.Structure(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("garbage output must not error, got %v", err)
	}
	if len(parsed.Skills.Technical) != 0 || len(parsed.WorkExperience) != 0 {
		t.Fatalf("expected empty parse, got %+v", parsed)
	}
}

func TestStructure_GeneratorErrorSurfaces(t *testing.T) {
	gen := &cannedGenerator{err: errors.New("quota exceeded")}

	s := NewStructurer(gen, nil)
	if _, err := s.Structure(context.Background(), "text"); err == nil {
		t.Fatalf("expected generator error surfaced")
	}
}

func TestStructure_EmptyTextSkipsGeneration(t *testing.T) {
	gen := &cannedGenerator{}

	s := NewStructurer(gen, nil)
	if _, err := s.Structure(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("blank text must not hit the model")
	}
}
