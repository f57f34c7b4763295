package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"resume-match/internal/domain/resume"
)

// ContentGenerator is the prompt interface Structurer depends on; tests plug
// in a canned generator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Structurer turns extracted resume text into the structured Parsed form.
type Structurer struct {
	generator ContentGenerator
	logger    *log.Logger
}

func NewStructurer(generator ContentGenerator, logger *log.Logger) *Structurer {
	if logger == nil {
		logger = log.Default()
	}
	return &Structurer{generator: generator, logger: logger}
}

const structurePrompt = `Extract structured information from this resume text and return it as JSON.

Return ONLY a JSON object with this exact shape, no prose and no markdown:
{
  "personal_info": {"full_name": "", "email": "", "phone": "", "location": "", "linkedin": "", "website": ""},
  "summary": "",
  "work_experience": [{"company": "", "position": "", "duration": "", "description": ""}],
  "education": [{"degree": "", "institution": "", "graduation_year": ""}],
  "skills": {"technical": [], "soft": [], "languages": []},
  "certifications": []
}

Resume text:
%s`

// Structure asks the model for the structured form. A response that cannot
// be decoded degrades to the empty parse rather than failing the pipeline;
// extraction problems are the model's to have, not the caller's.
func (s *Structurer) Structure(ctx context.Context, rawText string) (resume.Parsed, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return resume.Empty(), nil
	}

	raw, err := s.generator.GenerateContent(ctx, fmt.Sprintf(structurePrompt, rawText))
	if err != nil {
		return resume.Empty(), err
	}

	parsed := resume.Empty()
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &parsed); err != nil {
		s.logger.Printf("[LLM] unparseable structuring response, storing empty parse: %v", err)
		return resume.Empty(), nil
	}
	return parsed, nil
}

// CleanJSON strips the markdown code fences models wrap JSON payloads in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
