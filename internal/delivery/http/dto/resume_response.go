package dto

import (
	"time"

	"resume-match/internal/domain/resume"
)

type ResumeResponse struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type"`
	Status      string         `json:"status"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	ParsedAt    *time.Time     `json:"parsed_at,omitempty"`
	Parsed      *resume.Parsed `json:"parsed,omitempty"`
}

// NewResumeResponse converts a stored resume for the API. The parsed form is
// only attached once structuring finished; raw text never leaves the server.
func NewResumeResponse(r resume.Resume, includeParsed bool) ResumeResponse {
	out := ResumeResponse{
		ID:          r.ID.String(),
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Status:      r.Status,
		UploadedAt:  r.UploadedAt,
		ParsedAt:    r.ParsedAt,
	}
	if includeParsed && r.Status == resume.StatusParsed {
		parsed := r.Parsed
		out.Parsed = &parsed
	}
	return out
}

func NewResumeListResponse(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeResponse(r, false))
	}
	return out
}
