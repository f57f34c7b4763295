package dto

import (
	"time"

	"resume-match/internal/domain/job"
)

type JobResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Description        string    `json:"description"`
	RequiredSkills     []string  `json:"required_skills"`
	Requirements       []string  `json:"requirements"`
	RequiredExperience string    `json:"required_experience"`
	SalaryMin          int       `json:"salary_min,omitempty"`
	SalaryMax          int       `json:"salary_max,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type JobListResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                 j.ID.String(),
		Title:              j.Title,
		Company:            j.Company,
		Description:        j.Description,
		RequiredSkills:     emptyIfNil(j.RequiredSkills),
		Requirements:       emptyIfNil(j.Requirements),
		RequiredExperience: j.RequiredExperience,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		CreatedAt:          j.CreatedAt,
	}
}

func NewJobListResponse(jobs []job.Job, total, limit, offset int) JobListResponse {
	items := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, NewJobResponse(j))
	}
	return JobListResponse{Jobs: items, Total: total, Limit: limit, Offset: offset}
}
