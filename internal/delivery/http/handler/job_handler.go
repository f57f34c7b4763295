package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/domain/job"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	ucjob "resume-match/internal/usecase/job"
)

type JobHandler struct {
	uc ucjob.JobUsecase
}

type createJobRequest struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Description        string   `json:"description"`
	RequiredSkills     []string `json:"required_skills"`
	Requirements       []string `json:"requirements"`
	RequiredExperience string   `json:"required_experience"`
	SalaryMin          int      `json:"salary_min"`
	SalaryMax          int      `json:"salary_max"`
}

func NewJobHandler(uc ucjob.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), ucjob.CreateInput{
		Title:              req.Title,
		Company:            req.Company,
		Description:        req.Description,
		RequiredSkills:     req.RequiredSkills,
		Requirements:       req.Requirements,
		RequiredExperience: req.RequiredExperience,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
	})
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	var (
		jobs  []job.Job
		total int
		err   error
	)
	if q := c.Query("q"); q != "" {
		jobs, total, err = h.uc.Search(c.Context(), q, limit, offset)
	} else {
		jobs, total, err = h.uc.List(c.Context(), limit, offset)
	}
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs, total, limit, offset))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucjob.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
