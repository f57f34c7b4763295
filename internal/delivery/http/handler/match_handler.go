package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	ucmatching "resume-match/internal/usecase/matching"
)

type MatchHandler struct {
	uc ucmatching.MatchingUsecase
}

func NewMatchHandler(uc ucmatching.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// Routes hang off the resume group: scoring is always relative to one of the
// caller's resumes.
func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/matches", h.ListForResume)
	r.Get("/:id/matches/:jobID", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}
	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	result, err := h.uc.Match(c.Context(), userID, resumeID, jobID)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(result))
}

func (h *MatchHandler) ListForResume(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	results, err := h.uc.ListForResume(c.Context(), userID, resumeID)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(results))
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, ucmatching.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, ucmatching.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
