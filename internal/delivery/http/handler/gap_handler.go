package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	ucgap "resume-match/internal/usecase/gap"
)

type GapHandler struct {
	uc ucgap.GapUsecase
}

func NewGapHandler(uc ucgap.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/gap", h.Analyze)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	analysis, err := h.uc.Analyze(c.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, ucgap.ErrResumeNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapResponse(analysis))
}
