package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	uccareer "resume-match/internal/usecase/career"
)

type CareerHandler struct {
	uc uccareer.CareerUsecase
}

func NewCareerHandler(uc uccareer.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/career", h.Insight)
}

func (h *CareerHandler) Insight(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	insight, err := h.uc.Insight(c.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, uccareer.ErrResumeNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, insight)
}
