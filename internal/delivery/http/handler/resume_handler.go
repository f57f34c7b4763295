package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	ucresume "resume-match/internal/usecase/resume"
)

type ResumeHandler struct {
	uc ucresume.ResumeUsecase
}

func NewResumeHandler(uc ucresume.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Upload)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

// Upload accepts a multipart form with a single "file" field.
func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file", nil, err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	rec, err := h.uc.Upload(c.Context(), userID, fileHeader.Filename, contentType, data)
	if err != nil {
		return mapResumeError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewResumeResponse(rec, false))
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapResumeError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeListResponse(items))
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid resume id", nil, err)
	}

	rec, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapResumeError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResponse(rec, true))
}

func mapResumeError(err error) error {
	switch {
	case errors.Is(err, ucresume.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucresume.ErrUnsupportedType):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unsupported file type", nil, err)
	case errors.Is(err, ucresume.ErrTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, err)
	case errors.Is(err, ucresume.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
