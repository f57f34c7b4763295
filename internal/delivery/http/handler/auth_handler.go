package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/user"
	"resume-match/internal/pkg/jwt"
	"resume-match/internal/pkg/response"
	ucauth "resume-match/internal/usecase/auth"
)

type AuthHandler struct {
	uc  ucauth.AuthUsecase
	jwt jwt.Service
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase, jwtSvc jwt.Service) *AuthHandler {
	return &AuthHandler{uc: uc, jwt: jwtSvc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.Register(c.Context(), ucauth.RegisterInput{Email: req.Email, Name: req.Name, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}
	return h.respondWithTokens(c, fiber.StatusCreated, usr)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}
	return h.respondWithTokens(c, fiber.StatusOK, usr)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := h.jwt.ValidateToken(tok)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
		}
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	}
	if !h.jwt.IsRefreshToken(claims) {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, nil)
	}

	access, err := h.jwt.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	refresh, err := h.jwt.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) respondWithTokens(c fiber.Ctx, status int, usr user.User) error {
	access, err := h.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	refresh, err := h.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, status, response.MessageOK, map[string]any{
		"user":          dto.NewUserResponse(usr),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
