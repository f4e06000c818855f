package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register creates a donor account.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid registration payload")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.Conflict(c, 11002, "email already registered")
		case errors.Is(err, service.ErrUnknownDistrict), errors.Is(err, service.ErrUnknownUpazila):
			response.BadRequest(c, 11003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Login signs a user in.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid login payload")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "email or password is incorrect")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// RefreshToken exchanges a refresh token for a fresh pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid refresh payload")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			response.Error(c, http.StatusUnauthorized, 11004, "refresh token invalid")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Me returns the caller's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11005, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword updates the caller's password.
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid password payload")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			response.BadRequest(c, 11006, "old password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
