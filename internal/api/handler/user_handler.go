package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

// UserHandler serves the user administration endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List pages through registered accounts.
// GET /api/v1/users?page=&size=&status=
func (h *UserHandler) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}

	result, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateStatus blocks or unblocks an account, addressed by email.
// PATCH /api/v1/update/user/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid status payload")
		return
	}

	result, err := h.userSvc.UpdateStatus(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, "user not found")
		case errors.Is(err, service.ErrSelfStatusChange):
			response.Forbidden(c, 11007, "cannot block yourself")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// UpdateRole changes an account's role, addressed by email.
// PATCH /api/v1/update/user/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid role payload")
		return
	}

	result, err := h.userSvc.UpdateRole(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, "user not found")
		case errors.Is(err, service.ErrSelfRoleChange):
			response.Forbidden(c, 11008, "cannot change your own role")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// GetRole answers the role probe the client session holder polls.
// GET /api/v1/users/role/:email
func (h *UserHandler) GetRole(c *gin.Context) {
	email := c.Param("email")

	result, err := h.userSvc.GetRoleByEmail(c.Request.Context(), email)
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

// GetByEmail returns one account's public profile.
// GET /api/v1/users/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	result, err := h.userSvc.GetByEmail(c.Request.Context(), email)
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

// UpdateProfile patches the profile of the addressed user. A user may
// patch their own profile; admins may patch anyone's.
// PATCH /api/v1/users/:email
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	callerEmail, ok := MustGetEmail(c)
	if !ok {
		return
	}
	callerRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	email := c.Param("email")
	if callerEmail != email && callerRole != "admin" {
		response.Forbidden(c, 10003, "cannot modify another user's profile")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid profile payload")
		return
	}

	result, err := h.userSvc.UpdateProfile(c.Request.Context(), email, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, "user not found")
		case errors.Is(err, service.ErrUnknownDistrict),
			errors.Is(err, service.ErrUnknownUpazila),
			errors.Is(err, service.ErrInvalidBloodGroup):
			response.BadRequest(c, 11003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
