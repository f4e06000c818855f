package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

// RequestHandler serves the donation request endpoints.
type RequestHandler struct {
	requestSvc service.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

// Create creates a donation request owned by the caller.
// POST /api/v1/donation-requests
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.requestSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserBlocked):
			response.Forbidden(c, 12001, "blocked accounts cannot create requests")
		case errors.Is(err, service.ErrUnknownDistrict), errors.Is(err, service.ErrUnknownUpazila):
			response.BadRequest(c, 11003, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11005, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List pages through requests, scoped by the caller's role.
// GET /api/v1/donation-requests?page=&size=&status=
func (h *RequestHandler) List(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.RequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}

	result, err := h.requestSvc.List(c.Request.Context(), &req, role, email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// PublicPending pages through unclaimed requests without authentication.
// GET /api/v1/donation-requests/status/pending?page=&size=
func (h *RequestHandler) PublicPending(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}

	result, err := h.requestSvc.PublicPending(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Get returns one request.
// GET /api/v1/donation-requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	result, err := h.requestSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			response.NotFound(c, 12002, "donation request not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update replaces every editable field of a request.
// PATCH /api/v1/donation-requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.requestSvc.Update(c.Request.Context(), c.Param("id"), &req, role, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 12002, "donation request not found")
		case errors.Is(err, service.ErrNotRequestOwner):
			response.Forbidden(c, 12003, "not the owner of this request")
		case errors.Is(err, service.ErrUnknownDistrict), errors.Is(err, service.ErrUnknownUpazila):
			response.BadRequest(c, 11003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// UpdateStatus moves a request through its lifecycle.
// PATCH /api/v1/donation-requests/status/:id
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid status payload")
		return
	}

	result, err := h.requestSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req, role, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 12002, "donation request not found")
		case errors.Is(err, service.ErrNotRequestOwner):
			response.Forbidden(c, 12003, "not the owner of this request")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, 12004, "status transition not allowed")
		case errors.Is(err, service.ErrDonorFieldsRequired),
			errors.Is(err, service.ErrDonorFieldsForbidden):
			response.BadRequest(c, 12005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes a request.
// DELETE /api/v1/donation-requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	err := h.requestSvc.Delete(c.Request.Context(), c.Param("id"), role, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 12002, "donation request not found")
		case errors.Is(err, service.ErrNotRequestOwner):
			response.Forbidden(c, 12003, "not the owner of this request")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
