package handler

import (
	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

// DashboardHandler serves the role dashboard aggregates.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	requestSvc   service.RequestService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService, requestSvc service.RequestService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, requestSvc: requestSvc}
}

// AdminStats returns the admin dashboard summary.
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	result, err := h.dashboardSvc.AdminStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// VolunteerStats returns the volunteer dashboard summary.
// GET /api/v1/volunteer/stats
func (h *DashboardHandler) VolunteerStats(c *gin.Context) {
	result, err := h.dashboardSvc.VolunteerStats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// VolunteerRequests pages through every request for the volunteer board.
// GET /api/v1/volunteer/donation-requests?page=&size=&status=
func (h *DashboardHandler) VolunteerRequests(c *gin.Context) {
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
