package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRequests downloads donation requests as an Excel workbook.
// GET /api/v1/donation-requests/export?status=
func (h *ExportHandler) ExportRequests(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRequests(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrExportNoRequests) {
			response.NotFound(c, 13001, "no requests to export")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportCalendar downloads one claimed request as an iCalendar event.
// GET /api/v1/donation-requests/:id/calendar
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, 12002, "donation request not found")
		case errors.Is(err, service.ErrExportUnclaimed):
			response.Conflict(c, 13002, "only a claimed request can be added to a calendar")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar", buf.Bytes())
}
