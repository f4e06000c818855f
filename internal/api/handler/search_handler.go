package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/service"
	"bloodconnect/backend/pkg/response"
)

// SearchHandler serves the public donor search.
type SearchHandler struct {
	searchSvc service.SearchService
	exportSvc service.ExportService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(searchSvc service.SearchService, exportSvc service.ExportService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc, exportSvc: exportSvc}
}

// Search finds pending requests by blood group, district, and upazila.
// GET /api/v1/search-request?bloodGroup=&district=&upazila=
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "bloodGroup is required and must be a valid group")
		return
	}

	result, err := h.searchSvc.Search(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownDistrict), errors.Is(err, service.ErrUnknownUpazila):
			response.BadRequest(c, 11003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Export downloads the current search results as PDF.
// GET /api/v1/search-request/export?bloodGroup=&district=&upazila=
func (h *SearchHandler) Export(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "bloodGroup is required and must be a valid group")
		return
	}

	buf, filename, err := h.exportSvc.ExportSearchResults(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrExportNoRequests) {
			response.NotFound(c, 13001, "no matching requests to export")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
