package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/pkg/response"
)

// RefdataHandler serves the static district/upazila files the address
// forms consume. The payloads are embedded and immutable, so clients may
// cache them aggressively.
type RefdataHandler struct{}

// NewRefdataHandler creates a RefdataHandler.
func NewRefdataHandler() *RefdataHandler {
	return &RefdataHandler{}
}

// Districts serves districts.json.
// GET /districts.json
func (h *RefdataHandler) Districts(c *gin.Context) {
	raw, err := refdata.RawDistricts()
	if err != nil {
		response.InternalError(c)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "application/json", raw)
}

// Upazilas serves upazilas.json.
// GET /upazilas.json
func (h *RefdataHandler) Upazilas(c *gin.Context) {
	raw, err := refdata.RawUpazilas()
	if err != nil {
		response.InternalError(c)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "application/json", raw)
}
