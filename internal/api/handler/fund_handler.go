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

// FundHandler serves the funding endpoints.
type FundHandler struct {
	fundSvc service.FundService
}

// NewFundHandler creates a FundHandler.
func NewFundHandler(fundSvc service.FundService) *FundHandler {
	return &FundHandler{fundSvc: fundSvc}
}

// CreateCheckout opens a hosted checkout session for the caller.
// POST /api/v1/create-payment-checkout
func (h *FundHandler) CreateCheckout(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "amount must be a positive number")
		return
	}

	result, err := h.fundSvc.CreateCheckout(c.Request.Context(), &req, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentsDisabled):
			response.Error(c, http.StatusServiceUnavailable, 14001, "payments are not configured")
		case errors.Is(err, service.ErrUserBlocked):
			response.Forbidden(c, 14005, "account is blocked")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ConfirmPayment records a completed checkout. Safe to call repeatedly for
// the same session.
// POST /api/v1/success-payment?session_id=
func (h *FundHandler) ConfirmPayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.BadRequest(c, 10001, "session_id is required")
		return
	}

	result, err := h.fundSvc.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, 14002, "checkout session not found")
		case errors.Is(err, service.ErrSessionUnpaid):
			response.Error(c, http.StatusPaymentRequired, 14003, "checkout session is not paid")
		case errors.Is(err, service.ErrPaymentsDisabled):
			response.Error(c, http.StatusServiceUnavailable, 14001, "payments are not configured")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// List pages through recorded funds for the public funding board.
// GET /api/v1/funds?page=&size=
func (h *FundHandler) List(c *gin.Context) {
	var req dto.FundListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}

	result, err := h.fundSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Receipt downloads the PDF receipt of a succeeded fund.
// GET /api/v1/funds/:id/receipt
func (h *FundHandler) Receipt(c *gin.Context) {
	pdf, err := h.fundSvc.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFundNotFound) {
			response.NotFound(c, 14004, "fund not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt-"+c.Param("id")+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
