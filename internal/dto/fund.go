package dto

// ── funding DTOs ──

// CreateCheckoutRequest starts a hosted checkout for the given amount.
type CreateCheckoutRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CheckoutResponse carries the hosted checkout redirect URL.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// FundResponse is one recorded monetary donation.
type FundResponse struct {
	ID         string  `json:"id"`
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	FundedAt   string  `json:"fundedAt,omitempty"`
}

// FundListRequest pages through recorded funds.
type FundListRequest struct {
	PaginationRequest
}

// FundListResponse is the fund list payload.
type FundListResponse struct {
	Funds      []FundResponse `json:"funds"`
	TotalFunds int64          `json:"totalFunds"`
}
