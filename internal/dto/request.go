package dto

// ── donation request DTOs ──

// CreateRequestRequest creates a donation request. Every field is required;
// requester identity comes from the session, never from the body.
type CreateRequestRequest struct {
	RecipientName  string `json:"recipientName"  binding:"required,max=100"`
	District       string `json:"district"       binding:"required"`
	Upazila        string `json:"upazila"        binding:"required"`
	BloodGroup     string `json:"bloodGroup"     binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	HospitalName   string `json:"hospitalName"   binding:"required,max=200"`
	FullAddress    string `json:"fullAddress"    binding:"required,max=500"`
	DonationDate   string `json:"donationDate"   binding:"required,datetime=2006-01-02"`
	DonationTime   string `json:"donationTime"   binding:"required,datetime=15:04"`
	RequestMessage string `json:"requestMessage" binding:"required,max=1000"`
}

// UpdateRequestRequest is the full-field edit. It never touches status or
// donor fields.
type UpdateRequestRequest struct {
	RecipientName  string `json:"recipientName"  binding:"required,max=100"`
	District       string `json:"district"       binding:"required"`
	Upazila        string `json:"upazila"        binding:"required"`
	BloodGroup     string `json:"bloodGroup"     binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	HospitalName   string `json:"hospitalName"   binding:"required,max=200"`
	FullAddress    string `json:"fullAddress"    binding:"required,max=500"`
	DonationDate   string `json:"donationDate"   binding:"required,datetime=2006-01-02"`
	DonationTime   string `json:"donationTime"   binding:"required,datetime=15:04"`
	RequestMessage string `json:"requestMessage" binding:"required,max=1000"`
}

// UpdateStatusRequest is the status-only patch. Donor fields are required
// exactly when transitioning to inprogress and forbidden otherwise.
type UpdateStatusRequest struct {
	Status     string `json:"status"     binding:"required,oneof=pending inprogress done canceled"`
	DonorName  string `json:"donorName"  binding:"omitempty,max=100"`
	DonorEmail string `json:"donorEmail" binding:"omitempty,email"`
}

// RequestListRequest filters a request list.
type RequestListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=all pending inprogress done canceled"`
}

// RequestResponse is one donation request on the wire.
type RequestResponse struct {
	ID             string `json:"id"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RecipientName  string `json:"recipientName"`
	District       string `json:"district"`
	Upazila        string `json:"upazila"`
	BloodGroup     string `json:"bloodGroup"`
	HospitalName   string `json:"hospitalName"`
	FullAddress    string `json:"fullAddress"`
	DonationDate   string `json:"donationDate"`
	DonationTime   string `json:"donationTime"`
	RequestMessage string `json:"requestMessage"`
	Status         string `json:"status"`
	DonorName      string `json:"donorName,omitempty"`
	DonorEmail     string `json:"donorEmail,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

// RequestListResponse is the list payload: {requests, totalRequest}.
type RequestListResponse struct {
	Requests     []RequestResponse `json:"requests"`
	TotalRequest int64             `json:"totalRequest"`
}
