package model

// Donation request lifecycle states.
//
//	pending ──→ inprogress ──→ done
//	   │             │
//	   └──→ canceled ←┘
//
// done and canceled are terminal.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusDone       = "done"
	StatusCanceled   = "canceled"
)

// allowedTransitions is the explicit transition table. Any pair not listed
// here is rejected, including self-transitions.
var allowedTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCanceled},
	StatusInProgress: {StatusDone, StatusCanceled},
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DonationRequest is a need for blood of a given group at a given place and
// time — maps to the donation_requests table.
//
// Invariant: DonorName and DonorEmail are set if and only if the request has
// left the pending state via a claim; both are attached atomically with the
// pending→inprogress transition and never touched by any other transition.
type DonationRequest struct {
	RequestID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requestId"`
	RequesterName  string  `gorm:"type:varchar(100);not null"                     json:"requesterName"`
	RequesterEmail string  `gorm:"type:varchar(255);not null;index"               json:"requesterEmail"`
	RecipientName  string  `gorm:"type:varchar(100);not null"                     json:"recipientName"`
	District       string  `gorm:"type:varchar(100);not null"                     json:"district"`
	Upazila        string  `gorm:"type:varchar(100);not null"                     json:"upazila"`
	BloodGroup     string  `gorm:"type:varchar(3);not null"                       json:"bloodGroup"`
	HospitalName   string  `gorm:"type:varchar(200);not null"                     json:"hospitalName"`
	FullAddress    string  `gorm:"type:varchar(500);not null"                     json:"fullAddress"`
	DonationDate   string  `gorm:"type:varchar(10);not null"                      json:"donationDate"` // YYYY-MM-DD
	DonationTime   string  `gorm:"type:varchar(5);not null"                       json:"donationTime"` // HH:MM
	RequestMessage string  `gorm:"type:varchar(1000);not null"                    json:"requestMessage"`
	Status         string  `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DonorName      *string `gorm:"type:varchar(100)"                              json:"donorName,omitempty"`
	DonorEmail     *string `gorm:"type:varchar(255)"                              json:"donorEmail,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (DonationRequest) TableName() string { return "donation_requests" }

// Claimed reports whether a donor has been attached to the request.
func (r *DonationRequest) Claimed() bool {
	return r.DonorName != nil && r.DonorEmail != nil
}
