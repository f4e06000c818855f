package dto

// ── dashboard DTOs ──
//
// Aggregates are computed server-side and are authoritative; clients must
// not re-derive them from raw lists.

// AdminStatsResponse is the admin dashboard summary.
type AdminStatsResponse struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalRequests int64   `json:"totalRequests"`
	TotalFunding  float64 `json:"totalFunding"`
}

// VolunteerStatsResponse is the volunteer dashboard summary.
type VolunteerStatsResponse struct {
	TotalRequests int64 `json:"totalRequests"`
	Pending       int64 `json:"pending"`
	InProgress    int64 `json:"inprogress"`
	Done          int64 `json:"done"`
	Canceled      int64 `json:"canceled"`
}
