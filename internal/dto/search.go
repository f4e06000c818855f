package dto

// ── search DTOs ──

// SearchRequest is the stateless donor search query. Blood group is
// required; district is optional; upazila is only meaningful when a
// district is selected.
type SearchRequest struct {
	BloodGroup string `form:"bloodGroup" binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	District   string `form:"district"   binding:"omitempty"`
	Upazila    string `form:"upazila"    binding:"omitempty"`
}

// SearchResponse wraps the matching pending requests.
type SearchResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}
