package dto

// ── shared pagination ──

// PaginationRequest carries the common list query parameters.
// The wire names match the client: ?page=&size=.
type PaginationRequest struct {
	Page int `form:"page" binding:"omitempty,min=1"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

// DefaultPageSize is used when the client omits ?size=.
// All list screens share one size instead of the 3/8/unbounded drift the
// old client had.
const DefaultPageSize = 8

// GetPage returns the 1-based page number with its default.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetSize returns the page size with its default.
func (p *PaginationRequest) GetSize() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

// GetOffset computes the row offset.
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetSize()
}
