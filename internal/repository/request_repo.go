package repository

import (
	"context"

	"gorm.io/gorm"

	"bloodconnect/backend/internal/model"
)

// RequestFilter narrows a request listing. Zero values mean "no filter".
type RequestFilter struct {
	Status         string // one lifecycle state; empty or "all" matches every state
	RequesterEmail string // scope to one requester's own requests
	DonorEmail     string // scope to requests claimed by one donor
}

// SearchFilter narrows the public donor search. BloodGroup is mandatory;
// District and Upazila tighten the match when non-empty.
type SearchFilter struct {
	BloodGroup string
	District   string
	Upazila    string
}

// RequestRepository is the donation request data access interface.
type RequestRepository interface {
	Create(ctx context.Context, req *model.DonationRequest) error
	GetByID(ctx context.Context, id string) (*model.DonationRequest, error)
	Update(ctx context.Context, req *model.DonationRequest) error
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, filter RequestFilter, offset, limit int) ([]model.DonationRequest, int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]model.DonationRequest, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// requestRepo is the GORM implementation of RequestRepository.
type requestRepo struct {
	db *gorm.DB
}

// NewRequestRepo creates a RequestRepository instance.
func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db: db}
}

func (r *requestRepo) Create(ctx context.Context, req *model.DonationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (*model.DonationRequest, error) {
	var req model.DonationRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepo) Update(ctx context.Context, req *model.DonationRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete soft-deletes the request and reports how many rows were affected,
// so the caller can distinguish a first delete from a repeat.
func (r *requestRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("request_id = ?", id).
		Delete(&model.DonationRequest{})
	return res.RowsAffected, res.Error
}

func (r *requestRepo) List(ctx context.Context, filter RequestFilter, offset, limit int) ([]model.DonationRequest, int64, error) {
	var reqs []model.DonationRequest
	var total int64

	db := r.db.WithContext(ctx).Model(&model.DonationRequest{})
	if filter.Status != "" && filter.Status != "all" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.RequesterEmail != "" {
		db = db.Where("requester_email = ?", filter.RequesterEmail)
	}
	if filter.DonorEmail != "" {
		db = db.Where("donor_email = ?", filter.DonorEmail)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

// Search matches pending requests only — donors can only respond to needs
// that nobody has claimed yet.
func (r *requestRepo) Search(ctx context.Context, filter SearchFilter) ([]model.DonationRequest, error) {
	var reqs []model.DonationRequest

	db := r.db.WithContext(ctx).
		Where("status = ?", model.StatusPending).
		Where("blood_group = ?", filter.BloodGroup)
	if filter.District != "" {
		db = db.Where("district = ?", filter.District)
	}
	if filter.Upazila != "" {
		db = db.Where("upazila = ?", filter.Upazila)
	}

	if err := db.Order("donation_date ASC, donation_time ASC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.DonationRequest{}).Count(&total).Error
	return total, err
}

func (r *requestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.DonationRequest{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}
