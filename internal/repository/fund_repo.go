package repository

import (
	"context"

	"gorm.io/gorm"

	"bloodconnect/backend/internal/model"
)

// FundRepository is the fund data access interface.
type FundRepository interface {
	Create(ctx context.Context, fund *model.Fund) error
	GetByID(ctx context.Context, id string) (*model.Fund, error)
	GetBySessionID(ctx context.Context, sessionID string) (*model.Fund, error)
	Update(ctx context.Context, fund *model.Fund) error
	List(ctx context.Context, offset, limit int) ([]model.Fund, int64, error)
	SumSucceeded(ctx context.Context) (float64, error)
}

// fundRepo is the GORM implementation of FundRepository.
type fundRepo struct {
	db *gorm.DB
}

// NewFundRepo creates a FundRepository instance.
func NewFundRepo(db *gorm.DB) FundRepository {
	return &fundRepo{db: db}
}

func (r *fundRepo) Create(ctx context.Context, fund *model.Fund) error {
	return r.db.WithContext(ctx).Create(fund).Error
}

func (r *fundRepo) GetByID(ctx context.Context, id string) (*model.Fund, error) {
	var fund model.Fund
	err := r.db.WithContext(ctx).
		Where("fund_id = ?", id).
		First(&fund).Error
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

func (r *fundRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Fund, error) {
	var fund model.Fund
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&fund).Error
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

func (r *fundRepo) Update(ctx context.Context, fund *model.Fund) error {
	return r.db.WithContext(ctx).Save(fund).Error
}

// List returns succeeded funds only, newest first. Pending rows are
// checkout sessions that were never completed and stay off the board.
func (r *fundRepo) List(ctx context.Context, offset, limit int) ([]model.Fund, int64, error) {
	var funds []model.Fund
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Fund{}).
		Where("status = ?", model.FundSucceeded)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("funded_at DESC").
		Find(&funds).Error; err != nil {
		return nil, 0, err
	}

	return funds, total, nil
}

func (r *fundRepo) SumSucceeded(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Fund{}).
		Where("status = ?", model.FundSucceeded).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
