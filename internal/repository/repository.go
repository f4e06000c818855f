package repository

import "gorm.io/gorm"

// Repository is the aggregate entry point for all repositories.
type Repository struct {
	User    UserRepository
	Request RequestRepository
	Fund    FundRepository
}

// NewRepository creates the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Request: NewRequestRepo(db),
		Fund:    NewFundRepo(db),
	}
}
