package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for i, u := range m.users {
		if u.UserID == user.UserID {
			m.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, status string, offset, limit int) ([]model.User, int64, error) {
	var matched []model.User
	for _, u := range m.users {
		if status != "" && u.Status != status {
			continue
		}
		matched = append(matched, *u)
	}
	total := int64(len(matched))
	return page(matched, offset, limit), total, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock RequestRepository ──

type mockRequestRepo struct {
	requests []*model.DonationRequest
	seq      int
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{}
}

func (m *mockRequestRepo) Create(_ context.Context, req *model.DonationRequest) error {
	if req.RequestID == "" {
		m.seq++
		req.RequestID = fmt.Sprintf("req-%d", m.seq)
	}
	m.requests = append(m.requests, req)
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id string) (*model.DonationRequest, error) {
	for _, r := range m.requests {
		if r.RequestID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) Update(_ context.Context, req *model.DonationRequest) error {
	for i, r := range m.requests {
		if r.RequestID == req.RequestID {
			m.requests[i] = req
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, r := range m.requests {
		if r.RequestID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockRequestRepo) List(_ context.Context, filter repository.RequestFilter, offset, limit int) ([]model.DonationRequest, int64, error) {
	var matched []model.DonationRequest
	for _, r := range m.requests {
		if filter.Status != "" && filter.Status != "all" && r.Status != filter.Status {
			continue
		}
		if filter.RequesterEmail != "" && r.RequesterEmail != filter.RequesterEmail {
			continue
		}
		if filter.DonorEmail != "" && (r.DonorEmail == nil || *r.DonorEmail != filter.DonorEmail) {
			continue
		}
		matched = append(matched, *r)
	}
	total := int64(len(matched))
	return page(matched, offset, limit), total, nil
}

func (m *mockRequestRepo) Search(_ context.Context, filter repository.SearchFilter) ([]model.DonationRequest, error) {
	var matched []model.DonationRequest
	for _, r := range m.requests {
		if r.Status != model.StatusPending {
			continue
		}
		if r.BloodGroup != filter.BloodGroup {
			continue
		}
		if filter.District != "" && r.District != filter.District {
			continue
		}
		if filter.Upazila != "" && r.Upazila != filter.Upazila {
			continue
		}
		matched = append(matched, *r)
	}
	return matched, nil
}

func (m *mockRequestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.requests)), nil
}

func (m *mockRequestRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.requests {
		counts[r.Status]++
	}
	return counts, nil
}

// ── Mock FundRepository ──

type mockFundRepo struct {
	funds []*model.Fund
	seq   int
}

func newMockFundRepo() *mockFundRepo {
	return &mockFundRepo{}
}

func (m *mockFundRepo) Create(_ context.Context, fund *model.Fund) error {
	for _, f := range m.funds {
		if f.SessionID == fund.SessionID {
			return gorm.ErrDuplicatedKey
		}
	}
	if fund.FundID == "" {
		m.seq++
		fund.FundID = fmt.Sprintf("fund-%d", m.seq)
	}
	m.funds = append(m.funds, fund)
	return nil
}

func (m *mockFundRepo) GetByID(_ context.Context, id string) (*model.Fund, error) {
	for _, f := range m.funds {
		if f.FundID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFundRepo) GetBySessionID(_ context.Context, sessionID string) (*model.Fund, error) {
	for _, f := range m.funds {
		if f.SessionID == sessionID {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFundRepo) Update(_ context.Context, fund *model.Fund) error {
	for i, f := range m.funds {
		if f.FundID == fund.FundID {
			m.funds[i] = fund
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockFundRepo) List(_ context.Context, offset, limit int) ([]model.Fund, int64, error) {
	var matched []model.Fund
	for _, f := range m.funds {
		if f.Status == model.FundSucceeded {
			matched = append(matched, *f)
		}
	}
	total := int64(len(matched))
	return page(matched, offset, limit), total, nil
}

func (m *mockFundRepo) SumSucceeded(_ context.Context) (float64, error) {
	var sum float64
	for _, f := range m.funds {
		if f.Status == model.FundSucceeded {
			sum += f.Amount
		}
	}
	return sum, nil
}

// ── shared helpers ──

// page slices like OFFSET/LIMIT does.
func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func newMockRepository() (*repository.Repository, *mockUserRepo, *mockRequestRepo, *mockFundRepo) {
	users := newMockUserRepo()
	requests := newMockRequestRepo()
	funds := newMockFundRepo()
	repo := &repository.Repository{
		User:    users,
		Request: requests,
		Fund:    funds,
	}
	return repo, users, requests, funds
}
