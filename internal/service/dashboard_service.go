package service

import (
	"context"

	"go.uber.org/zap"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/repository"
)

// DashboardService computes the role dashboard aggregates. The numbers are
// authoritative; clients render them as-is.
type DashboardService interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	VolunteerStats(ctx context.Context) (*dto.VolunteerStatsResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	users, err := s.repo.User.Count(ctx)
	if err != nil {
		s.logger.Error("count users failed", zap.Error(err))
		return nil, err
	}
	requests, err := s.repo.Request.Count(ctx)
	if err != nil {
		s.logger.Error("count requests failed", zap.Error(err))
		return nil, err
	}
	funding, err := s.repo.Fund.SumSucceeded(ctx)
	if err != nil {
		s.logger.Error("sum funding failed", zap.Error(err))
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:    users,
		TotalRequests: requests,
		TotalFunding:  funding,
	}, nil
}

func (s *dashboardService) VolunteerStats(ctx context.Context) (*dto.VolunteerStatsResponse, error) {
	counts, err := s.repo.Request.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count requests by status failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.VolunteerStatsResponse{
		Pending:    counts[model.StatusPending],
		InProgress: counts[model.StatusInProgress],
		Done:       counts[model.StatusDone],
		Canceled:   counts[model.StatusCanceled],
	}
	resp.TotalRequests = resp.Pending + resp.InProgress + resp.Done + resp.Canceled
	return resp, nil
}
