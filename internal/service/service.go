package service

import (
	"go.uber.org/zap"

	"bloodconnect/backend/config"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
	"bloodconnect/backend/pkg/jwt"
	"bloodconnect/backend/pkg/redis"
)

// Service is the aggregate entry point for all services.
type Service struct {
	Auth      AuthService
	User      UserService
	Request   RequestService
	Search    SearchService
	Dashboard DashboardService
	Fund      FundService
	Export    ExportService
}

// NewService creates the service aggregate. redisClient and gateway may be
// nil; the services that depend on them degrade accordingly.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	redisClient *redis.Client,
	refStore *refdata.Store,
	gateway CheckoutGateway,
	publisher RequestEventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, redisClient, refStore, logger),
		User:      NewUserService(repo, refStore, logger),
		Request:   NewRequestService(repo, refStore, publisher, logger),
		Search:    NewSearchService(repo, refStore, logger),
		Dashboard: NewDashboardService(repo, logger),
		Fund:      NewFundService(cfg, repo, gateway, logger),
		Export:    NewExportService(repo, logger),
	}
}
