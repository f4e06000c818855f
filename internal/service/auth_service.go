package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bloodconnect/backend/config"
	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
	"bloodconnect/backend/pkg/jwt"
	"bloodconnect/backend/pkg/redis"
)

// ── auth business errors ──

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrInvalidRefresh     = errors.New("refresh token invalid")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
	ErrUnknownDistrict    = errors.New("unknown district")
	ErrUnknownUpazila     = errors.New("upazila does not belong to the district")
)

// AuthService is the authentication business interface.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	ref    *refdata.Store
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	ref *refdata.Store,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		ref:    ref,
		logger: logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !s.ref.ValidDistrict(req.District) {
		return nil, ErrUnknownDistrict
	}
	if !s.ref.ValidUpazila(req.District, req.Upazila) {
		return nil, ErrUnknownUpazila
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		AvatarURL:    req.AvatarURL,
		Role:         model.RoleDonor,
		Status:       model.UserActive,
		BloodGroup:   req.BloodGroup,
		District:     req.District,
		Upazila:      req.Upazila,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.UserID),
		zap.String("email", user.Email))

	return s.issueTokens(user, false)
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("query user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user, req.RememberMe)
}

// ────────────────────── Logout ──────────────────────

// Logout blacklists the presented access token until it would have expired
// anyway. Without Redis, logout is client-side only.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, ttl)
}

// ────────────────────── RefreshToken ──────────────────────

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}

	if s.rdb != nil {
		blocked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && blocked {
			return nil, ErrInvalidRefresh
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	// rotate: the old refresh token is retired once exchanged
	if s.rdb != nil {
		if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
			_ = s.rdb.BlacklistToken(ctx, claims.ID, ttl)
		}
	}

	return s.issueTokens(user, claims.RememberMe)
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	return s.repo.User.Update(ctx, user)
}

// ────────────────────── helpers ──────────────────────

func (s *authService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Email, user.Role)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Email, user.Role, rememberMe)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.UserID,
		Name:       user.Name,
		Email:      user.Email,
		AvatarURL:  user.AvatarURL,
		Role:       user.Role,
		Status:     user.Status,
		BloodGroup: user.BloodGroup,
		District:   user.District,
		Upazila:    user.Upazila,
		Phone:      user.Phone,
		Bio:        user.Bio,
	}
}
