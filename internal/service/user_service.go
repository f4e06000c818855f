package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
)

// ── user administration business errors ──

var (
	ErrSelfRoleChange   = errors.New("cannot change your own role")
	ErrSelfStatusChange = errors.New("cannot block yourself")
)

// UserService is the user administration business interface.
type UserService interface {
	List(ctx context.Context, req *dto.UserListRequest) (*dto.UserListResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateUserStatusRequest, callerID string) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest, callerID string) (*dto.UserResponse, error)
	GetRoleByEmail(ctx context.Context, email string) (*dto.RoleResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	ref    *refdata.Store
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, ref *refdata.Store, logger *zap.Logger) UserService {
	return &userService{repo: repo, ref: ref, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) (*dto.UserListResponse, error) {
	users, total, err := s.repo.User.List(ctx, req.Status, req.GetOffset(), req.GetSize())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		TotalUsers: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}
	return resp, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *userService) UpdateStatus(ctx context.Context, req *dto.UpdateUserStatusRequest, callerID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.UserID == callerID {
		return nil, ErrSelfStatusChange
	}

	user.Status = req.Status
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user status failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user status changed",
		zap.String("email", user.Email),
		zap.String("status", user.Status),
		zap.String("by", callerID))

	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── UpdateRole ──────────────────────

func (s *userService) UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest, callerID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.UserID == callerID {
		return nil, ErrSelfRoleChange
	}

	user.Role = req.Role
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user role failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user role changed",
		zap.String("email", user.Email),
		zap.String("role", user.Role),
		zap.String("by", callerID))

	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── GetRoleByEmail ──────────────────────

func (s *userService) GetRoleByEmail(ctx context.Context, email string) (*dto.RoleResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &dto.RoleResponse{Role: user.Role}, nil
}

// ────────────────────── GetByEmail ──────────────────────

func (s *userService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── UpdateProfile ──────────────────────

// UpdateProfile applies only the fields present in the request. District
// and upazila are validated together: whichever combination results after
// the patch must still be hierarchical.
func (s *userService) UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	district := user.District
	upazila := user.Upazila
	if req.District != nil {
		district = *req.District
	}
	if req.Upazila != nil {
		upazila = *req.Upazila
	}
	if req.District != nil || req.Upazila != nil {
		if !s.ref.ValidDistrict(district) {
			return nil, ErrUnknownDistrict
		}
		if !s.ref.ValidUpazila(district, upazila) {
			return nil, ErrUnknownUpazila
		}
	}
	user.District = district
	user.Upazila = upazila

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.BloodGroup != nil {
		if !model.ValidBloodGroup(*req.BloodGroup) {
			return nil, ErrInvalidBloodGroup
		}
		user.BloodGroup = *req.BloodGroup
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update profile failed", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}
