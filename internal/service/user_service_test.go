package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
)

func setupTestUserService(t *testing.T) (UserService, *mockUserRepo) {
	repo, users, _, _ := newMockRepository()
	svc := NewUserService(repo, testRefStore(t), zap.NewNop())
	return svc, users
}

// ── List ──

func TestUserService_List_StatusFilter(t *testing.T) {
	svc, users := setupTestUserService(t)
	seedUser(t, users, "a@example.com", model.UserActive)
	seedUser(t, users, "b@example.com", model.UserBlocked)
	seedUser(t, users, "c@example.com", model.UserActive)

	req := &dto.UserListRequest{Status: model.UserBlocked}
	result, err := svc.List(context.Background(), req)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalUsers != 1 {
		t.Errorf("totalUsers = %d, want 1", result.TotalUsers)
	}
	if len(result.Users) != 1 || result.Users[0].Email != "b@example.com" {
		t.Errorf("unexpected users: %+v", result.Users)
	}
}

// ── UpdateStatus ──

func TestUserService_UpdateStatus_Block(t *testing.T) {
	svc, users := setupTestUserService(t)
	admin := seedUser(t, users, "admin@example.com", model.UserActive)
	target := seedUser(t, users, "donor@example.com", model.UserActive)

	result, err := svc.UpdateStatus(context.Background(), &dto.UpdateUserStatusRequest{
		Email:  target.Email,
		Status: model.UserBlocked,
	}, admin.UserID)
	if err != nil {
		t.Fatalf("UpdateStatus should succeed: %v", err)
	}
	if result.Status != model.UserBlocked {
		t.Errorf("status = %s, want blocked", result.Status)
	}
}

func TestUserService_UpdateStatus_SelfBlockRejected(t *testing.T) {
	svc, users := setupTestUserService(t)
	admin := seedUser(t, users, "admin@example.com", model.UserActive)

	_, err := svc.UpdateStatus(context.Background(), &dto.UpdateUserStatusRequest{
		Email:  admin.Email,
		Status: model.UserBlocked,
	}, admin.UserID)
	if !errors.Is(err, ErrSelfStatusChange) {
		t.Errorf("want ErrSelfStatusChange, got: %v", err)
	}
}

// ── UpdateRole ──

func TestUserService_UpdateRole_Promote(t *testing.T) {
	svc, users := setupTestUserService(t)
	admin := seedUser(t, users, "admin@example.com", model.UserActive)
	target := seedUser(t, users, "donor@example.com", model.UserActive)

	result, err := svc.UpdateRole(context.Background(), &dto.UpdateUserRoleRequest{
		Email: target.Email,
		Role:  model.RoleVolunteer,
	}, admin.UserID)
	if err != nil {
		t.Fatalf("UpdateRole should succeed: %v", err)
	}
	if result.Role != model.RoleVolunteer {
		t.Errorf("role = %s, want volunteer", result.Role)
	}
}

func TestUserService_UpdateRole_SelfChangeRejected(t *testing.T) {
	svc, users := setupTestUserService(t)
	admin := seedUser(t, users, "admin@example.com", model.UserActive)

	_, err := svc.UpdateRole(context.Background(), &dto.UpdateUserRoleRequest{
		Email: admin.Email,
		Role:  model.RoleDonor,
	}, admin.UserID)
	if !errors.Is(err, ErrSelfRoleChange) {
		t.Errorf("want ErrSelfRoleChange, got: %v", err)
	}
}

func TestUserService_UpdateRole_UnknownEmail(t *testing.T) {
	svc, users := setupTestUserService(t)
	admin := seedUser(t, users, "admin@example.com", model.UserActive)

	_, err := svc.UpdateRole(context.Background(), &dto.UpdateUserRoleRequest{
		Email: "nobody@example.com",
		Role:  model.RoleVolunteer,
	}, admin.UserID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("want ErrUserNotFound, got: %v", err)
	}
}

// ── GetRoleByEmail ──

func TestUserService_GetRoleByEmail(t *testing.T) {
	svc, users := setupTestUserService(t)
	u := seedUser(t, users, "donor@example.com", model.UserActive)
	u.Role = model.RoleVolunteer

	result, err := svc.GetRoleByEmail(context.Background(), "donor@example.com")
	if err != nil {
		t.Fatalf("GetRoleByEmail: %v", err)
	}
	if result.Role != model.RoleVolunteer {
		t.Errorf("role = %s, want volunteer", result.Role)
	}
}

// ── UpdateProfile ──

func TestUserService_UpdateProfile_PartialPatch(t *testing.T) {
	svc, users := setupTestUserService(t)
	u := seedUser(t, users, "donor@example.com", model.UserActive)

	phone := "+8801712345678"
	result, err := svc.UpdateProfile(context.Background(), u.Email, &dto.UpdateProfileRequest{
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if result.Phone != phone {
		t.Errorf("phone = %s, want %s", result.Phone, phone)
	}
	// untouched fields survive the patch
	if result.Name != "Rahim Uddin" || result.District != "Dhaka" {
		t.Errorf("patch clobbered other fields: %+v", result)
	}
}

func TestUserService_UpdateProfile_UpazilaMustMatchDistrict(t *testing.T) {
	svc, users := setupTestUserService(t)
	u := seedUser(t, users, "donor@example.com", model.UserActive)

	// moving to Sylhet while keeping the Savar upazila is inconsistent
	district := "Sylhet"
	_, err := svc.UpdateProfile(context.Background(), u.Email, &dto.UpdateProfileRequest{
		District: &district,
	})
	if !errors.Is(err, ErrUnknownUpazila) {
		t.Errorf("want ErrUnknownUpazila, got: %v", err)
	}
}
