package dto

// ── user administration DTOs ──

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// UserListRequest filters the admin user list.
type UserListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=active blocked"`
}

// UserListResponse is the admin user list payload.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalUsers int64          `json:"totalUsers"`
}

// UpdateUserStatusRequest blocks or unblocks an account.
type UpdateUserStatusRequest struct {
	Email  string `json:"email"  binding:"required,email"`
	Status string `json:"status" binding:"required,oneof=active blocked"`
}

// UpdateUserRoleRequest changes an account's role.
type UpdateUserRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"required,oneof=admin volunteer donor"`
}

// RoleResponse answers the role probe used by the client session holder.
type RoleResponse struct {
	Role string `json:"role"`
}

// UpdateProfileRequest updates profile attributes; nil fields are untouched.
type UpdateProfileRequest struct {
	Name       *string `json:"name"       binding:"omitempty,min=2,max=100"`
	AvatarURL  *string `json:"avatarUrl"  binding:"omitempty,url"`
	BloodGroup *string `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	District   *string `json:"district"   binding:"omitempty"`
	Upazila    *string `json:"upazila"    binding:"omitempty"`
	Phone      *string `json:"phone"      binding:"omitempty,max=30"`
	Bio        *string `json:"bio"        binding:"omitempty,max=500"`
}
