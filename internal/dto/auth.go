package dto

// ── auth DTOs ──

// RegisterRequest is an email/password sign-up.
type RegisterRequest struct {
	Name       string `json:"name"       binding:"required,min=2,max=100"`
	Email      string `json:"email"      binding:"required,email"`
	Password   string `json:"password"   binding:"required,min=6,max=64"`
	AvatarURL  string `json:"avatarUrl"  binding:"omitempty,url"`
	BloodGroup string `json:"bloodGroup" binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	District   string `json:"district"   binding:"required"`
	Upazila    string `json:"upazila"    binding:"required"`
}

// LoginRequest is an email/password sign-in.
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RefreshTokenRequest exchanges a refresh token for a fresh pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest updates the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=64"`
}

// TokenResponse is the token pair issued on login/refresh.
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}
