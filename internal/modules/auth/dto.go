package auth

import "github.com/htetarkarhlaing/share-book-api/internal/domain"

type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Type     domain.UserType `json:"type" binding:"required,oneof=NORMAL PREMIUM"`
}

type ConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UpdateMeRequest is a pointer patch: nil means "not sent", empty string is
// treated the same as absent, anything else updates the field.
type UpdateMeRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
}

type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminLoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserTypeUpdateRequest struct {
	UserType domain.UserType `json:"user_type" binding:"required,oneof=NORMAL PREMIUM"`
}
