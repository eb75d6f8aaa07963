package domain

import "time"

type UserStatus string

const (
	StatusNotVerified UserStatus = "NOT_VERIFIED"
	StatusVerified    UserStatus = "VERIFIED"
	StatusSuspended   UserStatus = "SUSPENDED"
	StatusDeleted     UserStatus = "DELETED"
)

type UserType string

const (
	TypeNormal  UserType = "NORMAL"
	TypePremium UserType = "PREMIUM"
)

// User is an end-user account. Only VERIFIED users may log in; a
// NOT_VERIFIED account can only confirm its one-time code, and
// SUSPENDED/DELETED accounts are rejected everywhere.
type User struct {
	ID               string     `json:"user_id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PasswordHash     string     `json:"-"`
	Status           UserStatus `json:"status"`
	Type             UserType   `json:"user_type"`
	OTP              string     `json:"-"`
	RefreshTokenHash string     `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
