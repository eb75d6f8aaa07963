package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// UserClaims carries the user id for user-access, refresh and reset tokens.
type UserClaims struct {
	UserID string `json:"id"`
	jwtlib.RegisteredClaims
}

// AdminClaims carries the admin login id for admin-access tokens.
type AdminClaims struct {
	LoginID string `json:"login_id"`
	jwtlib.RegisteredClaims
}

// Manager signs and verifies bearer tokens across three independent secret
// domains: user access, user refresh / password reset (the multi-purpose
// domain), and admin access. A token signed in one domain never verifies in
// another even though all of them are HS256 JWTs.
type Manager struct {
	accessSecret       []byte
	refreshSecret      []byte
	multiPurposeSecret []byte
	adminAccessSecret  []byte

	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
}

type Config struct {
	AccessSecret       string
	RefreshSecret      string
	MultiPurposeSecret string
	AdminAccessSecret  string
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	ResetTTL           time.Duration
}

func NewManager(cfg Config) *Manager {
	return &Manager{
		accessSecret:       []byte(cfg.AccessSecret),
		refreshSecret:      []byte(cfg.RefreshSecret),
		multiPurposeSecret: []byte(cfg.MultiPurposeSecret),
		adminAccessSecret:  []byte(cfg.AdminAccessSecret),
		accessTTL:          cfg.AccessTTL,
		refreshTTL:         cfg.RefreshTTL,
		resetTTL:           cfg.ResetTTL,
	}
}

func (m *Manager) GenerateUserAccess(userID string) (string, error) {
	return m.signUser(userID, m.accessSecret, m.accessTTL)
}

func (m *Manager) GenerateUserRefresh(userID string) (string, error) {
	return m.signUser(userID, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) GenerateReset(userID string) (string, error) {
	return m.signUser(userID, m.multiPurposeSecret, m.resetTTL)
}

func (m *Manager) GenerateAdminAccess(loginID string) (string, error) {
	claims := AdminClaims{
		LoginID: loginID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(m.accessTTL)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(m.adminAccessSecret)
}

func (m *Manager) VerifyUserAccess(tokenStr string) (*UserClaims, error) {
	return m.parseUser(tokenStr, m.accessSecret)
}

func (m *Manager) VerifyUserRefresh(tokenStr string) (*UserClaims, error) {
	return m.parseUser(tokenStr, m.refreshSecret)
}

func (m *Manager) VerifyReset(tokenStr string) (*UserClaims, error) {
	return m.parseUser(tokenStr, m.multiPurposeSecret)
}

func (m *Manager) VerifyAdminAccess(tokenStr string) (*AdminClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwtlib.Token) (any, error) {
		return m.adminAccessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.LoginID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) signUser(userID string, secret []byte, ttl time.Duration) (string, error) {
	claims := UserClaims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m *Manager) parseUser(tokenStr string, secret []byte) (*UserClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &UserClaims{}, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
