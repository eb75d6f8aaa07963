package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testManager() *Manager {
	return NewManager(Config{
		AccessSecret:       "access-secret",
		RefreshSecret:      "refresh-secret",
		MultiPurposeSecret: "multi-purpose-secret",
		AdminAccessSecret:  "admin-secret",
		AccessTTL:          time.Hour,
		RefreshTTL:         24 * time.Hour,
		ResetTTL:           time.Hour,
	})
}

func TestManager_UserAccessRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateUserAccess("u1")
	assert.NoError(t, err)

	claims, err := m.VerifyUserAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestManager_AdminAccessRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAdminAccess("abc12345")
	assert.NoError(t, err)

	claims, err := m.VerifyAdminAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, "abc12345", claims.LoginID)
}

func TestManager_CrossDomainVerificationFails(t *testing.T) {
	m := testManager()

	access, _ := m.GenerateUserAccess("u1")
	refresh, _ := m.GenerateUserRefresh("u1")
	reset, _ := m.GenerateReset("u1")
	admin, _ := m.GenerateAdminAccess("abc12345")

	// Each token verifies only in the domain that signed it.
	_, err := m.VerifyUserRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyUserAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyReset(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyUserAccess(reset)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyAdminAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyUserAccess(admin)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ExpiredTokenRejected(t *testing.T) {
	m := NewManager(Config{
		AccessSecret:       "access-secret",
		RefreshSecret:      "refresh-secret",
		MultiPurposeSecret: "multi-purpose-secret",
		AdminAccessSecret:  "admin-secret",
		AccessTTL:          -time.Minute,
		RefreshTTL:         -time.Minute,
		ResetTTL:           -time.Minute,
	})

	token, err := m.GenerateUserAccess("u1")
	assert.NoError(t, err)

	_, err = m.VerifyUserAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_GarbageTokenRejected(t *testing.T) {
	m := testManager()

	_, err := m.VerifyUserAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyAdminAccess("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_TamperedTokenRejected(t *testing.T) {
	m := testManager()

	token, _ := m.GenerateUserAccess("u1")
	tampered := token[:len(token)-2] + "xx"

	_, err := m.VerifyUserAccess(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
