package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/htetarkarhlaing/share-book-api/internal/domain"
)

func TestService_AdminRegister_GeneratesLoginID(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(false, nil)
	m.admins.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Admin) bool {
		return len(a.LoginID) == 8 &&
			a.Name == "second admin" &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("pw1")) == nil
	})).Return(nil)

	admin, err := svc.AdminRegister(context.Background(), AdminRegisterRequest{
		Name:     "second admin",
		Password: "pw1",
	})

	assert.NoError(t, err)
	assert.Len(t, admin.LoginID, 8)
	m.admins.AssertExpectations(t)
}

func TestService_AdminRegister_DistinctLoginIDs(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(false, nil)
	m.admins.On("Create", mock.Anything, mock.Anything).Return(nil)

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		admin, err := svc.AdminRegister(context.Background(), AdminRegisterRequest{
			Name:     "admin",
			Password: "pw1",
		})
		assert.NoError(t, err)
		_, dup := seen[admin.LoginID]
		assert.False(t, dup, "login id %q issued twice", admin.LoginID)
		seen[admin.LoginID] = struct{}{}
	}
}

func TestService_AdminLogin_Success(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("GetByLoginID", mock.Anything, "abc12345").
		Return(&domain.Admin{LoginID: "abc12345", PasswordHash: bcryptHash(t, "pw1")}, nil)
	m.tokens.On("GenerateAdminAccess", "abc12345").Return("admin-token", nil)

	token, err := svc.AdminLogin(context.Background(), AdminLoginRequest{
		LoginID:  "abc12345",
		Password: "pw1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "admin-token", token)
}

func TestService_AdminLogin_WrongPassword(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("GetByLoginID", mock.Anything, "abc12345").
		Return(&domain.Admin{LoginID: "abc12345", PasswordHash: bcryptHash(t, "pw1")}, nil)

	_, err := svc.AdminLogin(context.Background(), AdminLoginRequest{
		LoginID:  "abc12345",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	m.tokens.AssertNotCalled(t, "GenerateAdminAccess", mock.Anything)
}

func TestService_AdminLogin_UnknownLoginID(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("GetByLoginID", mock.Anything, "missing1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AdminLogin(context.Background(), AdminLoginRequest{
		LoginID:  "missing1",
		Password: "pw1",
	})

	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestService_AdminLogout_RevokesToken(t *testing.T) {
	svc, m := newTestService()

	m.admins.On("GetByLoginID", mock.Anything, "abc12345").
		Return(&domain.Admin{LoginID: "abc12345"}, nil)
	m.adminRevoker.On("Add", "admin-token").Return()

	message, err := svc.AdminLogout(context.Background(), "abc12345", "admin-token")

	assert.NoError(t, err)
	assert.Equal(t, "Logout successful", message)
	m.adminRevoker.AssertExpectations(t)
	m.userRevoker.AssertNotCalled(t, "Add", mock.Anything)
}

func TestService_UpdateUserType(t *testing.T) {
	svc, m := newTestService()

	m.users.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Type: domain.TypeNormal}, nil)
	m.users.On("UpdateType", mock.Anything, "u1", domain.TypePremium).Return(nil)

	message, err := svc.UpdateUserType(context.Background(), "u1", UserTypeUpdateRequest{
		UserType: domain.TypePremium,
	})

	assert.NoError(t, err)
	assert.Equal(t, "User updated successfully", message)
	m.users.AssertExpectations(t)
}

func TestService_SoftDeleteUser(t *testing.T) {
	svc, m := newTestService()

	m.users.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Status: domain.StatusVerified}, nil)
	m.users.On("UpdateStatus", mock.Anything, "u1", domain.StatusDeleted).Return(nil)

	message, err := svc.SoftDeleteUser(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, "User deleted successfully", message)
}

func TestService_ListUsers_StripsPasswordHashes(t *testing.T) {
	svc, m := newTestService()

	m.users.On("List", mock.Anything).Return([]domain.User{
		{ID: "u1", PasswordHash: "hash1"},
		{ID: "u2", PasswordHash: "hash2"},
	}, nil)

	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
