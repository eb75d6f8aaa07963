package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/htetarkarhlaing/share-book-api/internal/middleware"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/response"
)

// AdminHandler exposes the admin-facing auth and user-management routes.
type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts the admin surface. Registration itself is guarded:
// only an authenticated admin may mint another admin.
func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	admin.POST("/login", h.Login)

	guarded := admin.Group("", requireAdmin)
	{
		guarded.POST("/register", h.Register)
		guarded.POST("/logout", h.Logout)
		guarded.GET("/me", h.Me)
		guarded.GET("/users", h.ListUsers)
		guarded.GET("/users/:user_id", h.GetUser)
		guarded.PUT("/users/:user_id/status", h.UpdateUserType)
		guarded.DELETE("/users/:user_id", h.DeleteUser)
	}
}

// Register creates a new administrator with a generated login id.
// @Summary		Register admin
// @Description	Generates a unique eight character login id and creates the admin account. Only an authenticated admin may call this.
// @Tags		Admin Auth
// @Security	BearerAuth
// @Param		request	body	AdminRegisterRequest	true	"name, password"
// @Success		201	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/admin/register [POST]
func (h *AdminHandler) Register(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	admin, err := h.service.AdminRegister(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Admin account created successfully", admin)
}

// Login authenticates an admin by login id.
// @Summary		Admin login
// @Description	Issues a single admin-access token. Admin sessions carry no refresh token.
// @Tags		Admin Auth
// @Param		request	body	AdminLoginRequest	true	"login_id, password"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/login [POST]
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	token, err := h.service.AdminLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", gin.H{"accessToken": token})
}

// Logout revokes the presented admin token.
// @Summary		Admin logout
// @Tags		Admin Auth
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/admin/logout [POST]
func (h *AdminHandler) Logout(c *gin.Context) {
	loginID := c.GetString(middleware.CtxAdminLoginID)
	token := c.GetString(middleware.CtxBearerToken)

	message, err := h.service.AdminLogout(c.Request.Context(), loginID, token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// Me returns the authenticated admin's identity.
// @Summary		Admin whoami
// @Tags		Admin Auth
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/admin/me [GET]
func (h *AdminHandler) Me(c *gin.Context) {
	loginID := c.GetString(middleware.CtxAdminLoginID)

	admin, err := h.service.AdminMe(c.Request.Context(), loginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Admin info fetched successfully", admin)
}

// ListUsers returns every user account.
// @Summary		List users
// @Tags		Admin Manage Users
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/admin/users [GET]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User list fetched successfully", users)
}

// GetUser returns one user account by id.
// @Summary		Fetch user
// @Tags		Admin Manage Users
// @Security	BearerAuth
// @Param		user_id	path	string	true	"user id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/users/{user_id} [GET]
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUserByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User info fetched successfully", user)
}

// UpdateUserType switches a user between NORMAL and PREMIUM.
// @Summary		Update user tier
// @Tags		Admin Manage Users
// @Security	BearerAuth
// @Param		user_id	path	string					true	"user id"
// @Param		request	body	UserTypeUpdateRequest	true	"user_type"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/users/{user_id}/status [PUT]
func (h *AdminHandler) UpdateUserType(c *gin.Context) {
	var req UserTypeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	message, err := h.service.UpdateUserType(c.Request.Context(), c.Param("user_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// DeleteUser soft-deletes a user account.
// @Summary		Delete user
// @Description	Marks the account DELETED. The row is kept and the email is never freed for re-registration.
// @Tags		Admin Manage Users
// @Security	BearerAuth
// @Param		user_id	path	string	true	"user id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/users/{user_id} [DELETE]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	message, err := h.service.SoftDeleteUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}
