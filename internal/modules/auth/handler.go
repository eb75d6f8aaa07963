package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/htetarkarhlaing/share-book-api/internal/middleware"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/response"
)

// Handler exposes the user-facing authentication routes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the user auth surface. Token-bearing routes that do
// not carry a user-access token (refresh, reset-password) stay outside the
// guard and hand the raw bearer to the service for domain verification.
func (h *Handler) RegisterRoutes(user *gin.RouterGroup, requireUser gin.HandlerFunc) {
	user.POST("/register", h.Register)
	user.POST("/confirm", h.Confirm)
	user.POST("/login", h.Login)
	user.POST("/forget-password", h.ForgetPassword)
	user.GET("/refresh-token", h.RefreshToken)
	user.POST("/reset-password", h.ResetPassword)

	guarded := user.Group("", requireUser)
	{
		guarded.POST("/logout", h.Logout)
		guarded.GET("/me", h.Me)
		guarded.PUT("/me", h.UpdateMe)
		guarded.PUT("/change-password", h.ChangePassword)
	}
}

// Register begins user registration and emails a one-time code.
// @Summary		Register user
// @Description	Creates a NOT_VERIFIED account and emails a six digit confirmation code. No tokens are issued until the code is confirmed.
// @Tags		User Auth
// @Param		request	body	RegisterRequest	true	"email, username, password, type"
// @Success		201	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "account exists but is not confirmable"
// @Failure		409	{object}	response.Envelope "email already verified"
// @Router		/user/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	message, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, message, nil)
}

// Confirm verifies the emailed code and issues the first token pair.
// @Summary		Confirm registration
// @Description	Matches the one-time code, flips the account to VERIFIED and returns access and refresh tokens.
// @Tags		User Auth
// @Param		request	body	ConfirmRequest	true	"email, otp"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "code mismatch"
// @Failure		404	{object}	response.Envelope
// @Router		/user/confirm [POST]
func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	pair, err := h.service.Confirm(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Account confirmed successfully", pair)
}

// Login authenticates a verified user.
// @Summary		Login
// @Description	Issues an access and refresh token pair for a VERIFIED account.
// @Tags		User Auth
// @Param		request	body	LoginRequest	true	"email, password"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "wrong password or account not verified"
// @Failure		404	{object}	response.Envelope
// @Router		/user/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", pair)
}

// RefreshToken rotates the session using the refresh token as bearer.
// @Summary		Refresh tokens
// @Description	The Authorization header carries the previous refresh token. On success a new pair is issued and the old refresh token stops verifying.
// @Tags		User Auth
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "token invalid, expired or already rotated"
// @Router		/user/refresh-token [GET]
func (h *Handler) RefreshToken(c *gin.Context) {
	token, ok := middleware.ExtractBearerToken(c)
	if !ok {
		response.Error(c, ErrInvalidRefreshToken)
		return
	}

	pair, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Token refreshed successfully", pair)
}

// Logout revokes the current access token and drops the stored refresh hash.
// @Summary		Logout
// @Tags		User Auth
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/user/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	token := c.GetString(middleware.CtxBearerToken)

	message, err := h.service.Logout(c.Request.Context(), userID, token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// ForgetPassword emails a one-hour password recovery token.
// @Summary		Request password reset
// @Tags		User Auth
// @Param		request	body	ForgetPasswordRequest	true	"email"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope "no user with provided email"
// @Router		/user/forget-password [POST]
func (h *Handler) ForgetPassword(c *gin.Context) {
	var req ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	message, err := h.service.RequestPasswordReset(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// ResetPassword sets a new password using the emailed token as bearer.
// @Summary		Reset password
// @Description	The Authorization header carries the recovery token from the reset mail.
// @Tags		User Auth
// @Security	BearerAuth
// @Param		request	body	ResetPasswordRequest	true	"password"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "token invalid or expired"
// @Router		/user/reset-password [POST]
func (h *Handler) ResetPassword(c *gin.Context) {
	token, ok := middleware.ExtractBearerToken(c)
	if !ok {
		response.Error(c, ErrInvalidResetToken)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	message, err := h.service.ResetPassword(c.Request.Context(), token, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, message, nil)
}

// Me returns the authenticated user's profile.
// @Summary		Get own profile
// @Tags		User Auth
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope
// @Router		/user/me [GET]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User info fetched successfully", user)
}

// UpdateMe patches the authenticated user's profile.
// @Summary		Update own profile
// @Description	Updates email and/or username. At least one non-empty field is required.
// @Tags		User Auth
// @Security	BearerAuth
// @Param		request	body	UpdateMeRequest	true	"email and/or username"
// @Success		200	{object}	response.Envelope
// @Failure		400	{object}	response.Envelope "empty patch"
// @Router		/user/me [PUT]
func (h *Handler) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	user, err := h.service.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User info updated successfully", user)
}

// ChangePassword replaces the password after verifying the current one.
// @Summary		Change password
// @Tags		User Auth
// @Security	BearerAuth
// @Param		request	body	ChangePasswordRequest	true	"currentPassword, newPassword"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "current password does not match"
// @Router		/user/change-password [PUT]
func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	user, err := h.service.ChangePassword(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated successfully", user)
}
