package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/htetarkarhlaing/share-book-api/internal/middleware"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterUserRoutes mounts the post surface for authenticated users: the
// public feed, the caller's own posts and reporting.
func (h *Handler) RegisterUserRoutes(user *gin.RouterGroup) {
	user.GET("/posts", h.ListPublished)
	user.GET("/posts/:id", h.Get)
	user.POST("/posts/:id/report", h.Report)
	user.GET("/me/posts", h.ListOwn)
	user.GET("/me/posts/:id", h.GetOwn)
	user.PUT("/me/posts/:id", h.UpdateOwn)
	user.DELETE("/me/posts/:id", h.DeleteOwn)
	user.POST("/post", h.Create)
}

// RegisterAdminRoutes mounts the moderation views for admins.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/user/:user_id/posts", h.ListByUser)
	admin.GET("/user/:user_id/posts/:post_id", h.GetByUser)
	admin.GET("/posts/:post_id/status", h.MarkReported)
}

// ListPublished returns the public feed.
// @Summary		List published posts
// @Tags		User Post
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Router		/user/posts [GET]
func (h *Handler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post list fetched successfully", posts)
}

// Get returns any post by id.
// @Summary		Fetch post
// @Tags		User Post
// @Security	BearerAuth
// @Param		id	path	string	true	"post id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/user/posts/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	post, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post fetched successfully", post)
}

// ListOwn returns the caller's posts regardless of status.
// @Summary		List own posts
// @Tags		User Post
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Router		/user/me/posts [GET]
func (h *Handler) ListOwn(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	posts, err := h.service.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post list fetched successfully", posts)
}

// GetOwn returns one of the caller's posts, enforcing ownership.
// @Summary		Fetch own post
// @Tags		User Post
// @Security	BearerAuth
// @Param		id	path	string	true	"post id"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "caller does not own the post"
// @Failure		404	{object}	response.Envelope
// @Router		/user/me/posts/{id} [GET]
func (h *Handler) GetOwn(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	post, err := h.service.GetOwned(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post fetched successfully", post)
}

// Create publishes or drafts a new post for the caller.
// @Summary		Create post
// @Tags		User Post
// @Security	BearerAuth
// @Param		request	body	CreateRequest	true	"title, content, status"
// @Success		201	{object}	response.Envelope
// @Router		/user/post [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	post, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Post created successfully", post)
}

// UpdateOwn patches one of the caller's posts.
// @Summary		Update own post
// @Tags		User Post
// @Security	BearerAuth
// @Param		id		path	string			true	"post id"
// @Param		request	body	UpdateRequest	true	"title, content and/or status"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "caller does not own the post"
// @Router		/user/me/posts/{id} [PUT]
func (h *Handler) UpdateOwn(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	post, err := h.service.UpdateOwned(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post updated successfully", post)
}

// DeleteOwn soft-deletes one of the caller's posts.
// @Summary		Delete own post
// @Tags		User Post
// @Security	BearerAuth
// @Param		id	path	string	true	"post id"
// @Success		200	{object}	response.Envelope
// @Failure		401	{object}	response.Envelope "caller does not own the post"
// @Router		/user/me/posts/{id} [DELETE]
func (h *Handler) DeleteOwn(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if err := h.service.DeleteOwned(c.Request.Context(), c.Param("id"), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}

// Report files a complaint against a post.
// @Summary		Report post
// @Tags		User Post
// @Security	BearerAuth
// @Param		id		path	string			true	"post id"
// @Param		request	body	ReportRequest	true	"subject"
// @Success		201	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/user/posts/{id}/report [POST]
func (h *Handler) Report(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	message, err := h.service.Report(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, message, nil)
}

// ListByUser returns every post of one user for moderation.
// @Summary		List posts of user
// @Tags		Admin Posts
// @Security	BearerAuth
// @Param		user_id	path	string	true	"user id"
// @Success		200	{object}	response.Envelope
// @Router		/admin/user/{user_id}/posts [GET]
func (h *Handler) ListByUser(c *gin.Context) {
	posts, err := h.service.ListByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post list fetched successfully", posts)
}

// GetByUser returns one post of one user for moderation.
// @Summary		Fetch post of user
// @Tags		Admin Posts
// @Security	BearerAuth
// @Param		user_id	path	string	true	"user id"
// @Param		post_id	path	string	true	"post id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/user/{user_id}/posts/{post_id} [GET]
func (h *Handler) GetByUser(c *gin.Context) {
	post, err := h.service.GetByID(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if post.CreatedByID != c.Param("user_id") {
		response.Error(c, ErrPostNotFound)
		return
	}
	response.Success(c, http.StatusOK, "Post fetched successfully", post)
}

// MarkReported flips a post to REPORTED, recording the acting admin.
// @Summary		Mark post reported
// @Tags		Admin Posts
// @Security	BearerAuth
// @Param		post_id	path	string	true	"post id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/posts/{post_id}/status [GET]
func (h *Handler) MarkReported(c *gin.Context) {
	adminLoginID := c.GetString(middleware.CtxAdminLoginID)
	post, err := h.service.MarkReported(c.Request.Context(), c.Param("post_id"), adminLoginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Post status changed successfully", post)
}
