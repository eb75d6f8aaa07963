package category

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

// RegisterUserRoutes mounts the read-only category listing for users.
func (h *Handler) RegisterUserRoutes(user *gin.RouterGroup) {
	user.GET("/categories", h.List)
}

// RegisterAdminRoutes mounts the full category CRUD for admins.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/categories", h.List)
	admin.GET("/categories/:id", h.Get)
	admin.POST("/categories", h.Create)
	admin.PUT("/categories/:id", h.Update)
	admin.DELETE("/categories/:id", h.Delete)
}

// List returns every category that has not been soft-deleted.
// @Summary		List categories
// @Tags		Category
// @Security	BearerAuth
// @Success		200	{object}	response.Envelope
// @Router		/user/categories [GET]
func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category info fetched successfully", categories)
}

// Get returns one category by id.
// @Summary		Fetch category
// @Tags		Admin Category
// @Security	BearerAuth
// @Param		id	path	string	true	"category id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/categories/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	category, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category info fetched successfully", category)
}

// Create adds a new category on behalf of the acting admin.
// @Summary		Create category
// @Tags		Admin Category
// @Security	BearerAuth
// @Param		request	body	CreateRequest	true	"name"
// @Success		201	{object}	response.Envelope
// @Router		/admin/categories [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	adminLoginID := c.GetString(middleware.CtxAdminLoginID)
	category, err := h.service.Create(c.Request.Context(), req, adminLoginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", category)
}

// Update renames a category.
// @Summary		Update category
// @Tags		Admin Category
// @Security	BearerAuth
// @Param		id		path	string			true	"category id"
// @Param		request	body	CreateRequest	true	"name"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/categories/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}

	adminLoginID := c.GetString(middleware.CtxAdminLoginID)
	category, err := h.service.Update(c.Request.Context(), c.Param("id"), req, adminLoginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", category)
}

// Delete soft-deletes a category.
// @Summary		Delete category
// @Tags		Admin Category
// @Security	BearerAuth
// @Param		id	path	string	true	"category id"
// @Success		200	{object}	response.Envelope
// @Failure		404	{object}	response.Envelope
// @Router		/admin/categories/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	adminLoginID := c.GetString(middleware.CtxAdminLoginID)
	category, err := h.service.Delete(c.Request.Context(), c.Param("id"), adminLoginID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", category)
}
