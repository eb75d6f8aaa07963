package response

import (
	"github.com/gin-gonic/gin"

	"github.com/htetarkarhlaing/share-book-api/internal/pkg/apperror"
)

// Meta is the envelope header attached to every response.
type Meta struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Envelope is the wire shape of every API response.
type Envelope struct {
	Meta Meta `json:"meta"`
	Body any  `json:"body"`
}

// Success writes the envelope with success derived from the status code.
func Success(c *gin.Context, statusCode int, message string, body any) {
	c.JSON(statusCode, Envelope{
		Meta: Meta{
			Success: statusCode >= 200 && statusCode < 300,
			Message: message,
		},
		Body: body,
	})
}

// Error translates a service failure into its transport status, surfacing
// the message unmodified.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)
	c.JSON(appErr.Status(), Envelope{
		Meta: Meta{
			Success: false,
			Message: appErr.Message,
		},
		Body: nil,
	})
}

// AbortUnauthorized rejects the request from middleware before any handler runs.
func AbortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(401, Envelope{
		Meta: Meta{Success: false, Message: message},
		Body: nil,
	})
}
