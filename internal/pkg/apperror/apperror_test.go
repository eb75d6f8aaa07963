package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status())
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status())
	assert.Equal(t, http.StatusConflict, Conflict("x").Status())
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status())
	assert.Equal(t, http.StatusInternalServerError, Internal("x").Status())
}

func TestMessageSurfacedUnmodified(t *testing.T) {
	err := Unauthorized("Your account is not verify yet")
	assert.Equal(t, "Your account is not verify yet", err.Error())
}

func TestFrom(t *testing.T) {
	known := Conflict("email already used")
	assert.Same(t, known, From(known))

	wrapped := From(errors.New("driver: bad connection"))
	assert.Equal(t, KindInternal, wrapped.Kind)
	assert.Equal(t, "Internal server error", wrapped.Message)
}
