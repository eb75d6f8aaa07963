package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoginIDGenerator_ShapeAndAlphabet(t *testing.T) {
	admins := new(mockAdminDirectory)
	admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(false, nil)

	g := NewLoginIDGenerator(admins)

	for i := 0; i < 50; i++ {
		id, err := g.Generate(context.Background())
		assert.NoError(t, err)
		assert.Len(t, id, loginIDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(loginIDAlphabet, r), "unexpected rune %q in %q", r, id)
		}
	}
}

func TestLoginIDGenerator_SkipsTakenIDs(t *testing.T) {
	admins := new(mockAdminDirectory)
	// First two candidates collide, the third is free.
	admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(true, nil).Twice()
	admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(false, nil).Once()

	g := NewLoginIDGenerator(admins)

	id, err := g.Generate(context.Background())

	assert.NoError(t, err)
	assert.Len(t, id, loginIDLength)
	admins.AssertNumberOfCalls(t, "ExistsByLoginID", 3)
}

func TestLoginIDGenerator_BoundedRetries(t *testing.T) {
	admins := new(mockAdminDirectory)
	// A store that claims every candidate is taken must not loop forever.
	admins.On("ExistsByLoginID", mock.Anything, mock.Anything).Return(true, nil)

	g := NewLoginIDGenerator(admins)

	_, err := g.Generate(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	admins.AssertNumberOfCalls(t, "ExistsByLoginID", maxLoginIDAttempts)
}
