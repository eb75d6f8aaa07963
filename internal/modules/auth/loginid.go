package auth

import (
	"context"
	"crypto/rand"
	"math/big"
)

const (
	loginIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	loginIDLength   = 8

	// Collisions over a 36^8 space are vanishingly rare; the bound exists so
	// a broken store cannot drive the generator into an endless loop.
	maxLoginIDAttempts = 10
)

// LoginIDGenerator produces collision-free admin login ids, checking every
// candidate against the admin directory before handing it out. Generation is
// check-then-create: the unique index on login_id backstops the race between
// two concurrent registrations drawing the same candidate.
type LoginIDGenerator struct {
	admins AdminDirectory
}

func NewLoginIDGenerator(admins AdminDirectory) *LoginIDGenerator {
	return &LoginIDGenerator{admins: admins}
}

func (g *LoginIDGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxLoginIDAttempts; attempt++ {
		candidate, err := randomLoginID()
		if err != nil {
			return "", err
		}
		exists, err := g.admins.ExistsByLoginID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrInternal
}

func randomLoginID() (string, error) {
	max := big.NewInt(int64(len(loginIDAlphabet)))
	id := make([]byte, loginIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		id[i] = loginIDAlphabet[n.Int64()]
	}
	return string(id), nil
}
