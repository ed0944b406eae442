// Package credential hashes and verifies account passwords with bcrypt.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrTooLong is returned for passwords bcrypt cannot hash without truncation.
var ErrTooLong = errors.New("password exceeds 72 bytes")

// Options configure the hasher.
type Options struct {
	// Cost is the bcrypt work factor. Values outside the bcrypt range fall back
	// to bcrypt.DefaultCost.
	Cost int
}

// Bcrypt is a one-way password hasher.
type Bcrypt struct {
	cost int
}

// New creates a bcrypt hasher.
func New(opts Options) *Bcrypt {
	cost := opts.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost}
}

// Hash returns the encoded bcrypt hash of plain.
func (b *Bcrypt) Hash(plain string) (string, error) {
	if len(plain) > 72 {
		return "", ErrTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether plain matches hash. Malformed hashes never match.
func (b *Bcrypt) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
