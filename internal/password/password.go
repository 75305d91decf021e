// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Miky-dev/GestIA/internal/types"
)

// MaxBytes is the longest password bcrypt accepts.
const MaxBytes = 72

type HasherInterface interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

// Hasher stores passwords as bcrypt hashes.
type Hasher struct {
	cost int
}

var _ HasherInterface = (*Hasher)(nil)

func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", types.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", MaxBytes))
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// Compare reports whether plain matches hash. A mismatch is not an error.
func (h *Hasher) Compare(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	}
	return false, fmt.Errorf("failed to compare password: %w", err)
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}
