// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	tokenBytes     = 32
	minTokenLength = 10
)

// newVerificationToken returns the raw token mailed to the user and the hash
// persisted in its place.
func newVerificationToken() (string, string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to generate verification token: %w", err)
	}

	raw := hex.EncodeToString(b)
	return raw, hashToken(raw), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
