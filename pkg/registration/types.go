// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

// RegisterRequest is the public signup payload. It has no tenant or role
// field: signup always creates a new company with its first ADMIN.
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=2"`
	AdminName   string `json:"admin_name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,maxbytes=72"`
	VATNumber   string `json:"vat_number" validate:"omitempty,max=32"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// Registration is what a successful signup returns.
type Registration struct {
	Company *types.Company `json:"company"`
	User    *types.User    `json:"user"`
}

// Config holds the verification parameters.
type Config struct {
	AppURL         string
	TokenTTL       time.Duration
	ResendCooldown time.Duration
}
