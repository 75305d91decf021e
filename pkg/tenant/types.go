// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tenant

// UpdateCompanyRequest holds the editable profile fields. Subscription plan
// and status are managed elsewhere and cannot be set here.
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	VATNumber   string `json:"vat_number" validate:"omitempty,max=32"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
}
