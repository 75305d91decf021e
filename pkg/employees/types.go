// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=ADMIN SECRETARY"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// UpdateEmployeeRequest changes profile and role. An empty password keeps the current one.
type UpdateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,oneof=ADMIN SECRETARY"`
	Password string `json:"password" validate:"omitempty,min=8,maxbytes=72"`
}
