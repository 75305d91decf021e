// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"strings"
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

const dateLayout = "2006-01-02"

// CustomerRequest is the create and update payload. The owning company is
// always taken from the session.
type CustomerRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=2,max=100"`
	LastName      string `json:"last_name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=5,max=32"`
	Email         string `json:"email" validate:"omitempty,email"`
	InternalNotes string `json:"internal_notes" validate:"max=5000"`
	BirthDate     string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender" validate:"max=32"`
	FiscalCode    string `json:"fiscal_code" validate:"max=32"`
	VATNumber     string `json:"vat_number" validate:"max=32"`
}

// Page is one page of the customer list.
type Page struct {
	Customers []*types.Customer `json:"customers"`
	Page      int64             `json:"page"`
	Size      int64             `json:"size"`
	Total     int               `json:"total"`
}

// toCustomer normalises a validated request.
func (r *CustomerRequest) toCustomer() *types.Customer {
	c := &types.Customer{
		FirstName:     strings.TrimSpace(r.FirstName),
		LastName:      strings.TrimSpace(r.LastName),
		PhoneE164:     NormalizePhone(r.Phone),
		Email:         types.NormalizeEmail(r.Email),
		InternalNotes: strings.TrimSpace(r.InternalNotes),
		Gender:        strings.TrimSpace(r.Gender),
		FiscalCode:    strings.ToUpper(strings.TrimSpace(r.FiscalCode)),
		VATNumber:     strings.TrimSpace(r.VATNumber),
	}

	if r.BirthDate != "" {
		if d, err := time.Parse(dateLayout, r.BirthDate); err == nil {
			c.BirthDate = &d
		}
	}

	return c
}

const defaultCountryPrefix = "+39"

// NormalizePhone strips whitespace and prefixes the Italian country code
// when the number has no international prefix.
func NormalizePhone(phone string) string {
	p := strings.Join(strings.Fields(phone), "")
	if p == "" || strings.HasPrefix(p, "+") {
		return p
	}
	return defaultCountryPrefix + p
}
