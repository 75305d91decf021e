// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"

	"github.com/Miky-dev/GestIA/internal/types"
)

type payload struct {
	Name  string   `json:"name" validate:"required,min=2"`
	Email string   `json:"email" validate:"required,email"`
	Role  string   `json:"role" validate:"oneof=ADMIN SECRETARY"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Pin   string   `json:"pin" validate:"omitempty,maxbytes=8"`
}

func TestStruct(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name   string
		input  payload
		fields map[string]string
	}{
		{
			name:  "valid",
			input: payload{Name: "Anna", Email: "anna@example.com", Role: "ADMIN"},
		},
		{
			name:  "short name and bad email",
			input: payload{Name: "A", Email: "nope", Role: "ADMIN"},
			fields: map[string]string{
				"name":  "must be at least 2 characters",
				"email": "must be a valid email address",
			},
		},
		{
			name:   "unknown role and negative price",
			input:  payload{Name: "Anna", Email: "anna@example.com", Role: "OWNER", Price: &negative},
			fields: map[string]string{"role": "must be one of ADMIN, SECRETARY", "price": "must be greater than or equal to 0"},
		},
		{
			name:   "pin counted in bytes",
			input:  payload{Name: "Anna", Email: "anna@example.com", Role: "ADMIN", Pin: "ééééé"},
			fields: map[string]string{"pin": "must be at most 8 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)

			if tt.fields == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, types.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}

			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *types.ValidationError, got %T", err)
			}

			for field, msg := range tt.fields {
				if verr.Fields[field] != msg {
					t.Errorf("field %s: expected %q, got %q", field, msg, verr.Fields[field])
				}
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Errorf("expected %d fields, got %v", len(tt.fields), verr.Fields)
			}
		})
	}
}

func TestVar(t *testing.T) {
	if err := Var("id", "0190a5a4-6c3b-7cc1-8f11-3a0f7c7e2b41", "uuid"); err != nil {
		t.Errorf("expected valid uuid, got %v", err)
	}

	err := Var("id", "42", "uuid")
	var verr *types.ValidationError
	if !errors.As(err, &verr) || verr.Fields["id"] != "must be a valid identifier" {
		t.Errorf("expected identifier validation error, got %v", err)
	}
}
