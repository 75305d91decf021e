// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/Miky-dev/GestIA/internal/types"

// Action names a guarded operation as <resource>:<verb>.
type Action string

const (
	CUSTOMER_READ      Action = "customer:read"
	CUSTOMER_WRITE     Action = "customer:write"
	APPOINTMENT_READ   Action = "appointment:read"
	APPOINTMENT_WRITE  Action = "appointment:write"
	CONVERSATION_READ  Action = "conversation:read"
	CONVERSATION_WRITE Action = "conversation:write"
	EMPLOYEE_READ      Action = "employee:read"
	EMPLOYEE_WRITE     Action = "employee:write"
	COMPANY_READ       Action = "company:read"
	COMPANY_WRITE      Action = "company:write"
	DASHBOARD_READ     Action = "dashboard:read"
)

// Rule is one row of the authorization matrix.
type Rule struct {
	Roles         []types.Role
	VerifiedEmail bool
}

var staff = []types.Role{types.RoleAdmin, types.RoleSecretary}

var adminOnly = []types.Role{types.RoleAdmin}

// Policy is the complete authorization matrix. An action missing here is denied.
var Policy = map[Action]Rule{
	CUSTOMER_READ:      {Roles: staff},
	CUSTOMER_WRITE:     {Roles: staff},
	APPOINTMENT_READ:   {Roles: staff},
	APPOINTMENT_WRITE:  {Roles: staff},
	CONVERSATION_READ:  {Roles: staff},
	CONVERSATION_WRITE: {Roles: staff},
	EMPLOYEE_READ:      {Roles: adminOnly},
	EMPLOYEE_WRITE:     {Roles: adminOnly, VerifiedEmail: true},
	COMPANY_READ:       {Roles: staff},
	COMPANY_WRITE:      {Roles: adminOnly, VerifiedEmail: true},
	DASHBOARD_READ:     {Roles: staff},
}
