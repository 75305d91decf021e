// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

// StorageInterface is the persistence surface of the service. Every method
// touching tenant owned data takes the tenant ID as an explicit argument and
// filters on it.
type StorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompany(ctx context.Context, tenantID string) (*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company) (*types.Company, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error)
	GetUserByVerifyTokenHash(ctx context.Context, hash string) (*types.User, error)
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
	CountActiveUsers(ctx context.Context, tenantID string) (int, error)
	UpdateUser(ctx context.Context, tenantID, id string, upd types.UserUpdate) (*types.User, error)
	ToggleUserActive(ctx context.Context, tenantID, id string) (*types.User, error)
	SetVerificationToken(ctx context.Context, tenantID, id, hash string, expires, sentAt time.Time) error
	MarkEmailVerified(ctx context.Context, id string) error

	ListCustomers(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Customer, error)
	CountCustomers(ctx context.Context, tenantID string) (int, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	CreateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, tenantID, id string) error

	ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*types.Appointment, error)
	ListAppointmentsByCustomer(ctx context.Context, tenantID, customerID string) ([]*types.Appointment, error)
	CountAppointments(ctx context.Context, tenantID string, from, to time.Time) (int, error)
	CreateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error)
	RescheduleAppointment(ctx context.Context, tenantID, id string, start, end time.Time) (*types.Appointment, error)
	DeleteAppointment(ctx context.Context, tenantID, id string) error

	ListConversations(ctx context.Context, tenantID string) ([]*types.Conversation, error)
	CountConversations(ctx context.Context, tenantID string, status types.ConversationStatus) (int, error)
	GetConversation(ctx context.Context, tenantID, id string) (*types.Conversation, error)
	CreateConversation(ctx context.Context, tenantID string, c *types.Conversation) (*types.Conversation, error)
	UpdateConversationActivity(ctx context.Context, tenantID, id string, at time.Time, status types.ConversationStatus) error
	AssignConversation(ctx context.Context, tenantID, id string, assigneeID *string) (*types.Conversation, error)
	SetConversationStatus(ctx context.Context, tenantID, id string, status types.ConversationStatus) (*types.Conversation, error)
	ListMessages(ctx context.Context, tenantID, conversationID string) ([]*types.Message, error)
	CreateMessage(ctx context.Context, tenantID string, m *types.Message) (*types.Message, error)
}
