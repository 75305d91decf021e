// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleSecretary Role = "SECRETARY"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSecretary:
		return true
	}
	return false
}

const (
	PlanStarter = "STARTER"

	SubscriptionTrial = "TRIAL"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

type Channel string

const (
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelSMS      Channel = "SMS"
	ChannelEmail    Channel = "EMAIL"
)

type ConversationStatus string

const (
	ConversationOpen    ConversationStatus = "OPEN"
	ConversationPending ConversationStatus = "PENDING"
	ConversationClosed  ConversationStatus = "CLOSED"
)

type MessageDirection string

const (
	MessageInbound  MessageDirection = "INBOUND"
	MessageOutbound MessageDirection = "OUTBOUND"
)

const MessageSent = "SENT"

// Session is the authenticated caller. It is handed explicitly to every
// service and storage call that touches tenant data.
type Session struct {
	PrincipalID   string `json:"user_id"`
	TenantID      string `json:"company_id"`
	Role          Role   `json:"role"`
	EmailVerified bool   `json:"is_email_verified"`
}

type Company struct {
	ID                 string    `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	SubscriptionPlan   string    `json:"subscription_plan" db:"subscription_plan"`
	SubscriptionStatus string    `json:"subscription_status" db:"subscription_status"`
	VATNumber          string    `json:"vat_number,omitempty" db:"vat_number"`
	PhoneNumber        string    `json:"phone_number,omitempty" db:"phone_number"`
	Industry           string    `json:"industry,omitempty" db:"industry"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// User is a principal of a single company. Secrets never leave the service layer.
type User struct {
	ID                      string     `json:"id" db:"id"`
	CompanyID               string     `json:"company_id" db:"company_id"`
	Name                    string     `json:"name" db:"name"`
	Email                   string     `json:"email" db:"email"`
	PasswordHash            string     `json:"-" db:"password_hash"`
	Role                    Role       `json:"role" db:"role"`
	Active                  bool       `json:"is_active" db:"is_active"`
	EmailVerified           bool       `json:"email_verified" db:"email_verified"`
	VerifyTokenHash         *string    `json:"-" db:"email_verify_token_hash"`
	VerifyExpires           *time.Time `json:"-" db:"email_verify_expires"`
	LastVerificationEmailAt *time.Time `json:"-" db:"last_verification_email_sent_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
}

type UserUpdate struct {
	Name         *string
	Role         *Role
	PasswordHash *string
}

type Customer struct {
	ID            string     `json:"id" db:"id"`
	CompanyID     string     `json:"company_id" db:"company_id"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	PhoneE164     string     `json:"phone_e164" db:"phone_e164"`
	Email         string     `json:"email,omitempty" db:"email"`
	InternalNotes string     `json:"internal_notes,omitempty" db:"internal_notes"`
	BirthDate     *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Gender        string     `json:"gender,omitempty" db:"gender"`
	FiscalCode    string     `json:"fiscal_code,omitempty" db:"fiscal_code"`
	VATNumber     string     `json:"vat_number,omitempty" db:"vat_number"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	Appointments []*Appointment `json:"appointments,omitempty" db:"-"`
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CustomerRef is the short form of a customer embedded in other records.
type CustomerRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhoneE164 string `json:"phone_e164"`
}

type Appointment struct {
	ID          string            `json:"id" db:"id"`
	CompanyID   string            `json:"company_id" db:"company_id"`
	CustomerID  string            `json:"customer_id" db:"customer_id"`
	UserID      *string           `json:"user_id,omitempty" db:"user_id"`
	StartTime   time.Time         `json:"start_time" db:"start_time"`
	EndTime     time.Time         `json:"end_time" db:"end_time"`
	ServiceType string            `json:"service_type" db:"service_type"`
	Price       *float64          `json:"price,omitempty" db:"price"`
	Status      AppointmentStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`

	Customer *CustomerRef `json:"customer,omitempty" db:"-"`
}

type Conversation struct {
	ID            string             `json:"id" db:"id"`
	CompanyID     string             `json:"company_id" db:"company_id"`
	CustomerID    string             `json:"customer_id" db:"customer_id"`
	AssigneeID    *string            `json:"assignee_id,omitempty" db:"assignee_id"`
	Channel       Channel            `json:"channel" db:"channel"`
	Status        ConversationStatus `json:"status" db:"status"`
	LastMessageAt time.Time          `json:"last_message_at" db:"last_message_at"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`

	Customer    *CustomerRef `json:"customer,omitempty" db:"-"`
	LastMessage *Message     `json:"last_message,omitempty" db:"-"`
	Messages    []*Message   `json:"messages,omitempty" db:"-"`
}

type Message struct {
	ID             string           `json:"id" db:"id"`
	CompanyID      string           `json:"company_id" db:"company_id"`
	ConversationID string           `json:"conversation_id" db:"conversation_id"`
	CustomerID     string           `json:"customer_id" db:"customer_id"`
	Direction      MessageDirection `json:"direction" db:"direction"`
	Content        string           `json:"content" db:"content"`
	Status         string           `json:"status" db:"status"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}

type DashboardSummary struct {
	Customers            int `json:"customers"`
	AppointmentsToday    int `json:"appointments_today"`
	OpenConversations    int `json:"open_conversations"`
	PendingConversations int `json:"pending_conversations"`
	ActiveEmployees      int `json:"active_employees"`
}

// NormalizeEmail lowercases and trims an address so lookups and uniqueness
// checks agree regardless of how the address was typed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
