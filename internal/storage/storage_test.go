// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/migrations"
)

// setupStorage runs against a disposable Postgres database named by TEST_DSN.
func setupStorage(t *testing.T) (*Storage, *db.DBClient) {
	t.Helper()

	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("TEST_DSN not set, skipping storage integration tests")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid TEST_DSN: %v", err)
	}

	raw := stdlib.OpenDB(*config)
	defer raw.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, raw, migrations.EmbedMigrations, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		t.Fatalf("failed to create goose provider: %v", err)
	}
	if _, err := provider.DownTo(context.Background(), 0); err != nil {
		t.Fatalf("failed to reset schema: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 4}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(client.Close)

	return NewStorage(client, tracer, monitor, logger), client
}

func seedTenant(t *testing.T, s *Storage, email string) (*types.Company, *types.User) {
	t.Helper()
	ctx := context.Background()

	company, err := s.CreateCompany(ctx, &types.Company{
		Name:               "Company " + email,
		SubscriptionPlan:   types.PlanStarter,
		SubscriptionStatus: types.SubscriptionTrial,
	})
	if err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	user, err := s.CreateUser(ctx, &types.User{
		CompanyID:    company.ID,
		Name:         "Admin",
		Email:        email,
		PasswordHash: "hash",
		Role:         types.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return company, user
}

func seedCustomer(t *testing.T, s *Storage, tenantID, phone string) *types.Customer {
	t.Helper()

	c, err := s.CreateCustomer(context.Background(), tenantID, &types.Customer{
		FirstName: "Mario",
		LastName:  "Rossi",
		PhoneE164: phone,
	})
	if err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	return c
}

func TestCrossTenantAccessIsNotFound(t *testing.T) {
	s, _ := setupStorage(t)
	ctx := context.Background()

	a, _ := seedTenant(t, s, "a@example.com")
	b, _ := seedTenant(t, s, "b@example.com")
	customer := seedCustomer(t, s, a.ID, "+390000000001")

	if _, err := s.GetCustomer(ctx, b.ID, customer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound reading foreign customer, got %v", err)
	}

	customer.FirstName = "Hijacked"
	if _, err := s.UpdateCustomer(ctx, b.ID, customer); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound updating foreign customer, got %v", err)
	}

	if err := s.DeleteCustomer(ctx, b.ID, customer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting foreign customer, got %v", err)
	}

	got, err := s.GetCustomer(ctx, a.ID, customer.ID)
	if err != nil {
		t.Fatalf("expected owner read to succeed, got %v", err)
	}
	if got.FirstName != "Mario" {
		t.Errorf("expected customer untouched, got first name %q", got.FirstName)
	}

	if _, err := s.GetCustomer(ctx, a.ID, "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestCreateIgnoresForeignReferences(t *testing.T) {
	s, _ := setupStorage(t)
	ctx := context.Background()

	a, _ := seedTenant(t, s, "a@example.com")
	b, bAdmin := seedTenant(t, s, "b@example.com")
	foreign := seedCustomer(t, s, a.ID, "+390000000002")
	start := time.Now().Add(time.Hour).Truncate(time.Second)

	_, err := s.CreateAppointment(ctx, b.ID, &types.Appointment{
		CustomerID:  foreign.ID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		ServiceType: "Consulenza",
		Status:      types.AppointmentScheduled,
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation for foreign customer, got %v", err)
	}

	own := seedCustomer(t, s, a.ID, "+390000000003")
	_, err = s.CreateAppointment(ctx, a.ID, &types.Appointment{
		CustomerID:  own.ID,
		UserID:      &bAdmin.ID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		ServiceType: "Consulenza",
		Status:      types.AppointmentScheduled,
	})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation for foreign operator, got %v", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	s, _ := setupStorage(t)
	ctx := context.Background()

	a, _ := seedTenant(t, s, "a@example.com")
	customer := seedCustomer(t, s, a.ID, "+390000000004")

	if err := s.DeleteCustomer(ctx, a.ID, customer.ID); err != nil {
		t.Fatalf("expected first delete to succeed, got %v", err)
	}
	if err := s.DeleteCustomer(ctx, a.ID, customer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDuplicatePhoneWithinTenant(t *testing.T) {
	s, _ := setupStorage(t)

	a, _ := seedTenant(t, s, "a@example.com")
	b, _ := seedTenant(t, s, "b@example.com")
	seedCustomer(t, s, a.ID, "+390000000005")

	_, err := s.CreateCustomer(context.Background(), a.ID, &types.Customer{FirstName: "A", LastName: "B", PhoneE164: "+390000000005"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	// the same number is free in another tenant
	seedCustomer(t, s, b.ID, "+390000000005")
}

func TestConcurrentRegistrationSameEmail(t *testing.T) {
	s, client := setupStorage(t)
	ctx := context.Background()

	const attempts = 4

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := client.WithTx(ctx, func(ctx context.Context) error {
				company, err := s.CreateCompany(ctx, &types.Company{Name: "Race", SubscriptionPlan: types.PlanStarter, SubscriptionStatus: types.SubscriptionTrial})
				if err != nil {
					return err
				}
				_, err = s.CreateUser(ctx, &types.User{
					CompanyID:    company.ID,
					Name:         "Admin",
					Email:        "race@example.com",
					PasswordHash: "hash",
					Role:         types.RoleAdmin,
					Active:       true,
				})
				return err
			})

			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ErrDuplicateKey) {
				t.Errorf("expected ErrDuplicateKey for losers, got %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly one registration to succeed, got %d", successes)
	}
}

func TestVerificationTokenConsumedOnce(t *testing.T) {
	s, _ := setupStorage(t)
	ctx := context.Background()

	a, user := seedTenant(t, s, "a@example.com")
	expires := time.Now().Add(time.Hour)

	if err := s.SetVerificationToken(ctx, a.ID, user.ID, "tokenhash", expires, time.Now()); err != nil {
		t.Fatalf("failed to set token: %v", err)
	}

	found, err := s.GetUserByVerifyTokenHash(ctx, "tokenhash")
	if err != nil || found.ID != user.ID {
		t.Fatalf("expected to find user by token hash, got %v, %v", found, err)
	}

	if err := s.MarkEmailVerified(ctx, user.ID); err != nil {
		t.Fatalf("expected first verification to succeed, got %v", err)
	}
	if err := s.MarkEmailVerified(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second verification, got %v", err)
	}

	if _, err := s.GetUserByVerifyTokenHash(ctx, "tokenhash"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected token hash cleared, got %v", err)
	}
}

func TestSendMessageCopiesConversationOwnership(t *testing.T) {
	s, _ := setupStorage(t)
	ctx := context.Background()

	a, _ := seedTenant(t, s, "a@example.com")
	b, _ := seedTenant(t, s, "b@example.com")
	customer := seedCustomer(t, s, a.ID, "+390000000006")

	conv, err := s.CreateConversation(ctx, a.ID, &types.Conversation{
		CustomerID: customer.ID,
		Channel:    types.ChannelWhatsApp,
		Status:     types.ConversationOpen,
	})
	if err != nil {
		t.Fatalf("failed to create conversation: %v", err)
	}

	msg, err := s.CreateMessage(ctx, a.ID, &types.Message{
		ConversationID: conv.ID,
		Direction:      types.MessageOutbound,
		Content:        "Ciao",
		Status:         types.MessageSent,
	})
	if err != nil {
		t.Fatalf("failed to create message: %v", err)
	}
	if msg.CompanyID != a.ID || msg.CustomerID != customer.ID {
		t.Errorf("expected ownership copied from conversation, got %+v", msg)
	}

	_, err = s.CreateMessage(ctx, b.ID, &types.Message{
		ConversationID: conv.ID,
		Direction:      types.MessageOutbound,
		Content:        "Intrusion",
		Status:         types.MessageSent,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound writing into foreign conversation, got %v", err)
	}

	got, err := s.GetConversation(ctx, a.ID, conv.ID)
	if err != nil {
		t.Fatalf("failed to get conversation: %v", err)
	}
	if got.LastMessage == nil || got.LastMessage.Content != "Ciao" {
		t.Errorf("expected last message preview, got %+v", got.LastMessage)
	}

	stranger := uuid.NewString()
	if _, err := s.AssignConversation(ctx, a.ID, conv.ID, &stranger); !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation assigning unknown principal, got %v", err)
	}
}
