// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Miky-dev/GestIA/internal/config"
	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

// seedCmd creates a demo company with a verified administrator
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo company and administrator",
	Long:  `Create a demo company, a verified administrator and a few customers. Does nothing when the email is already registered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		plain, _ := cmd.Flags().GetString("password")

		return seed(cmd, company, name, email, plain)
	},
}

var demoCustomers = []types.Customer{
	{FirstName: "Mario", LastName: "Rossi", PhoneE164: "+393331234567", Email: "mario.rossi@example.com"},
	{FirstName: "Giulia", LastName: "Bianchi", PhoneE164: "+393401112233"},
	{FirstName: "Luca", LastName: "Verdi", PhoneE164: "+393285556677", InternalNotes: "prefers morning appointments"},
}

func init() {
	seedCmd.Flags().String("company", "Demo Company", "company name")
	seedCmd.Flags().String("name", "Admin Demo", "administrator name")
	seedCmd.Flags().String("email", "admin@demo.com", "administrator email")
	seedCmd.Flags().String("password", "password123", "administrator password")

	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, companyName, name, email, plain string) error {
	specs, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(serviceName, logger)

	dbClient, err := db.NewDBClient(db.Config{DSN: specs.DSN, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	email = types.NormalizeEmail(email)

	hash, err := password.NewHasher(specs.BcryptCost).Hash(plain)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		created bool
		user    *types.User
	)
	err = dbClient.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.EmailExists(ctx, email)
		if err != nil || exists {
			return err
		}

		company, err := s.CreateCompany(ctx, &types.Company{
			Name:               companyName,
			SubscriptionPlan:   types.PlanStarter,
			SubscriptionStatus: types.SubscriptionTrial,
		})
		if err != nil {
			return err
		}

		user, err = s.CreateUser(ctx, &types.User{
			CompanyID:     company.ID,
			Name:          name,
			Email:         email,
			PasswordHash:  hash,
			Role:          types.RoleAdmin,
			Active:        true,
			EmailVerified: true,
		})
		if err != nil {
			return err
		}

		for _, c := range demoCustomers {
			if _, err := s.CreateCustomer(ctx, company.ID, &c); err != nil {
				return err
			}
		}

		created = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !created {
		fmt.Fprintf(out, "%s already exists, nothing to do\n", email)
		return nil
	}

	fmt.Fprintf(out, "Created company %q with administrator %s (%s)\n", companyName, user.Email, user.CompanyID)
	return nil
}
