// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/config"
	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/mail"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/monitoring/prometheus"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/ratelimit"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/pkg/authentication"
	"github.com/Miky-dev/GestIA/pkg/calendar"
	"github.com/Miky-dev/GestIA/pkg/customers"
	"github.com/Miky-dev/GestIA/pkg/dashboard"
	"github.com/Miky-dev/GestIA/pkg/employees"
	"github.com/Miky-dev/GestIA/pkg/inbox"
	"github.com/Miky-dev/GestIA/pkg/registration"
	"github.com/Miky-dev/GestIA/pkg/status"
	"github.com/Miky-dev/GestIA/pkg/tenant"
	"github.com/Miky-dev/GestIA/pkg/web"
)

const (
	serviceName     = "gestia"
	shutdownTimeout = 15 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(envFile)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// redisPinger adapts the redis client to the deep status check.
type redisPinger struct {
	client redis.UniversalClient
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func serve(files ...string) error {
	specs, err := config.Load(files...)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars loaded, port %d", specs.Port)
	defer logger.Sync()

	var monitor monitoring.MonitorInterface = monitoring.NewNoopMonitor(serviceName, logger)
	if specs.MonitoringEnabled {
		monitor = prometheus.NewMonitor(serviceName, logger)
	}
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	location, err := time.LoadLocation(specs.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", specs.TimeZone, err)
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	dependencies := map[string]status.PingerInterface{"database": dbClient}

	var (
		cacheBackend cache.CacheInterface
		limiter      ratelimit.LimiterInterface
	)
	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		defer rdb.Close()

		redisLimiter, err := ratelimit.NewRedisLimiter(rdb, specs.LoginRatePoints, specs.LoginRateWindow)
		if err != nil {
			return err
		}

		cacheBackend = cache.NewRedisCache(rdb)
		limiter = redisLimiter
		dependencies["redis"] = redisPinger{client: rdb}
		logger.Infof("Using redis at %s for cache and rate limiting", specs.RedisAddr)
	} else {
		memCache := cache.NewMemoryCache()
		defer memCache.Close()

		cacheBackend = memCache
		limiter = ratelimit.NewMemoryLimiter(specs.LoginRatePoints, specs.LoginRateWindow)
		logger.Info("Using in-memory cache and rate limiting")
	}
	views := cache.NewViewCache(cacheBackend, specs.ViewCacheTTL, tracer, logger)

	var mailer mail.SenderInterface = mail.NewLogSender(logger)
	if specs.MailAPIKey != "" {
		apiSender, err := mail.NewAPISender(specs.MailAPIURL, specs.MailAPIKey, specs.MailFrom, tracer, logger)
		if err != nil {
			return fmt.Errorf("failed to set up mail delivery: %w", err)
		}
		mailer = apiSender
	} else {
		logger.Info("No mail API key configured, verification emails are logged")
	}

	hasher := password.NewHasher(specs.BcryptCost)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)

	tokens, err := authentication.NewJWTTokens(specs.SessionSecret, specs.SessionMaxAge, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up session tokens: %w", err)
	}
	authService := authentication.NewService(s, limiter, hasher, tokens, tracer, monitor, logger)
	authMiddleware := authentication.NewMiddleware(tokens, authService, specs.SessionCookieName, tracer, monitor, logger)

	registrationService := registration.NewService(
		s,
		dbClient,
		hasher,
		mailer,
		registration.Config{
			AppURL:         specs.AppURL,
			TokenTTL:       specs.VerificationTokenTTL,
			ResendCooldown: specs.VerificationResendCooldown,
		},
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		web.RouterConfig{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			Authenticate:       authMiddleware.Authenticate(),
			Public: []web.PublicAPIInterface{
				authentication.NewAPI(authService, authentication.CookieConfig{Name: specs.SessionCookieName, Secure: specs.CookieSecure}, logger),
				registration.NewAPI(registrationService, specs.AppURL, logger),
			},
			Protected: []web.APIInterface{
				customers.NewAPI(customers.NewService(s, authorizer, views, tracer, monitor, logger), logger),
				calendar.NewAPI(calendar.NewService(s, authorizer, views, tracer, monitor, logger), logger),
				employees.NewAPI(employees.NewService(s, authorizer, views, hasher, tracer, monitor, logger), logger),
				inbox.NewAPI(inbox.NewService(s, dbClient, authorizer, views, tracer, monitor, logger), logger),
				tenant.NewHandler(tenant.NewService(s, authorizer, tracer, monitor, logger), tracer, monitor, logger),
				dashboard.NewAPI(dashboard.NewService(s, authorizer, views, location, tracer, monitor, logger), logger),
			},
			Dependencies: dependencies,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Security().SystemStartup()
	err = serveUntilDone(ctx, srv, shutdownTimeout)
	logger.Security().SystemShutdown()

	return err
}

// serveUntilDone runs srv until ctx is done or the listener fails, then shuts it down.
func serveUntilDone(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}
