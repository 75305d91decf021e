package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	MonitoringEnabled bool `envconfig:"monitoring_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	AppURL             string   `envconfig:"app_url" default:"http://localhost:3000"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionSecret     string        `envconfig:"session_secret" required:"true"`
	SessionMaxAge     time.Duration `envconfig:"session_max_age" default:"720h"`
	SessionCookieName string        `envconfig:"session_cookie_name" default:"session"`
	CookieSecure      bool          `envconfig:"cookie_secure" default:"true"`

	BcryptCost int `envconfig:"bcrypt_cost" default:"10"`

	LoginRatePoints int           `envconfig:"login_rate_points" default:"5"`
	LoginRateWindow time.Duration `envconfig:"login_rate_window" default:"15m"`

	VerificationTokenTTL       time.Duration `envconfig:"verification_token_ttl" default:"24h"`
	VerificationResendCooldown time.Duration `envconfig:"verification_resend_cooldown" default:"2m"`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	ViewCacheTTL time.Duration `envconfig:"view_cache_ttl" default:"1m"`

	TimeZone string `envconfig:"time_zone" default:"Europe/Rome"`

	MailAPIURL string `envconfig:"mail_api_url" default:"https://api.resend.com/"`
	MailAPIKey string `envconfig:"mail_api_key"`
	MailFrom   string `envconfig:"mail_from" default:"GestIA <onboarding@resend.dev>"`
}
