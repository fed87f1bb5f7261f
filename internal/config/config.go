package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"1048576"`
	// ServiceName labels HTTP telemetry spans.
	ServiceName string `yaml:"service_name" env:"SERVER_SERVICE_NAME" env-default:"advocacy-api"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"5s"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"advocacy"`
}

// AuthConfig configures verification of identity-provider tokens.
// Tokens are HS256 JWTs; the subject claim is the caller's identifier.
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string        `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string        `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE"`
	Leeway      time.Duration `yaml:"leeway"       env:"AUTH_LEEWAY"       env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-owner request limits. An empty RedisAddr keeps
// counters in process memory.
type RateLimitConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"RATE_LIMIT_ENABLED"        env-default:"true"`
	Requests      int           `yaml:"requests"       env:"RATE_LIMIT_REQUESTS"       env-default:"120"`
	Window        time.Duration `yaml:"window"         env:"RATE_LIMIT_WINDOW"         env-default:"1m"`
	RedisAddr     string        `yaml:"redis_addr"     env:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"RATE_LIMIT_REDIS_DB"       env-default:"0"`
	KeyPrefix     string        `yaml:"key_prefix"     env:"RATE_LIMIT_KEY_PREFIX"     env-default:"advocacy:rl:"`
}

// UsesRedis reports whether the limiter should be backed by Redis.
func (c RateLimitConfig) UsesRedis() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

// RemindersConfig controls the trusted reminder sweep.
type RemindersConfig struct {
	// Lookahead selects items due within this window from now.
	Lookahead time.Duration `yaml:"lookahead"  env:"REMINDERS_LOOKAHEAD"  env-default:"24h"`
	BatchSize int           `yaml:"batch_size" env:"REMINDERS_BATCH_SIZE" env-default:"200"`
}
