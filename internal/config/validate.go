package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.Leeway < 0 {
		errs = append(errs, fmt.Errorf("auth.leeway must be >= 0 (got %s)", c.Auth.Leeway))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests must be > 0 (got %d)", c.RateLimit.Requests))
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.window must be > 0 (got %s)", c.RateLimit.Window))
		}
	}

	if c.Reminders.Lookahead < 0 {
		errs = append(errs, fmt.Errorf("reminders.lookahead must be >= 0 (got %s)", c.Reminders.Lookahead))
	}
	if c.Reminders.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("reminders.batch_size must be > 0 (got %d)", c.Reminders.BatchSize))
	}

	return errors.Join(errs...)
}
