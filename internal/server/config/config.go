// Package config handles configuration for the verifier server: defaults,
// an optional JSON overlay and command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTTL is returned by Validate for a zero or negative lifetime.
var ErrInvalidTTL = errors.New("ttl must be positive")

// Config holds runtime settings for the verifier.
//
// SecretKey signs session access tokens (HS256). When it is left empty the
// server generates a random one at startup, so tokens do not survive a
// restart, same as the sessions they describe.
type Config struct {
	EndpointAddrGRPC string
	SecretKey        string
	ChallengeTTL     time.Duration
	SessionTTL       time.Duration
	LogLevel         string
	StrictElements   bool
}

// LoadDefaults populates Config with the stock verifier settings.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = ""
	c.ChallengeTTL = 10 * time.Second
	c.SessionTTL = 360 * time.Second
	c.LogLevel = "info"
	c.StrictElements = false
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate rejects settings the verifier cannot run with. A non-positive TTL
// would leave challenges or sessions without expiry.
func (c *Config) Validate() error {
	if c.ChallengeTTL <= 0 {
		return fmt.Errorf("challenge ttl %v: %w", c.ChallengeTTL, ErrInvalidTTL)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl %v: %w", c.SessionTTL, ErrInvalidTTL)
	}
	return nil
}
