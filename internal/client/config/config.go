package config

import "time"

// Config holds runtime settings for the prover CLI.
//
// SecretHex, when set, is used as the secret exponent x directly and the
// passphrase prompt is skipped.
type Config struct {
	ServerEndpointAddr string
	User               string
	RequestTimeout     time.Duration
	SecretHex          string
	LogLevel           string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.User = ""
	c.RequestTimeout = 10 * time.Second
	c.SecretHex = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
