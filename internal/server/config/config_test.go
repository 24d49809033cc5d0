package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		EndpointAddrGRPC: ":50051",
		ChallengeTTL:     10 * time.Second,
		SessionTTL:       360 * time.Second,
		LogLevel:         "info",
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), &c))
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"endpoint_addr_grpc": ":7000",
		"challenge_ttl":      "30s",
		"log_level":          "debug",
	})

	t.Run("defaults only", func(t *testing.T) {
		os.Args = []string{"server"}
		assert.Empty(t, cmp.Diff(defaults(), LoadConfig()))
	})

	t.Run("json over defaults, flags over json", func(t *testing.T) {
		os.Args = []string{"server", "-c", path, "-a", ":9000", "-e"}

		want := defaults()
		want.EndpointAddrGRPC = ":9000"
		want.ChallengeTTL = 30 * time.Second
		want.LogLevel = "debug"
		want.StrictElements = true

		got := LoadConfig()
		require.NotNil(t, got)
		assert.Empty(t, cmp.Diff(want, got))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero challenge ttl", func(c *Config) { c.ChallengeTTL = 0 }, true},
		{"negative challenge ttl", func(c *Config) { c.ChallengeTTL = -time.Second }, true},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }, true},
		{"negative session ttl", func(c *Config) { c.SessionTTL = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTTL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
