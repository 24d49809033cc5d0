package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
	"github.com/dmitrijs2005/zkpauth/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Pointer fields tell
// "absent" apart from a zero value so a partial file only overrides what it
// names.
type JsonConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	SecretKey        *string         `json:"secret_key"`
	ChallengeTTL     *timex.Duration `json:"challenge_ttl"`
	SessionTTL       *timex.Duration `json:"session_ttl"`
	LogLevel         *string         `json:"log_level"`
	StrictElements   *bool           `json:"strict_elements"`
}

// parseJson overlays Config with the file named by -c/-config, if any.
// Unreadable or malformed files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.ChallengeTTL != nil {
		config.ChallengeTTL = c.ChallengeTTL.Duration
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.StrictElements != nil {
		config.StrictElements = *c.StrictElements
	}
}
