// Package config loads runtime configuration for the prover CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the verifier
//	-u string   user id
//	-i int      request timeout (seconds)
//	-x string   secret exponent as hex
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "user": "dummy",
//	  "request_timeout": "10s",
//	  "log_level": "warn"
//	}
package config
