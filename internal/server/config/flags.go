package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-a string   gRPC bind address (":50051")
//	-s string   session token signing secret
//	-t int      challenge TTL, seconds
//	-r int      session TTL, seconds
//	-l string   log level (debug, info, warn, error)
//	-e bool     reject commitments outside the order-q subgroup
//
// Unknown arguments are filtered out first so -c/-config and client flags
// do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-r", "-l", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret key")
	flagx.SecondsVar(fs, &config.ChallengeTTL, "t", "challenge lifetime (in seconds)")
	flagx.SecondsVar(fs, &config.SessionTTL, "r", "session lifetime (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.StrictElements, "e", config.StrictElements, "strict group element validation")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
