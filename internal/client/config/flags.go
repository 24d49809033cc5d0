package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// ValueFlags are the client flags that take a value. The CLI uses the list
// to tell flag values apart from the subcommand.
var ValueFlags = []string{"-a", "-u", "-i", "-x", "-l"}

// parseFlags populates Config fields from command-line flags:
//
//	-a string   address and port of the verifier
//	-u string   user id
//	-i int      per-request timeout in seconds
//	-x string   secret exponent as hex (skips the passphrase prompt)
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], ValueFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.User, "u", cfg.User, "user id")
	flagx.SecondsVar(fs, &cfg.RequestTimeout, "i", "request timeout (in seconds)")
	fs.StringVar(&cfg.SecretHex, "x", cfg.SecretHex, "secret exponent (hex)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
