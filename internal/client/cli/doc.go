// Package cli implements the prover command line.
//
// With a subcommand (register, login, whoami) it performs that single step
// and exits. Without one it starts an interactive loop accepting the same
// commands. The secret exponent comes from -x (hex) or is derived from a
// passphrase read without echo.
package cli
