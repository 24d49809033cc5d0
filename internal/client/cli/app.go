package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"slices"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/prover"
	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/randx"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// SessionTokenEnv lets a one-shot whoami reuse the token printed by login.
const SessionTokenEnv = "ZKPAUTH_SESSION_TOKEN"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoUser         = errors.New("user id is required")
	ErrNotLoggedIn    = errors.New("not logged in")
)

var commands = []string{"register", "login", "whoami"}

type App struct {
	config *config.Config
	client client.Client
	prover *prover.Prover
	logger logging.Logger

	in  *bufio.Reader
	out io.Writer

	user    string
	session *client.Session
}

// NewApp connects to the configured verifier.
func NewApp(cfg *config.Config) (*App, error) {
	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.ServerEndpointAddr, err)
	}
	logger := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)
	return newApp(cfg, c, logger, os.Stdin, os.Stdout), nil
}

func newApp(cfg *config.Config, c client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		client: c,
		prover: prover.New(c, randx.NewCryptoSource(), logger),
		logger: logger,
		in:     bufio.NewReader(in),
		out:    out,
		user:   cfg.User,
	}
}

// Close releases the connection.
func (a *App) Close() error {
	return a.client.Close()
}

// Run executes the subcommand found in args, or the interactive loop when
// there is none.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, err := parseCommand(args)
	if err != nil {
		return err
	}
	if cmd == "" {
		a.Root(ctx)
		return nil
	}
	if cmd == "whoami" && a.session == nil {
		if token := os.Getenv(SessionTokenEnv); token != "" {
			a.client.SetSessionToken(token)
			a.session = &client.Session{AccessToken: token}
		}
	}
	return a.exec(ctx, cmd)
}

func (a *App) exec(ctx context.Context, cmd string) error {
	switch cmd {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "whoami":
		return a.whoami(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// parseCommand returns the first positional argument, skipping flags and
// their values. Extra positionals are an error.
func parseCommand(args []string) (string, error) {
	valueFlags := append([]string{"-c", "-config"}, config.ValueFlags...)

	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if slices.Contains(valueFlags, arg) {
			i++
			continue
		}
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		positional = append(positional, arg)
	}

	switch len(positional) {
	case 0:
		return "", nil
	case 1:
		if !slices.Contains(commands, positional[0]) {
			return "", fmt.Errorf("%w: %s", ErrUnknownCommand, positional[0])
		}
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownCommand, positional)
	}
}

func (a *App) resolveUser() (string, error) {
	if a.user != "" {
		return a.user, nil
	}
	user, err := GetSimpleText(a.in, "User id", a.out)
	if err != nil {
		return "", err
	}
	if user == "" {
		return "", ErrNoUser
	}
	a.user = user
	return user, nil
}

func (a *App) secret(user string) (*big.Int, error) {
	if a.config.SecretHex != "" {
		x, err := zkp.ParseHex(a.config.SecretHex)
		if err != nil {
			return nil, fmt.Errorf("-x: %w", err)
		}
		return x, nil
	}

	pw, err := GetPassphrase(a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)

	if len(pw) == 0 {
		return nil, prover.ErrEmptySecret
	}
	return cryptox.DeriveSecret(pw, user), nil
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
