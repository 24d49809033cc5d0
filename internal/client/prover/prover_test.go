package prover

import (
	"context"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/randx"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	gs "github.com/dmitrijs2005/zkpauth/internal/server/grpc"
	"github.com/dmitrijs2005/zkpauth/internal/server/services"
	"github.com/dmitrijs2005/zkpauth/internal/server/store"
)

// startVerifier runs a full verifier in-process and returns a connected
// client.
func startVerifier(t *testing.T) *client.GRPCClient {
	t.Helper()

	cfg := &config.Config{SecretKey: "k", ChallengeTTL: time.Minute, SessionTTL: time.Minute, StrictElements: true}
	st := store.NewTTLStore(cfg.ChallengeTTL, cfg.SessionTTL, logging.Nop{})
	svc := services.NewAuthService(st, randx.NewCryptoSource(), cfg, logging.Nop{})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.NewGRPCServer("bufnet", logging.Nop{}, svc).Serve(ctx, lis) }()

	c, err := client.NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func TestProver_RegisterLoginWhoAmI(t *testing.T) {
	ctx := context.Background()
	c := startVerifier(t)
	p := New(c, randx.NewCryptoSource(), logging.Nop{})

	x := cryptox.DeriveSecret([]byte("correct horse"), "dummy")

	require.NoError(t, p.Register(ctx, "dummy", x))

	sess, err := p.Login(ctx, "dummy", x)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, sess.AccessToken)

	id, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dummy", id.User)
	assert.Equal(t, sess.ID, id.SessionID)
}

func TestProver_WrongSecretIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	c := startVerifier(t)
	p := New(c, randx.NewCryptoSource(), logging.Nop{})

	require.NoError(t, p.Register(ctx, "dummy", cryptox.DeriveSecret([]byte("right"), "dummy")))

	_, err := p.Login(ctx, "dummy", cryptox.DeriveSecret([]byte("wrong"), "dummy"))
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = c.WhoAmI(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestProver_UnregisteredUser(t *testing.T) {
	c := startVerifier(t)
	p := New(c, randx.NewCryptoSource(), logging.Nop{})

	_, err := p.Login(context.Background(), "ghost", big.NewInt(7))
	assert.ErrorIs(t, err, client.ErrNotRegistered)
}

func TestProver_EmptyUserRejected(t *testing.T) {
	c := startVerifier(t)
	p := New(c, randx.NewCryptoSource(), logging.Nop{})

	err := p.Register(context.Background(), "", big.NewInt(7))
	assert.ErrorIs(t, err, client.ErrInvalidRequest)
}

func TestProver_EmptySecret(t *testing.T) {
	p := New(nil, randx.NewCryptoSource(), logging.Nop{})

	assert.ErrorIs(t, p.Register(context.Background(), "u", nil), ErrEmptySecret)
	_, err := p.Login(context.Background(), "u", big.NewInt(0))
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestProver_NonceFailure(t *testing.T) {
	// Fixed refuses a value outside [2, q-2).
	p := New(nil, randx.Fixed{Value: big.NewInt(0)}, logging.Nop{})

	_, err := p.Login(context.Background(), "u", big.NewInt(3))
	assert.Error(t, err)
}
