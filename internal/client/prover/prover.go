// Package prover runs the prover side of the protocol against a verifier
// reachable through client.Client.
package prover

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/randx"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

var ErrEmptySecret = errors.New("empty secret")

type Prover struct {
	client client.Client
	rand   randx.Source
	log    logging.Logger
}

func New(c client.Client, src randx.Source, log logging.Logger) *Prover {
	return &Prover{client: c, rand: src, log: log.With("module", "prover")}
}

// Register publishes y1 = g^x and y2 = h^x for user.
func (p *Prover) Register(ctx context.Context, user string, x *big.Int) error {
	if x == nil || x.Sign() == 0 {
		return ErrEmptySecret
	}

	y1, y2 := zkp.Commit(x)
	if err := p.client.Register(ctx, user, y1, y2); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	p.log.Info(ctx, "registered", "user", user)
	return nil
}

// Login proves knowledge of x for user and returns the opened session.
func (p *Prover) Login(ctx context.Context, user string, x *big.Int) (*client.Session, error) {
	if x == nil || x.Sign() == 0 {
		return nil, ErrEmptySecret
	}

	k, err := zkp.NewNonce(p.rand)
	if err != nil {
		return nil, fmt.Errorf("drawing nonce: %w", err)
	}
	r1, r2 := zkp.Commit(k)

	authID, c, err := p.client.CreateChallenge(ctx, user, r1, r2)
	if err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}
	p.log.Debug(ctx, "challenge received", "auth_id", authID)

	s := zkp.Respond(c, k, x)
	k.SetInt64(0)

	session, err := p.client.VerifyAnswer(ctx, authID, s)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	p.log.Info(ctx, "logged in", "user", user, "session_id", session.ID)
	return session, nil
}
