package client

import (
	"context"
	"math/big"
	"time"
)

// Session is what the verifier hands back after a successful proof.
type Session struct {
	ID          string
	AccessToken string
}

// Identity describes the session the server currently associates with us.
type Identity struct {
	User      string
	SessionID string
	ExpiresAt time.Time
}

type Client interface {
	Close() error
	Register(ctx context.Context, user string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error)
	VerifyAnswer(ctx context.Context, authID string, s *big.Int) (*Session, error)
	WhoAmI(ctx context.Context) (*Identity, error)
	SetSessionToken(token string)
}
