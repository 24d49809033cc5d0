// Package services contains the verifier's business logic. AuthService runs
// the register / challenge / verify exchange on top of the proof primitives
// in zkp and the ephemeral store.
package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/group"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/randx"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/server/store"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// SessionGrant is what a successful proof buys the prover.
type SessionGrant struct {
	SessionID   string
	UserID      string
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService binds the proof protocol to the store. It holds no locks of
// its own; concurrent requests are serialised only inside the store.
type AuthService struct {
	store          store.Store
	rand           randx.Source
	jwtSecret      []byte
	sessionTTL     time.Duration
	strictElements bool
	now            func() time.Time
	log            logging.Logger
}

// NewAuthService constructs an AuthService from the server config.
func NewAuthService(st store.Store, src randx.Source, cfg *config.Config, log logging.Logger) *AuthService {
	return &AuthService{
		store:          st,
		rand:           src,
		jwtSecret:      []byte(cfg.SecretKey),
		sessionTTL:     cfg.SessionTTL,
		strictElements: cfg.StrictElements,
		now:            time.Now,
		log:            log.With("module", "auth"),
	}
}

// Register stores (or replaces) the public commitments of userID.
func (s *AuthService) Register(ctx context.Context, userID, y1Hex, y2Hex string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user", common.ErrInvalidInput)
	}

	y1, err := s.parseElement("y1", y1Hex)
	if err != nil {
		return err
	}
	y2, err := s.parseElement("y2", y2Hex)
	if err != nil {
		return err
	}

	if err := s.store.InsertUser(ctx, &models.User{ID: userID, Y1: y1, Y2: y2}); err != nil {
		return fmt.Errorf("%w: storing user: %v", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "user registered", "user", userID)
	return nil
}

// CreateChallenge records the prover's commitments and answers with a fresh
// challenge c in [2, q-2) under a new auth id.
func (s *AuthService) CreateChallenge(ctx context.Context, userID, r1Hex, r2Hex string) (string, *big.Int, error) {
	if userID == "" {
		return "", nil, fmt.Errorf("%w: empty user", common.ErrInvalidInput)
	}

	r1, err := s.parseElement("r1", r1Hex)
	if err != nil {
		return "", nil, err
	}
	r2, err := s.parseElement("r2", r2Hex)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.lookupUser(ctx, userID); err != nil {
		return "", nil, err
	}

	c, err := zkp.NewChallenge(s.rand)
	if err != nil {
		return "", nil, fmt.Errorf("%w: drawing challenge: %v", common.ErrorInternal, err)
	}

	challenge := &models.Challenge{
		ID:     uuid.NewString(),
		UserID: userID,
		C:      c,
		R1:     r1,
		R2:     r2,
	}
	if err := s.store.InsertChallenge(ctx, challenge); err != nil {
		return "", nil, fmt.Errorf("%w: storing challenge: %v", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "challenge issued", "user", userID, "auth_id", challenge.ID)
	s.log.Debug(ctx, "challenge value", "auth_id", challenge.ID, "c", zkp.FormatHex(c))

	return challenge.ID, new(big.Int).Set(c), nil
}

// VerifyAnswer checks s against the challenge stored under authID and, on
// success, opens a session. A failed proof stores nothing.
func (s *AuthService) VerifyAnswer(ctx context.Context, authID, sHex string) (*SessionGrant, error) {
	if authID == "" {
		return nil, fmt.Errorf("%w: empty auth id", common.ErrInvalidInput)
	}

	answer, err := zkp.ParseHex(sHex)
	if err != nil {
		return nil, fmt.Errorf("%w: s: %v", common.ErrInvalidInput, err)
	}

	challenge, err := s.store.GetChallenge(ctx, authID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: challenge %q", common.ErrorNotFound, authID)
		}
		return nil, fmt.Errorf("%w: loading challenge: %v", common.ErrorInternal, err)
	}

	user, err := s.lookupUser(ctx, challenge.UserID)
	if err != nil {
		return nil, err
	}

	ok := zkp.Verify(
		zkp.Statement{Y1: user.Y1, Y2: user.Y2},
		zkp.Commitment{R1: challenge.R1, R2: challenge.R2},
		challenge.C, answer,
	)
	if !ok {
		s.log.Warn(ctx, "proof rejected", "user", user.ID, "auth_id", authID)
		return nil, fmt.Errorf("%w: proof rejected", common.ErrPermissionDenied)
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	token, err := auth.GenerateToken(session.ID, session.UserID, s.jwtSecret, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: signing token: %v", common.ErrorInternal, err)
	}

	if err := s.store.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: storing session: %v", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "session opened", "user", user.ID, "session_id", session.ID)

	return &SessionGrant{
		SessionID:   session.ID,
		UserID:      session.UserID,
		AccessToken: token,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// GetSession returns a live session. Expired or unknown ids are NotFound.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: session %q", common.ErrorNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: loading session: %v", common.ErrorInternal, err)
	}
	if session.Expired(s.now()) {
		return nil, fmt.Errorf("%w: session %q", common.ErrorNotFound, sessionID)
	}
	return session, nil
}

// Authenticate resolves an access token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	session, err := s.GetSession(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID() {
		return nil, common.ErrInvalidToken
	}
	return session, nil
}

func (s *AuthService) lookupUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: user %q is not registered", common.ErrPreconditionFailed, userID)
		}
		return nil, fmt.Errorf("%w: loading user: %v", common.ErrorInternal, err)
	}
	return user, nil
}

func (s *AuthService) parseElement(name, h string) (*big.Int, error) {
	v, err := zkp.ParseHex(h)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, name, err)
	}
	if s.strictElements && !group.IsElement(v) {
		return nil, fmt.Errorf("%w: %s is not a group element", common.ErrInvalidInput, name)
	}
	return v, nil
}
