// Package store keeps the verifier's ephemeral state: registered users,
// pending challenges and live sessions. Nothing survives a restart.
package store

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// Store is the verifier's state. Inserts overwrite; Get* return
// common.ErrorNotFound for absent or expired keys. Implementations are safe
// for concurrent use.
type Store interface {
	InsertUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)

	InsertChallenge(ctx context.Context, challenge *models.Challenge) error
	GetChallenge(ctx context.Context, id string) (*models.Challenge, error)

	InsertSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
}
