package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// DefaultCleanupInterval is how often Run sweeps expired entries.
const DefaultCleanupInterval = time.Second

// TTLStore is a Store over three ttlcache caches. Users never expire;
// challenges and sessions live for the configured TTL measured from insert.
// Reads do not extend lifetimes.
type TTLStore struct {
	users      *ttlcache.Cache[string, *models.User]
	challenges *ttlcache.Cache[string, *models.Challenge]
	sessions   *ttlcache.Cache[string, *models.Session]

	cleanupInterval time.Duration
	log             logging.Logger
}

// Sizes is a snapshot of live (unexpired) entry counts.
type Sizes struct {
	Users      int
	Challenges int
	Sessions   int
}

func NewTTLStore(challengeTTL, sessionTTL time.Duration, log logging.Logger) *TTLStore {
	s := &TTLStore{
		users: ttlcache.New[string, *models.User](
			ttlcache.WithDisableTouchOnHit[string, *models.User](),
		),
		challenges: ttlcache.New[string, *models.Challenge](
			ttlcache.WithTTL[string, *models.Challenge](challengeTTL),
			ttlcache.WithDisableTouchOnHit[string, *models.Challenge](),
		),
		sessions: ttlcache.New[string, *models.Session](
			ttlcache.WithTTL[string, *models.Session](sessionTTL),
			ttlcache.WithDisableTouchOnHit[string, *models.Session](),
		),
		cleanupInterval: DefaultCleanupInterval,
		log:             log.With("module", "store"),
	}

	s.challenges.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *models.Challenge]) {
		if reason == ttlcache.EvictionReasonExpired {
			s.log.Debug(ctx, "challenge expired", "auth_id", item.Key(), "user", item.Value().UserID)
		}
	})
	s.sessions.OnEviction(func(ctx context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *models.Session]) {
		if reason == ttlcache.EvictionReasonExpired {
			s.log.Debug(ctx, "session expired", "session_id", item.Key(), "user", item.Value().UserID)
		}
	})

	return s
}

func (s *TTLStore) InsertUser(ctx context.Context, user *models.User) error {
	s.users.Set(user.ID, user, ttlcache.NoTTL)
	return nil
}

func (s *TTLStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	item := s.users.Get(id)
	if item == nil {
		return nil, fmt.Errorf("user %q: %w", id, common.ErrorNotFound)
	}
	return item.Value(), nil
}

func (s *TTLStore) InsertChallenge(ctx context.Context, challenge *models.Challenge) error {
	s.challenges.Set(challenge.ID, challenge, ttlcache.DefaultTTL)
	return nil
}

func (s *TTLStore) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	item := s.challenges.Get(id)
	if item == nil {
		return nil, fmt.Errorf("challenge %q: %w", id, common.ErrorNotFound)
	}
	return item.Value(), nil
}

func (s *TTLStore) InsertSession(ctx context.Context, session *models.Session) error {
	s.sessions.Set(session.ID, session, ttlcache.DefaultTTL)
	return nil
}

func (s *TTLStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	item := s.sessions.Get(id)
	if item == nil {
		return nil, fmt.Errorf("session %q: %w", id, common.ErrorNotFound)
	}
	return item.Value(), nil
}

// Len reports current entry counts. Run logs them after every sweep.
func (s *TTLStore) Len() Sizes {
	return Sizes{
		Users:      s.users.Len(),
		Challenges: s.challenges.Len(),
		Sessions:   s.sessions.Len(),
	}
}

// DeleteExpired sweeps expired challenges and sessions.
func (s *TTLStore) DeleteExpired() {
	s.challenges.DeleteExpired()
	s.sessions.DeleteExpired()
}

// Run sweeps expired entries every cleanup interval until ctx is done.
// Expiry is enforced on read regardless, so Run only bounds memory.
func (s *TTLStore) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info(ctx, "store cleanup stopped")
			return nil
		case <-ticker.C:
			s.DeleteExpired()
			sz := s.Len()
			s.log.Debug(ctx, "store swept",
				"users", sz.Users,
				"challenges", sz.Challenges,
				"sessions", sz.Sessions,
			)
		}
	}
}
