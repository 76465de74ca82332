package session

import (
	"errors"
	"log/slog"

	"github.com/couchcryptid/worldtrotter-service/internal/cache"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ErrSessionNotFound is returned for an unknown or evicted session id.
var ErrSessionNotFound = errors.New("session not found")

// Store holds live sessions, evicting the least recently used one when full.
type Store struct {
	sessions  *cache.LRU[*Session]
	locations []domain.Location
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewStore creates a store for at most capacity sessions. Every session's map
// shows locations.
func NewStore(capacity int, locations []domain.Location, metrics *observability.Metrics, logger *slog.Logger) *Store {
	s := &Store{
		locations: locations,
		metrics:   metrics,
		logger:    logger,
	}
	s.sessions = cache.NewLRU(capacity, s.evicted)
	return s
}

// Create starts a new session for the given locale.
func (s *Store) Create(tag language.Tag) *Session {
	locs := make([]domain.Location, len(s.locations))
	copy(locs, s.locations)

	sess := newSession(uuid.NewString(), tag, locs)
	s.sessions.Put(sess.ID, sess)
	s.metrics.SessionsCreated.Inc()
	s.logger.Debug("session created", "session_id", sess.ID, "locale", tag.String())
	return sess
}

// Get looks up a session by id.
func (s *Store) Get(id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

func (s *Store) evicted(id string, _ *Session) {
	s.metrics.SessionsEvicted.Inc()
	s.logger.Debug("session evicted", "session_id", id)
}
