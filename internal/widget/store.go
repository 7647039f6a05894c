package widget

import (
	"container/list"
	"log/slog"
	"sync"
	"time"

	"skycast/internal/lookup"

	"github.com/google/uuid"
)

// Store keeps one widget per browser session in memory
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*list.Element
	// order holds *session values, most recently seen at the front
	order       *list.List
	ttl         time.Duration
	maxSessions int
	service     lookup.Service
	logger      *slog.Logger
	now         func() time.Time
}

type session struct {
	id       uuid.UUID
	widget   *Widget
	lastSeen time.Time
}

// NewStore creates a session store. Sessions idle for longer than ttl are
// dropped by Sweep; a ttl of zero keeps them forever. Once maxSessions are
// live, starting a new one evicts the least recently seen; zero means no cap.
func NewStore(service lookup.Service, ttl time.Duration, maxSessions int, logger *slog.Logger) *Store {
	return &Store{
		sessions:    make(map[uuid.UUID]*list.Element),
		order:       list.New(),
		ttl:         ttl,
		maxSessions: maxSessions,
		service:     service,
		logger:      logger.With("component", "widget-store"),
		now:         time.Now,
	}
}

// GetOrCreate returns the widget for id, starting a new session when id is
// unknown, malformed or expired. The returned id is the one to hand back to the client.
func (s *Store) GetOrCreate(id string) (uuid.UUID, *Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if parsed, err := uuid.Parse(id); err == nil {
		if elem, ok := s.sessions[parsed]; ok {
			sess := elem.Value.(*session)
			if !s.expired(sess, now) {
				sess.lastSeen = now
				s.order.MoveToFront(elem)
				return parsed, sess.widget
			}
			s.removeLocked(elem)
		}
	}

	if s.maxSessions > 0 {
		for s.order.Len() >= s.maxSessions {
			oldest := s.order.Back()
			s.logger.Debug("evicting widget session at capacity",
				"session_id", oldest.Value.(*session).id.String(),
				"max_sessions", s.maxSessions,
			)
			s.removeLocked(oldest)
		}
	}

	sess := &session{id: uuid.New(), widget: New(s.service, s.logger), lastSeen: now}
	s.sessions[sess.id] = s.order.PushFront(sess)
	s.logger.Debug("widget session created", "session_id", sess.id.String(), "sessions", len(s.sessions))
	return sess.id, sess.widget
}

// Sweep removes expired sessions and returns how many were dropped
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	// oldest sessions sit at the back, stop at the first live one
	for elem := s.order.Back(); elem != nil; elem = s.order.Back() {
		if !s.expired(elem.Value.(*session), now) {
			break
		}
		s.removeLocked(elem)
		removed++
	}
	return removed
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) removeLocked(elem *list.Element) {
	sess := s.order.Remove(elem).(*session)
	delete(s.sessions, sess.id)
}

func (s *Store) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
