// Package session keeps one dashboard controller per browser session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docdash/internal/dashboard"
)

// Header carries the session id on dashboard requests.
const Header = "X-Session-ID"

// Factory builds the controller of a new session.
type Factory func() *dashboard.Controller

type entry struct {
	ctrl     *dashboard.Controller
	lastSeen time.Time
}

// Store maps session ids to controllers and forgets sessions idle for longer than ttl.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	newCtrl Factory
	now     func() time.Time
	log     *zap.Logger
}

// NewStore returns an empty store. A non-positive ttl keeps sessions forever.
func NewStore(ttl time.Duration, factory Factory, log *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		newCtrl: factory,
		now:     time.Now,
		log:     log.Named("session"),
	}
}

// Get returns the controller of id. An empty or unknown id starts a new session under a
// freshly minted id; clients never choose their own. The returned id is the one the
// caller must send back.
func (s *Store) Get(id string) (string, *dashboard.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[id]; ok {
		e.lastSeen = now
		return id, e.ctrl
	}
	id = uuid.NewString()
	e := &entry{ctrl: s.newCtrl(), lastSeen: now}
	s.entries[id] = e
	s.log.Debug("session created", zap.String("session_id", id))
	return id, e.ctrl
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("idle sessions swept", zap.Int("removed", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
