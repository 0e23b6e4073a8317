package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhisek/mentora/internal/store"
)

// Registry is the in-memory table of active sessions, keyed by the
// composite "userID_topicID" string. All turn handling for one key runs
// under that key's lock, so concurrent turns serialize instead of
// interleaving writes to the session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	locks    map[string]*sync.Mutex
	progress store.ProgressRepo
}

// NewRegistry creates an empty registry. The progress repo is used by
// SweepInactive to mark abandoned sessions in persistence.
func NewRegistry(progress store.ProgressRepo) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		locks:    make(map[string]*sync.Mutex),
		progress: progress,
	}
}

func sessionKey(userID, topicID string) string {
	return userID + "_" + topicID
}

// Get returns the active session for the key, or nil.
func (r *Registry) Get(userID, topicID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionKey(userID, topicID)]
}

// Put registers a session, replacing any existing one for the same key.
func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionKey(s.UserID, s.TopicID)] = s
}

// Remove drops the session for the key. Removing an absent key is a no-op.
func (r *Registry) Remove(userID, topicID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionKey(userID, topicID))
}

// LockKey acquires the per-key turn lock and returns its unlock func.
// The lock outlives the session so a turn racing a removal still
// serializes correctly.
func (r *Registry) LockKey(userID, topicID string) func() {
	key := sessionKey(userID, topicID)

	r.mu.Lock()
	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SweepInactive removes every session idle longer than maxIdle, asking
// persistence to mark each one inactive first. The sweep does not
// schedule itself; run it from a ticker (see Sweeper).
//
// Staleness is re-checked under the key lock: a turn that completes
// while the sweep waits for the lock refreshes LastActivity, and the
// sweep must not evict that session. Lock entries are never deleted;
// a waiter blocked on one must wake holding the same mutex any later
// caller gets.
func (r *Registry) SweepInactive(ctx context.Context, maxIdle time.Duration) error {
	r.mu.Lock()
	var candidates []*Session
	now := time.Now()
	for _, s := range r.sessions {
		if now.Sub(s.LastActivity) > maxIdle {
			candidates = append(candidates, s)
		}
	}
	r.mu.Unlock()

	var errs []error
	for _, c := range candidates {
		unlock := r.LockKey(c.UserID, c.TopicID)

		s := r.Get(c.UserID, c.TopicID)
		if s == nil || time.Since(s.LastActivity) <= maxIdle {
			unlock()
			continue
		}

		if err := r.progress.MarkSessionInactive(ctx, s.UserID, s.TopicID); err != nil {
			errs = append(errs, err)
		}
		r.Remove(s.UserID, s.TopicID)

		unlock()
	}
	return errors.Join(errs...)
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweeper runs SweepInactive on a fixed interval, for embedding the
// registry in a long-lived process.
type Sweeper struct {
	Registry *Registry
	Interval time.Duration
	MaxIdle  time.Duration
}

// Run blocks, sweeping every interval until ctx is done.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = w.Registry.SweepInactive(ctx, w.MaxIdle)
		}
	}
}
