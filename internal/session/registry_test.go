package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mentora/internal/store"
)

func activeSession(userID, topicID string, lastActivity time.Time) *Session {
	return &Session{
		UserID:       userID,
		TopicID:      topicID,
		Topic:        &store.Topic{ID: topicID, Title: topicID},
		LastActivity: lastActivity,
		Status:       StatusActive,
	}
}

func TestRegistry_PutGetRemove(t *testing.T) {
	m := newMemStore()
	r := NewRegistry(m)

	if got := r.Get("u1", "t1"); got != nil {
		t.Fatalf("Get on empty registry = %v, want nil", got)
	}

	s := activeSession("u1", "t1", time.Now())
	r.Put(s)

	if got := r.Get("u1", "t1"); got != s {
		t.Fatal("Get did not return the stored session")
	}
	if got := r.Get("u1", "t2"); got != nil {
		t.Fatal("Get with different topic returned a session")
	}

	r.Remove("u1", "t1")
	if got := r.Get("u1", "t1"); got != nil {
		t.Fatal("session still present after Remove")
	}

	// Removing again is a no-op.
	r.Remove("u1", "t1")
}

func TestRegistry_SweepInactive(t *testing.T) {
	m := newMemStore()
	m.progress["u1_t1"] = &store.GoalProgress{UserID: "u1", TopicID: "t1", SessionActive: true}
	r := NewRegistry(m)

	r.Put(activeSession("u1", "t1", time.Now().Add(-time.Hour)))
	r.Put(activeSession("u2", "t1", time.Now()))

	if err := r.SweepInactive(context.Background(), 30*time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.Get("u1", "t1"); got != nil {
		t.Error("stale session not removed")
	}
	if got := r.Get("u2", "t1"); got == nil {
		t.Error("fresh session removed")
	}
	if m.progress["u1_t1"].SessionActive {
		t.Error("stale session not marked inactive in persistence")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistry_SweepSkipsSessionRefreshedWhileWaiting(t *testing.T) {
	m := newMemStore()
	r := NewRegistry(m)

	s := activeSession("u1", "t1", time.Now().Add(-time.Hour))
	r.Put(s)

	// Hold the key lock like an in-flight turn, then start the sweep so
	// it blocks waiting for us.
	unlock := r.LockKey("u1", "t1")

	swept := make(chan error, 1)
	go func() {
		swept <- r.SweepInactive(context.Background(), 30*time.Minute)
	}()

	// Give the sweep time to snapshot the stale session and park on the
	// lock, then finish the "turn" by refreshing activity.
	time.Sleep(20 * time.Millisecond)
	s.LastActivity = time.Now()
	unlock()

	if err := <-swept; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Get("u1", "t1"); got == nil {
		t.Fatal("session refreshed during the sweep was evicted")
	}
}

func TestRegistry_SweepKeepsLockEntry(t *testing.T) {
	m := newMemStore()
	r := NewRegistry(m)
	r.Put(activeSession("u1", "t1", time.Now().Add(-time.Hour)))

	unlock := r.LockKey("u1", "t1")
	before := r.locks[sessionKey("u1", "t1")]
	unlock()

	if err := r.SweepInactive(context.Background(), 30*time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Get("u1", "t1") != nil {
		t.Fatal("stale session not removed")
	}

	// Anyone already parked on the key's mutex must wake holding the same
	// mutex later callers get, so eviction must not mint a replacement.
	if after := r.locks[sessionKey("u1", "t1")]; after != before {
		t.Fatal("sweep replaced the key's lock entry")
	}
}

func TestRegistry_LockKeySerializes(t *testing.T) {
	m := newMemStore()
	r := NewRegistry(m)
	r.Put(activeSession("u1", "t1", time.Now()))

	const turns = 50
	done := make(chan struct{})
	counter := 0

	for i := 0; i < turns; i++ {
		go func() {
			unlock := r.LockKey("u1", "t1")
			counter++
			unlock()
			done <- struct{}{}
		}()
	}
	for i := 0; i < turns; i++ {
		<-done
	}

	if counter != turns {
		t.Errorf("counter = %d, want %d (turns must serialize)", counter, turns)
	}
}
