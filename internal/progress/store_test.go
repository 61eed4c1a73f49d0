package progress

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/mission"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetUnknownUser(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetOrCreateIsLazy(t *testing.T) {
	s := newTestStore(t)

	st, err := s.GetOrCreate("u1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if st.Status != StatusIdle || st.CurrentFragmentID != "" {
		t.Fatalf("fresh state not idle at origin: %+v", st)
	}

	again, err := s.Get("u1")
	if err != nil {
		t.Fatalf("Get after create: %v", err)
	}
	if again.UserID != "u1" {
		t.Fatalf("wrong user: %s", again.UserID)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s := newTestStore(t)

	st, _ := s.GetOrCreate("u1")
	st.CurrentFragmentID = "f1"
	st.Status = StatusAwaitingMission
	st.PendingFragmentID = "f2"
	st.PendingChoiceID = "c1"
	st.PendingSince = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st.Unlock("clue-raven")
	st.Complete("f0")
	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get("u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusAwaitingMission || got.PendingFragmentID != "f2" || got.PendingChoiceID != "c1" {
		t.Fatalf("pending fields lost: %+v", got)
	}
	if !got.PendingSince.Equal(st.PendingSince) {
		t.Fatalf("pending_since mismatch: %v", got.PendingSince)
	}
	if !got.UnlockedClues["clue-raven"] || !got.CompletedFragments["f0"] {
		t.Fatalf("sets lost: %+v", got)
	}
}

func TestAttemptsAppendOnly(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, passed := range []bool{false, false, true} {
		att := mission.Attempt{
			ID:          uuid.New().String(),
			FragmentID:  "f2",
			Kind:        fragment.MissionComprehension,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
			Score:       60 + i*10,
			Passed:      passed,
		}
		if err := s.AppendAttempt("u1", att); err != nil {
			t.Fatalf("AppendAttempt: %v", err)
		}
	}

	atts, err := s.Attempts("u1", "f2")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(atts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(atts))
	}
	if atts[0].Passed || !atts[2].Passed {
		t.Fatalf("ordering wrong: %+v", atts)
	}

	n, err := s.AttemptCount("u1", "f2")
	if err != nil || n != 3 {
		t.Fatalf("AttemptCount = %d, %v", n, err)
	}

	passed, err := s.HasPassed("u1", "f2")
	if err != nil || !passed {
		t.Fatalf("HasPassed = %v, %v", passed, err)
	}
	passed, err = s.HasPassed("u1", "f9")
	if err != nil || passed {
		t.Fatalf("HasPassed for untouched fragment = %v, %v", passed, err)
	}
}

func TestResetPreservesAttempts(t *testing.T) {
	s := newTestStore(t)

	st, _ := s.GetOrCreate("u1")
	st.CurrentFragmentID = "f3"
	st.Unlock("c1")
	st.Complete("f1")
	if err := s.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	att := mission.Attempt{
		ID: uuid.New().String(), FragmentID: "f3",
		Kind: fragment.MissionObservation, SubmittedAt: time.Now().UTC(),
		Score: 80, Passed: true,
	}
	if err := s.AppendAttempt("u1", att); err != nil {
		t.Fatalf("AppendAttempt: %v", err)
	}

	if err := s.Reset("u1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, _ := s.Get("u1")
	if got.CurrentFragmentID != "" || len(got.UnlockedClues) != 0 || len(got.CompletedFragments) != 0 {
		t.Fatalf("reset did not clear state: %+v", got)
	}
	n, _ := s.AttemptCount("u1", "f3")
	if n != 1 {
		t.Fatalf("attempt history lost on reset: %d", n)
	}
}

func TestPerUserLockSerializes(t *testing.T) {
	s := newTestStore(t)

	// The unguarded counter is safe only if Lock actually serializes.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("u1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	if counter != 16 {
		t.Fatalf("expected 16 critical sections, got %d", counter)
	}
}

func TestLockDistinctUsersIndependent(t *testing.T) {
	s := newTestStore(t)

	unlockA := s.Lock("a")
	// Lock for a different user must not block while a's lock is held.
	done := make(chan struct{})
	go func() {
		unlockB := s.Lock("b")
		unlockB()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock for user b blocked on user a's lock")
	}
	unlockA()
}
