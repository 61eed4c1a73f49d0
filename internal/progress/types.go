package progress

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no progression row exists for a user.
var ErrNotFound = errors.New("progression state not found")

// #region status

// Status is the persisted phase of a user's progression. AwaitingChoice
// and Advancing are transient within a single engine call and never hit
// the store; only the resting phases are persisted.
type Status string

const (
	// StatusIdle means the user is at rest on their current fragment.
	StatusIdle Status = "idle"
	// StatusAwaitingMission means the gate admitted a transition whose
	// target carries a mission; the move completes when a passing
	// attempt is recorded.
	StatusAwaitingMission Status = "awaiting_mission"
)

// #endregion status

// #region state

// State is one user's progression record. Exclusively owned by that
// user's session; the store serializes mutations per user.
type State struct {
	UserID            string
	Status            Status
	CurrentFragmentID string
	// PendingFragmentID is set while Status is AwaitingMission: the
	// admitted target the user has not yet entered.
	PendingFragmentID string
	// PendingChoiceID records which edge was taken, so triggers and
	// audit rows name the right choice once the mission passes.
	PendingChoiceID string
	// PendingSince anchors the observation window for the pending
	// fragment's mission.
	PendingSince       time.Time
	UnlockedClues      map[string]bool
	CompletedFragments map[string]bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewState returns an empty progression record for a first interaction.
func NewState(userID string, now time.Time) State {
	return State{
		UserID:             userID,
		Status:             StatusIdle,
		UnlockedClues:      map[string]bool{},
		CompletedFragments: map[string]bool{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Unlock adds a clue to the append-only clue set.
func (s *State) Unlock(clue string) {
	if s.UnlockedClues == nil {
		s.UnlockedClues = map[string]bool{}
	}
	s.UnlockedClues[clue] = true
}

// Complete adds a fragment to the append-only completion set.
func (s *State) Complete(fragmentID string) {
	if s.CompletedFragments == nil {
		s.CompletedFragments = map[string]bool{}
	}
	s.CompletedFragments[fragmentID] = true
}

// ClearPending resets the mission-wait fields and returns to Idle.
func (s *State) ClearPending() {
	s.Status = StatusIdle
	s.PendingFragmentID = ""
	s.PendingChoiceID = ""
	s.PendingSince = time.Time{}
}

// #endregion state
