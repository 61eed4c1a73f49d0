package engine

import (
	"context"
	"errors"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/gate"
	"github.com/velvetpath/narrative-engine/internal/mission"
)

// #region errors

// Contract violations surface as typed errors the transport layer maps
// to status codes. Denials and failed missions are ordinary results,
// not errors.
var (
	// ErrStalePosition means the submitted fragment is not the user's
	// current position.
	ErrStalePosition = errors.New("stale position")
	// ErrUnknownChoice means the choice id is not an edge of the
	// submitted fragment.
	ErrUnknownChoice = errors.New("unknown choice")
	// ErrMissionPending means a choice arrived while a mission is
	// still unresolved.
	ErrMissionPending = errors.New("mission pending")
	// ErrNoPendingMission means a mission submission arrived with no
	// admitted transition waiting on one.
	ErrNoPendingMission = errors.New("no pending mission")
)

// #endregion errors

// #region collaborators

// Ledger is the external rewards collaborator. Credits are delegated,
// never tracked here.
type Ledger interface {
	Credit(ctx context.Context, userID string, amount int) error
}

// TierSource resolves a user's subscription tier. The tier is read-only
// to this engine.
type TierSource interface {
	TierOf(ctx context.Context, userID string) (fragment.Tier, error)
}

// #endregion collaborators

// #region config

// Config holds engine tuning knobs.
type Config struct {
	// MaxMissionAttempts bounds re-attempts per fragment mission.
	// Zero means unlimited.
	MaxMissionAttempts int
}

// #endregion config

// #region results

// ChoiceResult reports what a choice submission did.
type ChoiceResult struct {
	Advanced    bool
	NewFragment *fragment.Fragment
	// AwaitingMission is set when the gate admitted the transition but
	// the target's mission must be passed before entry.
	AwaitingMission bool
	DenialReason    gate.DenialReason
	DenialDetail    string
}

// MissionResult reports a mission submission's evaluation and any
// advancement it unlocked.
type MissionResult struct {
	Passed      bool
	Attempt     mission.Attempt
	Advanced    bool
	NewFragment *fragment.Fragment
	// AttemptsExhausted is set when the configured attempt limit is
	// reached; the user falls back to their current position.
	AttemptsExhausted bool
}

// #endregion results
