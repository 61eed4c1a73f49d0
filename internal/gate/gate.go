// Package gate decides whether a user may enter a fragment. The gate is
// stateless and side-effect-free: it only reads the inputs it is handed,
// so identical inputs always produce identical decisions.
package gate

import (
	"fmt"

	"github.com/velvetpath/narrative-engine/internal/fragment"
)

// #region gate

// Gate evaluates entry eligibility with short-circuit ordered checks.
type Gate struct{}

// NewGate returns a Gate.
func NewGate() *Gate {
	return &Gate{}
}

// CanEnter runs the ordered checks; the first failing check wins.
//
//  1. subscription: the target fragment's tier must be covered by the
//     user's tier
//  2. clues: every clue the chosen edge requires must be unlocked
//  3. mission: a fragment with a mission needs a passing attempt
//
// userTier is the externally sourced subscription tier; unlockedClues is
// the user's append-only clue set; missionPassed reports whether the user
// already has a passing attempt for the target fragment.
func (g *Gate) CanEnter(
	userTier fragment.Tier,
	unlockedClues map[string]bool,
	choice fragment.Choice,
	target fragment.Fragment,
	missionPassed bool,
) Decision {
	if !userTier.Covers(target.Tier) {
		return denied(DenialInsufficientTier,
			fmt.Sprintf("fragment requires tier %s, user has %s", target.Tier, userTier))
	}

	for _, clue := range choice.RequiredClues {
		if !unlockedClues[clue] {
			return denied(DenialMissingClue, fmt.Sprintf("clue %s not unlocked", clue))
		}
	}

	if target.HasMission() && !missionPassed {
		return denied(DenialMissionPending,
			fmt.Sprintf("%s mission must be passed first", target.Mission.Kind))
	}

	return allowed()
}

// #endregion gate
