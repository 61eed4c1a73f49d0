// Package projection shapes engine state into read-only views for the
// transport layer, and caches the external subscription lookup.
package projection

import (
	"sort"
	"time"

	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/progress"
)

// #region state-view

// StateView is the transport-safe projection of a progression record.
// Sets are flattened to sorted slices so serialized views are stable.
type StateView struct {
	UserID             string    `json:"user_id"`
	Status             string    `json:"status"`
	CurrentFragmentID  string    `json:"current_fragment_id,omitempty"`
	PendingFragmentID  string    `json:"pending_fragment_id,omitempty"`
	UnlockedClues      []string  `json:"unlocked_clues,omitempty"`
	CompletedFragments []string  `json:"completed_fragments,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ViewOfState projects a progression record.
func ViewOfState(st progress.State) StateView {
	return StateView{
		UserID:             st.UserID,
		Status:             string(st.Status),
		CurrentFragmentID:  st.CurrentFragmentID,
		PendingFragmentID:  st.PendingFragmentID,
		UnlockedClues:      sortedKeys(st.UnlockedClues),
		CompletedFragments: sortedKeys(st.CompletedFragments),
		UpdatedAt:          st.UpdatedAt,
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion state-view

// #region profile-view

// ProfileView is the transport-safe projection of an archetype profile.
type ProfileView struct {
	UserID    string             `json:"user_id"`
	Dominant  string             `json:"dominant_archetype"`
	Scores    map[string]float64 `json:"scores"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ViewOfProfile projects an archetype profile. Scores are keyed by
// trait name in a fresh map, so mutating the view never touches the
// profile.
func ViewOfProfile(p archetype.Profile) ProfileView {
	scores := make(map[string]float64, len(p.Scores))
	for trait, v := range p.Scores {
		scores[string(trait)] = v
	}
	return ProfileView{
		UserID:    p.UserID,
		Dominant:  string(p.Dominant),
		Scores:    scores,
		UpdatedAt: p.UpdatedAt,
	}
}

// #endregion profile-view
