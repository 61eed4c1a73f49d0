package fragment

import "time"

// #region tier

// Tier is an ordered access level gating which fragments a user may enter.
type Tier string

const (
	TierOpen    Tier = "open"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
)

// tierRanks maps each tier to its position in the access ordering.
var tierRanks = map[Tier]int{
	TierOpen:    0,
	TierMid:     1,
	TierPremium: 2,
}

// Rank returns the tier's position in the access ordering. Unknown tiers rank below open.
func (t Tier) Rank() int {
	if r, ok := tierRanks[t]; ok {
		return r
	}
	return -1
}

// Covers reports whether a user at tier t may enter content at tier other.
func (t Tier) Covers(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// #endregion tier

// #region mission-kind

// MissionKind identifies the validation rule attached to a mission.
type MissionKind string

const (
	MissionObservation   MissionKind = "observation"
	MissionComprehension MissionKind = "comprehension"
	MissionSynthesis     MissionKind = "synthesis"
)

// Valid reports whether k is one of the known mission kinds.
func (k MissionKind) Valid() bool {
	switch k {
	case MissionObservation, MissionComprehension, MissionSynthesis:
		return true
	}
	return false
}

// #endregion mission-kind

// #region choice

// Choice is a labeled edge from one fragment to another.
// RequiredClues must all be unlocked before the edge can be taken.
type Choice struct {
	ID            string   `json:"id" yaml:"id"`
	Label         string   `json:"label" yaml:"label"`
	DestinationID string   `json:"destination_id" yaml:"destination_id"`
	RequiredClues []string `json:"required_clues,omitempty" yaml:"required_clues,omitempty"`
}

// #endregion choice

// #region trigger

// Trigger declares side effects applied when a fragment is entered.
type Trigger struct {
	UnlockClue   string `json:"unlock_clue,omitempty" yaml:"unlock_clue,omitempty"`
	CreditAmount int    `json:"credit_amount,omitempty" yaml:"credit_amount,omitempty"`
}

// #endregion trigger

// #region mission

// Mission is an optional requirement that must be satisfied before
// advancing past a fragment.
type Mission struct {
	Kind          MissionKind `json:"kind" yaml:"kind"`
	PassThreshold int         `json:"pass_threshold" yaml:"pass_threshold"`
	// HiddenElement is the designated element an observation submission
	// must reference. Ignored for other kinds.
	HiddenElement string `json:"hidden_element,omitempty" yaml:"hidden_element,omitempty"`
	// Keywords drive comprehension coverage and synthesis integration scoring.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	// Prerequisites are fragment IDs that must already be completed before
	// a synthesis submission is scored.
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	// WindowHours bounds observation submissions relative to fragment entry.
	// Zero means the configured default applies.
	WindowHours int `json:"window_hours,omitempty" yaml:"window_hours,omitempty"`
}

// #endregion mission

// #region fragment

// Fragment is a node of narrative content with outgoing choices and
// optional gating requirements. Content is immutable once published;
// new versions are new IDs.
type Fragment struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	SequenceLevel int       `json:"sequence_level" yaml:"sequence_level"`
	Tier          Tier      `json:"tier" yaml:"tier"`
	Content       string    `json:"content" yaml:"content"`
	Choices       []Choice  `json:"choices,omitempty" yaml:"choices,omitempty"`
	Triggers      []Trigger `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Mission       *Mission  `json:"mission,omitempty" yaml:"mission,omitempty"`
	Active        bool      `json:"active" yaml:"active"`
	CreatedAt     time.Time `json:"created_at,omitempty" yaml:"-"`
}

// ChoiceByID returns the choice with the given ID, or false when absent.
func (f Fragment) ChoiceByID(id string) (Choice, bool) {
	for _, c := range f.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// HasMission reports whether the fragment carries a mission requirement.
func (f Fragment) HasMission() bool {
	return f.Mission != nil
}

// #endregion fragment
