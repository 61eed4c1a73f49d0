package audit

import "time"

// #region outcome

// Outcome classifies what a progression turn did.
type Outcome string

const (
	OutcomeAdvanced        Outcome = "advanced"
	OutcomeDenied          Outcome = "denied"
	OutcomeAwaitingMission Outcome = "awaiting_mission"
	OutcomeMissionPassed   Outcome = "mission_passed"
	OutcomeMissionFailed   Outcome = "mission_failed"
	OutcomeReset           Outcome = "reset"
)

// #endregion outcome

// #region entry

// Entry is a single row in the decision_log table. The trail is
// append-only; soft resets add a row rather than removing any.
type Entry struct {
	UserID string
	// FromFragmentID is the position the choice was submitted from;
	// FragmentID is the transition target (or the fragment acted on).
	FromFragmentID string
	FragmentID     string
	ChoiceID       string
	ChoiceLabel    string
	Outcome        Outcome
	// Reason carries the denial reason or mission failure detail.
	Reason         string
	CreditsAwarded int
	CluesUnlocked  []string
	CreatedAt      time.Time
}

// #endregion entry
