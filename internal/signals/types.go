package signals

import "time"

// #region input

// Input bundles the raw facts available when a user interaction completes.
type Input struct {
	UserID      string
	FragmentID  string
	// ResponseText is the user's free-text payload, empty for plain
	// choice taps.
	ResponseText string
	// EnteredAt is when the user entered the fragment; SubmittedAt is
	// when the interaction arrived. Their difference buckets latency.
	EnteredAt   time.Time
	SubmittedAt time.Time
	// Revisit is set when the destination was already completed.
	Revisit bool
	// AttemptCount counts mission attempts on this fragment, this one
	// included. Zero for interactions without a mission.
	AttemptCount int
}

// #endregion input
