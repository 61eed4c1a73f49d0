package gate

// #region denial-reason

// DenialReason enumerates why entry into a fragment was refused. Denials
// are expected outcomes, not faults; the presentation layer maps them to
// user-facing messaging.
type DenialReason string

const (
	DenialInsufficientTier DenialReason = "insufficient_tier"
	DenialMissingClue      DenialReason = "missing_clue"
	DenialMissionPending   DenialReason = "mission_pending"
)

// #endregion denial-reason

// #region decision

// Decision is the output of a gate check.
type Decision struct {
	Allowed bool
	Reason  DenialReason // empty when allowed
	// Detail names the specific tier or clue behind a denial.
	Detail string
}

// Allowed is the decision for a passing check.
func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason DenialReason, detail string) Decision {
	return Decision{Allowed: false, Reason: reason, Detail: detail}
}

// #endregion decision
