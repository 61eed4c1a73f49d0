package mission

import (
	"time"

	"github.com/velvetpath/narrative-engine/internal/fragment"
)

// #region config

// Config holds validator tuning knobs.
type Config struct {
	// ObservationWindow bounds observation submissions relative to
	// fragment entry when the mission does not set its own window.
	ObservationWindow time.Duration
}

// DefaultConfig returns the standard validation windows.
func DefaultConfig() Config {
	return Config{
		ObservationWindow: 72 * time.Hour,
	}
}

// #endregion config

// #region submission

// Submission carries a user's answer to a mission requirement.
type Submission struct {
	Text string
	// ReferencedElements are the explicitly called-out elements in the
	// submission (hidden details, concepts), beyond what the free text
	// mentions.
	ReferencedElements []string
	// Connections name links the user draws across fragments or levels;
	// scored for synthesis.
	Connections []string
	// Insights are the user's original observations; scored for synthesis.
	Insights []string
	// EnteredAt is when the user entered the fragment that carries the
	// mission; SubmittedAt is when this submission arrived.
	EnteredAt   time.Time
	SubmittedAt time.Time
}

// #endregion submission

// #region attempt

// Attempt is the immutable record of one mission evaluation. Attempts are
// only ever appended; past entries are never mutated or deleted.
type Attempt struct {
	ID          string
	FragmentID  string
	Kind        fragment.MissionKind
	SubmittedAt time.Time
	Score       int // 0-100
	Passed      bool
	Reason      string
}

// #endregion attempt

// #region thresholds

// defaultThresholds apply when a mission does not set pass_threshold.
var defaultThresholds = map[fragment.MissionKind]int{
	fragment.MissionObservation:   70,
	fragment.MissionComprehension: 70,
	fragment.MissionSynthesis:     85,
}

func thresholdFor(m fragment.Mission) int {
	if m.PassThreshold > 0 {
		return m.PassThreshold
	}
	return defaultThresholds[m.Kind]
}

// #endregion thresholds
