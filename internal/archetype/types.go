package archetype

import "time"

// #region trait

// Trait names one of the six behavioral accumulators.
type Trait string

const (
	TraitExplorer   Trait = "explorer"
	TraitDirect     Trait = "direct"
	TraitRomantic   Trait = "romantic"
	TraitAnalytical Trait = "analytical"
	TraitPersistent Trait = "persistent"
	TraitPatient    Trait = "patient"
)

// TraitPriority is the fixed tie-break order for the dominant archetype:
// earlier traits win ties.
var TraitPriority = []Trait{
	TraitExplorer, TraitDirect, TraitRomantic,
	TraitAnalytical, TraitPersistent, TraitPatient,
}

// #endregion trait

// #region profile

// MaxTraitScore bounds every accumulator.
const MaxTraitScore = 100.0

// Profile is one user's behavioral profile: six bounded non-negative
// accumulators plus the derived dominant archetype. Profiles are plain
// values keyed by user id; never a process-wide singleton.
type Profile struct {
	UserID    string
	Scores    map[Trait]float64
	Dominant  Trait
	UpdatedAt time.Time
}

// NewProfile returns a zeroed profile for the given user.
func NewProfile(userID string) Profile {
	scores := make(map[Trait]float64, len(TraitPriority))
	for _, t := range TraitPriority {
		scores[t] = 0
	}
	return Profile{
		UserID:   userID,
		Scores:   scores,
		Dominant: TraitPriority[0],
	}
}

// Clone returns a deep copy so callers can mutate safely.
func (p Profile) Clone() Profile {
	out := p
	out.Scores = make(map[Trait]float64, len(p.Scores))
	for t, v := range p.Scores {
		out.Scores[t] = v
	}
	return out
}

// #endregion profile

// #region latency-bucket

// LatencyBucket categorizes how quickly a user responded.
type LatencyBucket string

const (
	LatencyFast       LatencyBucket = "fast"       // under 15s
	LatencyMeasured   LatencyBucket = "measured"   // 15s to 45s
	LatencyDeliberate LatencyBucket = "deliberate" // 45s to 60s
	LatencySlow       LatencyBucket = "slow"       // over 60s
)

// BucketLatency maps a response latency to its bucket.
func BucketLatency(d time.Duration) LatencyBucket {
	switch {
	case d < 15*time.Second:
		return LatencyFast
	case d < 45*time.Second:
		return LatencyMeasured
	case d < 60*time.Second:
		return LatencyDeliberate
	default:
		return LatencySlow
	}
}

// #endregion latency-bucket

// #region signal

// Signal carries the measurable features of one user interaction.
// Duplicate delivery is prevented upstream: the state machine derives
// signals under the per-user lock, after its position and pending checks.
type Signal struct {
	Latency          LatencyBucket
	Revisit          bool          // user returned to an already-completed fragment
	AttemptCount     int           // attempts on the current mission
	EmotionalDensity float64       // [0,1] emotional vocabulary density
	QuestionDensity  float64       // [0,1] question density
	ObservedAt       time.Time
}

// #endregion signal
