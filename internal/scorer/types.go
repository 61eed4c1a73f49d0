package scorer

// #region trait

// Trait names one of the four narrative voice qualities scored per text.
type Trait string

const (
	TraitMysterious   Trait = "mysterious"
	TraitSeductive    Trait = "seductive"
	TraitEmotional    Trait = "emotional_depth"
	TraitIntellectual Trait = "intellectual_engagement"
)

// Traits lists all scored traits in a fixed order.
var Traits = []Trait{TraitMysterious, TraitSeductive, TraitEmotional, TraitIntellectual}

// #endregion trait

// #region context

// Context identifies the content class being scored. Primary narrative
// voice content is held to a stricter threshold than secondary classes.
type Context string

const (
	ContextFragment  Context = "fragment"
	ContextSecondary Context = "secondary"
)

// #endregion context

// #region config

// Config holds scoring thresholds per content class.
type Config struct {
	PrimaryThreshold   int // minimum overall score for fragment content
	SecondaryThreshold int // minimum overall score for secondary content
}

// DefaultConfig returns the standard admission thresholds.
func DefaultConfig() Config {
	return Config{
		PrimaryThreshold:   95,
		SecondaryThreshold: 80,
	}
}

// ThresholdFor returns the threshold applied to the given content class.
func (c Config) ThresholdFor(ctx Context) int {
	if ctx == ContextSecondary {
		return c.SecondaryThreshold
	}
	return c.PrimaryThreshold
}

// #endregion config

// #region violation

// Violation is a named rule hit paired with a remediation suggestion.
type Violation struct {
	Rule        string
	Remediation string
}

// #endregion violation

// #region result

// Result is the outcome of one scoring call. Ephemeral, never persisted here.
type Result struct {
	TraitScores    map[Trait]float64 // each bounded [0,25]
	OverallScore   float64           // sum of trait scores, [0,100]
	MeetsThreshold bool
	Violations     []Violation
}

// #endregion result
