// Package archetype derives a behavioral profile from a user's
// interaction history. Scoring is additive and monotonic: observations
// only ever raise accumulators, bounded at MaxTraitScore.
package archetype

// #region weight-table

// latencyWeights is the fixed mapping from latency buckets to trait
// increments. One bucket may feed several traits.
var latencyWeights = map[LatencyBucket]map[Trait]float64{
	LatencyFast:       {TraitDirect: 2.0},
	LatencyMeasured:   {TraitAnalytical: 1.0},
	LatencyDeliberate: {TraitAnalytical: 2.0, TraitPatient: 1.0},
	LatencySlow:       {TraitPatient: 2.0},
}

const (
	revisitExplorerWeight    = 2.0
	revisitPatientWeight     = 0.5
	attemptPersistentWeight  = 1.0 // per attempt beyond the first, capped
	attemptWeightCap         = 4.0
	emotionalRomanticWeight  = 5.0 // scaled by density
	questionAnalyticalWeight = 3.0 // scaled by density
	questionExplorerWeight   = 1.0 // scaled by density
)

// #endregion weight-table

// #region classifier

// Classifier folds interaction signals into archetype profiles.
// It is stateless; profile persistence is the caller's concern.
type Classifier struct{}

// NewClassifier returns a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Observe folds one signal into the profile and returns the updated copy.
// Scores never decrease; each accumulator saturates at MaxTraitScore.
// Dominant archetype is recomputed on every update.
func (c *Classifier) Observe(p Profile, sig Signal) Profile {
	out := p.Clone()

	for trait, w := range latencyWeights[sig.Latency] {
		out.Scores[trait] = saturate(out.Scores[trait] + w)
	}

	if sig.Revisit {
		out.Scores[TraitExplorer] = saturate(out.Scores[TraitExplorer] + revisitExplorerWeight)
		out.Scores[TraitPatient] = saturate(out.Scores[TraitPatient] + revisitPatientWeight)
	}

	if sig.AttemptCount > 1 {
		w := float64(sig.AttemptCount-1) * attemptPersistentWeight
		if w > attemptWeightCap {
			w = attemptWeightCap
		}
		out.Scores[TraitPersistent] = saturate(out.Scores[TraitPersistent] + w)
	}

	if sig.EmotionalDensity > 0 {
		out.Scores[TraitRomantic] = saturate(out.Scores[TraitRomantic] + sig.EmotionalDensity*emotionalRomanticWeight)
	}
	if sig.QuestionDensity > 0 {
		out.Scores[TraitAnalytical] = saturate(out.Scores[TraitAnalytical] + sig.QuestionDensity*questionAnalyticalWeight)
		out.Scores[TraitExplorer] = saturate(out.Scores[TraitExplorer] + sig.QuestionDensity*questionExplorerWeight)
	}

	out.Dominant = dominant(out.Scores)
	out.UpdatedAt = sig.ObservedAt
	return out
}

// #endregion classifier

// #region dominant

// dominant scans the six accumulators; ties break by TraitPriority order.
func dominant(scores map[Trait]float64) Trait {
	best := TraitPriority[0]
	bestScore := scores[best]
	for _, t := range TraitPriority[1:] {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best
}

func saturate(v float64) float64 {
	if v > MaxTraitScore {
		return MaxTraitScore
	}
	return v
}

// #endregion dominant
