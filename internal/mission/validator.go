// Package mission evaluates user submissions against the observation,
// comprehension, and synthesis requirements attached to fragments. Every
// evaluation produces an immutable attempt record for the audit trail.
package mission

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/lexicon"
)

// #region validator

// Validator scores mission submissions. Stateless; attempt persistence is
// the progression store's concern.
type Validator struct {
	config Config
}

// NewValidator returns a Validator with the given configuration.
func NewValidator(config Config) *Validator {
	return &Validator{config: config}
}

// Evaluate scores a submission against the mission attached to fragmentID.
// completed is the user's completed-fragment set, consulted for synthesis
// prerequisites. The returned attempt is recorded whether or not it passed;
// a timed-out observation is a failed attempt, never silently dropped.
func (v *Validator) Evaluate(fragmentID string, m fragment.Mission, sub Submission, completed map[string]bool) Attempt {
	attempt := Attempt{
		ID:          uuid.New().String(),
		FragmentID:  fragmentID,
		Kind:        m.Kind,
		SubmittedAt: sub.SubmittedAt,
	}

	var score int
	var reason string
	switch m.Kind {
	case fragment.MissionObservation:
		score, reason = v.scoreObservation(m, sub)
	case fragment.MissionComprehension:
		score, reason = v.scoreComprehension(m, sub)
	case fragment.MissionSynthesis:
		score, reason = v.scoreSynthesis(m, sub, completed)
	default:
		reason = fmt.Sprintf("unknown mission kind %q", m.Kind)
	}

	attempt.Score = score
	attempt.Passed = reason == "" && score >= thresholdFor(m)
	if attempt.Passed {
		attempt.Reason = fmt.Sprintf("scored %d, threshold %d", score, thresholdFor(m))
	} else if reason != "" {
		attempt.Reason = reason
	} else {
		attempt.Reason = fmt.Sprintf("scored %d below threshold %d", score, thresholdFor(m))
	}
	return attempt
}

// #endregion validator

// #region observation

// scoreObservation requires the designated hidden element to be referenced
// within the validity window. Late or missing references fail.
func (v *Validator) scoreObservation(m fragment.Mission, sub Submission) (int, string) {
	window := v.config.ObservationWindow
	if m.WindowHours > 0 {
		window = timeHours(m.WindowHours)
	}
	if !sub.EnteredAt.IsZero() && sub.SubmittedAt.After(sub.EnteredAt.Add(window)) {
		return 0, fmt.Sprintf("observation window of %s expired", window)
	}

	if m.HiddenElement == "" {
		return 0, "mission has no designated hidden element"
	}
	if !referencesElement(sub, m.HiddenElement) {
		return 0, fmt.Sprintf("hidden element %q not referenced", m.HiddenElement)
	}

	// Base credit for the find; extra detail in the writeup adds up to 25.
	score := 75
	detail := lexicon.WordCount(sub.Text) / 10
	if detail > 25 {
		detail = 25
	}
	return score + detail, ""
}

func referencesElement(sub Submission, element string) bool {
	lower := strings.ToLower(element)
	for _, ref := range sub.ReferencedElements {
		if strings.ToLower(strings.TrimSpace(ref)) == lower {
			return true
		}
	}
	return strings.Contains(strings.ToLower(sub.Text), lower)
}

// #endregion observation

// #region comprehension

// scoreComprehension combines keyword coverage (up to 60) with an
// empathy/complexity heuristic (up to 40).
func (v *Validator) scoreComprehension(m fragment.Mission, sub Submission) (int, string) {
	coverage := lexicon.Coverage(sub.Text, m.Keywords) * 60

	empathy := 20.0 + 10.0*float64(lexicon.EmpathyBalance(sub.Text)) + 40.0*lexicon.EmotionalDensity(sub.Text)
	if empathy < 0 {
		empathy = 0
	}
	if empathy > 40 {
		empathy = 40
	}

	return clampScore(int(coverage + empathy)), ""
}

// #endregion comprehension

// #region synthesis

// scoreSynthesis fails immediately when tier prerequisites are missing,
// without scoring. Otherwise integration is concept coverage (up to 60)
// plus cross-level connections and original insights (up to 20 each).
func (v *Validator) scoreSynthesis(m fragment.Mission, sub Submission, completed map[string]bool) (int, string) {
	for _, prereq := range m.Prerequisites {
		if !completed[prereq] {
			return 0, fmt.Sprintf("prerequisite fragment %s not completed", prereq)
		}
	}

	coverage := lexicon.Coverage(sub.Text, m.Keywords) * 60
	connections := float64(len(sub.Connections)) * 10
	if connections > 20 {
		connections = 20
	}
	insights := float64(len(sub.Insights)) * 10
	if insights > 20 {
		insights = 20
	}

	return clampScore(int(coverage + connections + insights)), ""
}

// #endregion synthesis

// #region helpers

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func timeHours(h int) time.Duration {
	return time.Duration(h) * time.Hour
}

// #endregion helpers
