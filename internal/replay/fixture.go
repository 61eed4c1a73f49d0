// Package replay runs recorded user sessions against a fresh in-memory
// engine and checks each step's outcome. Fixtures double as regression
// tests for graph changes: republish the graph, replay the sessions,
// diff the outcomes.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/fragment"
)

// #region fixture-types

// Step kinds.
const (
	StepChoice  = "choice"
	StepMission = "mission"
)

// Expected outcome strings. Denials use the "denied:<reason>" form.
const (
	ExpectAdvanced        = "advanced"
	ExpectAwaitingMission = "awaiting_mission"
	ExpectPassed          = "passed"
	ExpectFailed          = "failed"
	ExpectExhausted       = "exhausted"
)

// Fixture is the top-level JSON structure for a replay run: the graph,
// one user's tier, and the recorded steps with expected outcomes.
type Fixture struct {
	Description        string              `json:"description"`
	UserID             string              `json:"user_id"`
	Tier               fragment.Tier       `json:"tier"`
	MaxMissionAttempts int                 `json:"max_mission_attempts,omitempty"`
	Fragments          []fragment.Fragment `json:"fragments"`
	Steps              []Step              `json:"steps"`
}

// Step is one recorded interaction.
type Step struct {
	Kind       string `json:"kind"`
	FragmentID string `json:"fragment_id"`
	ChoiceID   string `json:"choice_id,omitempty"`

	// Mission payload fields. Empty text marks a mission step that
	// cannot be re-driven (trail exports carry outcomes only).
	Text               string   `json:"text,omitempty"`
	ReferencedElements []string `json:"referenced_elements,omitempty"`
	Connections        []string `json:"connections,omitempty"`
	Insights           []string `json:"insights,omitempty"`

	Expect string `json:"expect"`
}

// #endregion fixture-types

// #region loader

// Load reads and parses a JSON fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.UserID == "" {
		return nil, fmt.Errorf("fixture %s: user_id is required", path)
	}
	return &f, nil
}

// Save writes a fixture as indented JSON.
func Save(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion loader

// #region from-trail

// FromTrail reconstructs a fixture's step list from a user's audit
// trail. Choice outcomes replay fully; mission submissions are not
// recoverable from the trail (the payload text is never logged), so the
// export stops at the first held transition.
func FromTrail(entries []audit.Entry, userID string, tier fragment.Tier) *Fixture {
	f := &Fixture{
		Description: fmt.Sprintf("session transcript for %s", userID),
		UserID:      userID,
		Tier:        tier,
	}
	for _, e := range entries {
		switch e.Outcome {
		case audit.OutcomeAdvanced:
			f.Steps = append(f.Steps, Step{
				Kind: StepChoice, FragmentID: e.FromFragmentID,
				ChoiceID: e.ChoiceID, Expect: ExpectAdvanced,
			})
		case audit.OutcomeDenied:
			f.Steps = append(f.Steps, Step{
				Kind: StepChoice, FragmentID: e.FromFragmentID,
				ChoiceID: e.ChoiceID, Expect: "denied:" + e.Reason,
			})
		case audit.OutcomeAwaitingMission:
			f.Steps = append(f.Steps, Step{
				Kind: StepChoice, FragmentID: e.FromFragmentID,
				ChoiceID: e.ChoiceID, Expect: ExpectAwaitingMission,
			})
			return f
		}
	}
	return f
}

// #endregion from-trail
