package replay

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region result-types

// StepResult captures the outcome of replaying one step.
type StepResult struct {
	Index    int
	Kind     string
	Expected string
	Actual   string
	Matched  bool
	Detail   string
}

// Summary aggregates a replay run.
type Summary struct {
	TotalSteps      int
	Matched         int
	Mismatched      int
	FinalFragmentID string
	Dominant        string
}

// #endregion result-types

// #region collaborator-stubs

type nullLedger struct{}

func (nullLedger) Credit(context.Context, string, int) error { return nil }

type fixedTier struct{ tier fragment.Tier }

func (f fixedTier) TierOf(context.Context, string) (fragment.Tier, error) {
	return f.tier, nil
}

// #endregion collaborator-stubs

// #region run

// Run replays a fixture against a fresh in-memory engine: publish the
// fixture's graph, drive the steps, compare outcomes. Infrastructure
// errors abort the run; outcome mismatches are reported per step.
func Run(f *Fixture) ([]StepResult, Summary, error) {
	eng, cleanup, err := buildEngine(f)
	if err != nil {
		return nil, Summary{}, err
	}
	defer cleanup()

	ctx := context.Background()
	results := make([]StepResult, 0, len(f.Steps))
	for i, step := range f.Steps {
		actual, detail, err := runStep(ctx, eng, f.UserID, step)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("step %d: %w", i, err)
		}
		results = append(results, StepResult{
			Index:    i,
			Kind:     step.Kind,
			Expected: step.Expect,
			Actual:   actual,
			Matched:  actual == step.Expect,
			Detail:   detail,
		})
	}

	summary := Summary{TotalSteps: len(results)}
	for _, r := range results {
		if r.Matched {
			summary.Matched++
		} else {
			summary.Mismatched++
		}
	}
	if st, err := eng.GetState(ctx, f.UserID); err == nil {
		summary.FinalFragmentID = st.CurrentFragmentID
	}
	if prof, err := eng.GetArchetype(ctx, f.UserID); err == nil {
		summary.Dominant = string(prof.Dominant)
	}
	return results, summary, nil
}

func runStep(ctx context.Context, eng *engine.Engine, userID string, step Step) (actual, detail string, err error) {
	switch step.Kind {
	case StepChoice:
		res, err := eng.SubmitChoice(ctx, userID, step.FragmentID, step.ChoiceID)
		if err != nil {
			return "", "", err
		}
		switch {
		case res.Advanced:
			return ExpectAdvanced, res.NewFragment.ID, nil
		case res.AwaitingMission:
			return ExpectAwaitingMission, "", nil
		default:
			return "denied:" + string(res.DenialReason), res.DenialDetail, nil
		}

	case StepMission:
		if step.Text == "" {
			return "", "", fmt.Errorf("mission step for %s has no payload", step.FragmentID)
		}
		res, err := eng.SubmitMissionResponse(ctx, userID, step.FragmentID, mission.Submission{
			Text:               step.Text,
			ReferencedElements: step.ReferencedElements,
			Connections:        step.Connections,
			Insights:           step.Insights,
		})
		if err != nil {
			return "", "", err
		}
		switch {
		case res.Passed:
			return ExpectPassed, fmt.Sprintf("score %d", res.Attempt.Score), nil
		case res.AttemptsExhausted:
			return ExpectExhausted, "", nil
		default:
			return ExpectFailed, res.Attempt.Reason, nil
		}

	default:
		return "", "", fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

// #endregion run

// #region build

func buildEngine(f *Fixture) (*engine.Engine, func(), error) {
	gdb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, nil, fmt.Errorf("open graph db: %w", err)
	}
	gs, err := graph.NewStore(gdb, scorer.New(scorer.DefaultConfig()), graph.Config{})
	if err != nil {
		gdb.Close()
		return nil, nil, err
	}
	for _, frag := range f.Fragments {
		if _, err := gs.Publish(frag); err != nil {
			gdb.Close()
			return nil, nil, fmt.Errorf("publish %s: %w", frag.ID, err)
		}
	}
	if err := gs.Finalize(); err != nil {
		gdb.Close()
		return nil, nil, err
	}

	ps, err := progress.NewStore(":memory:")
	if err != nil {
		gdb.Close()
		return nil, nil, err
	}
	trail, err := audit.NewTrail(ps.DB())
	if err != nil {
		ps.Close()
		gdb.Close()
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tier := f.Tier
	if tier == "" {
		tier = fragment.TierOpen
	}

	eng := engine.New(gs, ps, trail, mission.NewValidator(mission.DefaultConfig()),
		nullLedger{}, fixedTier{tier: tier},
		engine.Config{MaxMissionAttempts: f.MaxMissionAttempts},
		logrus.NewEntry(logger))

	cleanup := func() {
		ps.Close()
		gdb.Close()
	}
	return eng, cleanup, nil
}

// #endregion build
