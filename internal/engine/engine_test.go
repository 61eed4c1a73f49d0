package engine

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/gate"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// passingContent saturates the scorer's trait markers so admission succeeds.
const passingContent = `Lean in, my dear... there are secrets and a mystery woven through every hidden enigma I keep. ` +
	`Shadows and veils, hints and clues... perhaps, maybe, not everything is what it seems between the lines. ` +
	`Do you feel the charm, the alluring pull, the tempting and irresistible spell? ` +
	`Fascinating, captivating magnetism draws you closer, darling... an enticing, suggestive whisper meant for you alone, treasure, stay with me. ` +
	`My heart and soul carry longing and desire, hope and fear, a mixture of melancholy and nostalgia... on one hand vulnerability, on the other an inner conflict, and yet both remain. ` +
	`Have you thought about the meaning? Have you wondered what understanding and wisdom wait here? ` +
	`Consider this: reflect, contemplate, ponder, interpret... explore the complexity, discover the perspective, let each dimension reveal itself. ` +
	`What do you make of it... will you dare?`

// #region stubs

type stubLedger struct {
	credits map[string]int
	err     error
}

func (l *stubLedger) Credit(_ context.Context, userID string, amount int) error {
	if l.err != nil {
		return l.err
	}
	if l.credits == nil {
		l.credits = map[string]int{}
	}
	l.credits[userID] += amount
	return nil
}

type stubTiers struct {
	tiers map[string]fragment.Tier
}

func (s stubTiers) TierOf(_ context.Context, userID string) (fragment.Tier, error) {
	if t, ok := s.tiers[userID]; ok {
		return t, nil
	}
	return fragment.TierOpen, nil
}

// #endregion stubs

// #region setup

type testRig struct {
	engine   *Engine
	progress *progress.Store
	trail    *audit.Trail
	ledger   *stubLedger
}

func newTestEngine(t *testing.T, config Config, tiers stubTiers) *testRig {
	t.Helper()

	gdb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open graph db: %v", err)
	}
	t.Cleanup(func() { gdb.Close() })
	gs, err := graph.NewStore(gdb, scorer.New(scorer.DefaultConfig()), graph.Config{})
	if err != nil {
		t.Fatalf("graph store: %v", err)
	}

	ps, err := progress.NewStore(":memory:")
	if err != nil {
		t.Fatalf("progress store: %v", err)
	}
	t.Cleanup(func() { ps.Close() })

	trail, err := audit.NewTrail(ps.DB())
	if err != nil {
		t.Fatalf("trail: %v", err)
	}

	seedGraph(t, gs)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ledger := &stubLedger{}

	eng := New(gs, ps, trail, mission.NewValidator(mission.DefaultConfig()),
		ledger, tiers, config, logrus.NewEntry(logger))
	return &testRig{engine: eng, progress: ps, trail: trail, ledger: ledger}
}

// seedGraph publishes a small story: f1 fans out to a free fragment, a
// clue-locked fragment, a premium fragment, and a mission fragment.
func seedGraph(t *testing.T, gs *graph.Store) {
	t.Helper()

	frags := []fragment.Fragment{
		{
			ID: "f1", Title: "Threshold", SequenceLevel: 1,
			Tier: fragment.TierOpen, Content: passingContent,
			Choices: []fragment.Choice{
				{ID: "c1", Label: "Follow the corridor", DestinationID: "f2"},
				{ID: "c2", Label: "Open the locked door", DestinationID: "f3",
					RequiredClues: []string{"clue-key"}},
				{ID: "c3", Label: "Climb to the gallery", DestinationID: "fp"},
				{ID: "c4", Label: "Study the portrait", DestinationID: "f4"},
			},
		},
		{
			ID: "f2", Title: "Corridor", SequenceLevel: 2,
			Tier: fragment.TierOpen, Content: passingContent,
			Triggers: []fragment.Trigger{
				{UnlockClue: "clue-key", CreditAmount: 10},
			},
			Choices: []fragment.Choice{
				{ID: "c-back", Label: "Return to the threshold", DestinationID: "f1"},
			},
		},
		{
			ID: "f3", Title: "Locked Room", SequenceLevel: 3,
			Tier: fragment.TierOpen, Content: passingContent,
		},
		{
			ID: "f4", Title: "Portrait", SequenceLevel: 4,
			Tier: fragment.TierOpen, Content: passingContent,
			Triggers: []fragment.Trigger{{CreditAmount: 5}},
			Mission: &fragment.Mission{
				Kind: fragment.MissionComprehension, PassThreshold: 70,
				Keywords: []string{"mask", "mirror", "letter"},
			},
		},
		{
			ID: "fp", Title: "Gallery", SequenceLevel: 5,
			Tier: fragment.TierPremium, Content: passingContent,
		},
	}
	for _, f := range frags {
		if _, err := gs.Publish(f); err != nil {
			t.Fatalf("publish %s: %v", f.ID, err)
		}
	}
	if err := gs.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
}

// #endregion setup

// #region choice-tests

func TestFirstChoiceAdvances(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	res, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if !res.Advanced || res.NewFragment == nil || res.NewFragment.ID != "f2" {
		t.Fatalf("expected advance to f2: %+v", res)
	}

	st, err := rig.engine.GetState(ctx, "u1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if st.CurrentFragmentID != "f2" || !st.CompletedFragments["f1"] {
		t.Fatalf("state not advanced: %+v", st)
	}
	if !st.UnlockedClues["clue-key"] {
		t.Fatalf("trigger clue not unlocked: %+v", st.UnlockedClues)
	}
	if rig.ledger.credits["u1"] != 10 {
		t.Fatalf("expected 10 credits delegated, got %d", rig.ledger.credits["u1"])
	}

	entries, err := rig.trail.ListByUser("u1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("trail: %v, %d entries", err, len(entries))
	}
	if entries[0].Outcome != audit.OutcomeAdvanced || entries[0].CreditsAwarded != 10 {
		t.Fatalf("audit row wrong: %+v", entries[0])
	}
}

func TestPremiumFragmentDeniedForOpenTier(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	res, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c3")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if res.Advanced || res.DenialReason != gate.DenialInsufficientTier {
		t.Fatalf("expected insufficient_tier denial: %+v", res)
	}

	// The same edge works for a premium subscriber.
	rig2 := newTestEngine(t, Config{}, stubTiers{tiers: map[string]fragment.Tier{"vip": fragment.TierPremium}})
	res, err = rig2.engine.SubmitChoice(ctx, "vip", "f1", "c3")
	if err != nil || !res.Advanced || res.NewFragment.ID != "fp" {
		t.Fatalf("premium user should enter gallery: %+v, %v", res, err)
	}
}

func TestClueGateUnlockFlow(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	res, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c2")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if res.Advanced || res.DenialReason != gate.DenialMissingClue {
		t.Fatalf("expected missing_clue denial: %+v", res)
	}

	// Walk through f2 to earn the clue, come back, retry the same edge.
	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1"); err != nil {
		t.Fatalf("advance to f2: %v", err)
	}
	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f2", "c-back"); err != nil {
		t.Fatalf("return to f1: %v", err)
	}
	res, err = rig.engine.SubmitChoice(ctx, "u1", "f1", "c2")
	if err != nil || !res.Advanced || res.NewFragment.ID != "f3" {
		t.Fatalf("unlocked edge should advance: %+v, %v", res, err)
	}
}

func TestStalePositionRejected(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1"); err != nil {
		t.Fatalf("advance: %v", err)
	}
	_, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1")
	if !errors.Is(err, ErrStalePosition) {
		t.Fatalf("expected ErrStalePosition, got %v", err)
	}
}

func TestUnknownChoiceRejected(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	_, err := rig.engine.SubmitChoice(context.Background(), "u1", "f1", "zz")
	if !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
}

// #endregion choice-tests

// #region mission-tests

const failingAnswer = "The mask and the mirror matter somehow."

const passingAnswer = "I understand why she hides the letter behind the mirror: the mask " +
	"is how she protects her heart, and I can see the fear beneath it."

func TestMissionHoldAndPass(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	res, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c4")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if res.Advanced || !res.AwaitingMission {
		t.Fatalf("expected held transition: %+v", res)
	}

	st, _ := rig.engine.GetState(ctx, "u1")
	if st.Status != progress.StatusAwaitingMission || st.PendingFragmentID != "f4" {
		t.Fatalf("not awaiting mission: %+v", st)
	}

	mres, err := rig.engine.SubmitMissionResponse(ctx, "u1", "f4",
		mission.Submission{Text: failingAnswer})
	if err != nil {
		t.Fatalf("SubmitMissionResponse: %v", err)
	}
	if mres.Passed || mres.Advanced {
		t.Fatalf("weak answer should fail: %+v", mres)
	}

	st, _ = rig.engine.GetState(ctx, "u1")
	if st.Status != progress.StatusAwaitingMission {
		t.Fatalf("failed attempt should keep the hold: %+v", st)
	}

	mres, err = rig.engine.SubmitMissionResponse(ctx, "u1", "f4",
		mission.Submission{Text: passingAnswer})
	if err != nil {
		t.Fatalf("SubmitMissionResponse: %v", err)
	}
	if !mres.Passed || !mres.Advanced || mres.NewFragment.ID != "f4" {
		t.Fatalf("passing answer should advance: %+v", mres)
	}

	st, _ = rig.engine.GetState(ctx, "u1")
	if st.CurrentFragmentID != "f4" || st.Status != progress.StatusIdle {
		t.Fatalf("state not advanced after pass: %+v", st)
	}
	if n, _ := rig.progress.AttemptCount("u1", "f4"); n != 2 {
		t.Fatalf("expected 2 recorded attempts, got %d", n)
	}
	if rig.ledger.credits["u1"] != 5 {
		t.Fatalf("mission fragment credits not delegated: %d", rig.ledger.credits["u1"])
	}
}

func TestMissionAttemptLimit(t *testing.T) {
	rig := newTestEngine(t, Config{MaxMissionAttempts: 2}, stubTiers{})
	ctx := context.Background()

	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c4"); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	mres, err := rig.engine.SubmitMissionResponse(ctx, "u1", "f4",
		mission.Submission{Text: failingAnswer})
	if err != nil || mres.AttemptsExhausted {
		t.Fatalf("first failure should allow retry: %+v, %v", mres, err)
	}

	mres, err = rig.engine.SubmitMissionResponse(ctx, "u1", "f4",
		mission.Submission{Text: failingAnswer})
	if err != nil {
		t.Fatalf("SubmitMissionResponse: %v", err)
	}
	if !mres.AttemptsExhausted {
		t.Fatalf("second failure should exhaust the limit: %+v", mres)
	}

	st, _ := rig.engine.GetState(ctx, "u1")
	if st.Status != progress.StatusIdle || st.PendingFragmentID != "" {
		t.Fatalf("exhaustion should fall back to idle: %+v", st)
	}

	_, err = rig.engine.SubmitMissionResponse(ctx, "u1", "f4",
		mission.Submission{Text: passingAnswer})
	if !errors.Is(err, ErrNoPendingMission) {
		t.Fatalf("expected ErrNoPendingMission after fallback, got %v", err)
	}
}

func TestChoiceRejectedWhileMissionPending(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c4"); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	_, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1")
	if !errors.Is(err, ErrMissionPending) {
		t.Fatalf("expected ErrMissionPending, got %v", err)
	}
}

// #endregion mission-tests

// #region profile-and-reset

func TestArchetypeProfileObservesAdvancement(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1"); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	prof, err := rig.engine.GetArchetype(ctx, "u1")
	if err != nil {
		t.Fatalf("GetArchetype: %v", err)
	}
	if prof.Dominant == "" {
		t.Fatalf("profile not updated: %+v", prof)
	}
	total := 0.0
	for _, v := range prof.Scores {
		total += v
	}
	if total <= 0 {
		t.Fatalf("expected accumulated scores: %+v", prof.Scores)
	}
}

func TestResetClearsStateKeepsTrail(t *testing.T) {
	rig := newTestEngine(t, Config{}, stubTiers{})
	ctx := context.Background()

	if _, err := rig.engine.SubmitChoice(ctx, "u1", "f1", "c1"); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if err := rig.engine.Reset(ctx, "u1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	st, _ := rig.engine.GetState(ctx, "u1")
	if st.CurrentFragmentID != "" || len(st.UnlockedClues) != 0 {
		t.Fatalf("reset did not clear: %+v", st)
	}

	entries, err := rig.trail.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(entries) != 2 || entries[1].Outcome != audit.OutcomeReset {
		t.Fatalf("trail should keep history plus reset row: %+v", entries)
	}
}

// #endregion profile-and-reset
