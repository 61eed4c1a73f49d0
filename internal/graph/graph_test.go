package graph

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/velvetpath/narrative-engine/internal/fragment"
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

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestStore(t *testing.T, config Config) *Store {
	t.Helper()
	s, err := NewStore(setupTestDB(t), scorer.New(scorer.DefaultConfig()), config)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func testFragment(id string, level int, tier fragment.Tier, choices ...fragment.Choice) fragment.Fragment {
	return fragment.Fragment{
		ID:            id,
		Title:         "Test " + id,
		SequenceLevel: level,
		Tier:          tier,
		Content:       passingContent,
		Choices:       choices,
	}
}

func TestPublishAndGet(t *testing.T) {
	s := newTestStore(t, Config{})

	id, err := s.Publish(testFragment("f1", 1, fragment.TierOpen))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if id != "f1" {
		t.Fatalf("expected id f1, got %s", id)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	f, err := s.Get("f1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if f.Tier != fragment.TierOpen || f.SequenceLevel != 1 {
		t.Fatalf("unexpected fragment: %+v", f)
	}
}

func TestPublishRejectsInconsistentContent(t *testing.T) {
	s := newTestStore(t, Config{})

	f := testFragment("bad", 1, fragment.TierOpen)
	f.Content = "Open the settings menu and press the button."
	_, err := s.Publish(f)
	if err == nil {
		t.Fatal("expected admission error")
	}
	ae, ok := AsAdmissionError(err)
	if !ok || ae.Kind != AdmissionConsistencyRejected {
		t.Fatalf("expected ConsistencyRejected, got %v", err)
	}
	if _, err := s.Get("bad"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rejected fragment must not be retrievable: %v", err)
	}
}

func TestPublishRejectsUnsatisfiableMission(t *testing.T) {
	s := newTestStore(t, Config{})

	cases := []struct {
		id      string
		mission *fragment.Mission
	}{
		{"obs-no-element", &fragment.Mission{Kind: fragment.MissionObservation, PassThreshold: 70}},
		{"comp-no-keywords", &fragment.Mission{Kind: fragment.MissionComprehension, PassThreshold: 70}},
		{"synth-no-keywords", &fragment.Mission{Kind: fragment.MissionSynthesis, PassThreshold: 85}},
	}
	for _, tc := range cases {
		f := testFragment(tc.id, 1, fragment.TierOpen)
		f.Mission = tc.mission
		_, err := s.Publish(f)
		ae, ok := AsAdmissionError(err)
		if !ok || ae.Kind != AdmissionInvalidFragment {
			t.Fatalf("%s: expected InvalidFragment, got %v", tc.id, err)
		}
	}

	// The same kinds publish once their scoring inputs are present.
	withElement := testFragment("obs-ok", 1, fragment.TierOpen)
	withElement.Mission = &fragment.Mission{
		Kind: fragment.MissionObservation, PassThreshold: 70, HiddenElement: "silver raven",
	}
	if _, err := s.Publish(withElement); err != nil {
		t.Fatalf("publish satisfiable observation mission: %v", err)
	}
	withKeywords := testFragment("comp-ok", 1, fragment.TierOpen)
	withKeywords.Mission = &fragment.Mission{
		Kind: fragment.MissionComprehension, PassThreshold: 70, Keywords: []string{"mask"},
	}
	if _, err := s.Publish(withKeywords); err != nil {
		t.Fatalf("publish satisfiable comprehension mission: %v", err)
	}
}

func TestDeferredDanglingReference(t *testing.T) {
	s := newTestStore(t, Config{})

	f := testFragment("f1", 1, fragment.TierOpen,
		fragment.Choice{ID: "c1", Label: "Onward", DestinationID: "missing"})
	if _, err := s.Publish(f); err != nil {
		t.Fatalf("deferred publish should accept unresolved destination: %v", err)
	}

	err := s.Finalize()
	ae, ok := AsAdmissionError(err)
	if !ok || ae.Kind != AdmissionDanglingReference {
		t.Fatalf("expected DanglingReference at finalize, got %v", err)
	}

	// Out-of-order publication resolves once the destination arrives.
	if _, err := s.Publish(testFragment("missing", 2, fragment.TierOpen)); err != nil {
		t.Fatalf("publish destination: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize after resolving: %v", err)
	}
	if _, err := s.Get("f1"); err != nil {
		t.Fatalf("get after finalize: %v", err)
	}
}

func TestStrictOrderRejectsDangling(t *testing.T) {
	s := newTestStore(t, Config{StrictOrder: true})

	f := testFragment("f1", 1, fragment.TierOpen,
		fragment.Choice{ID: "c1", Label: "Onward", DestinationID: "missing"})
	_, err := s.Publish(f)
	ae, ok := AsAdmissionError(err)
	if !ok || ae.Kind != AdmissionDanglingReference {
		t.Fatalf("expected DanglingReference at publish, got %v", err)
	}

	// Topological order works without a finalize pass.
	if _, err := s.Publish(testFragment("f2", 2, fragment.TierOpen)); err != nil {
		t.Fatalf("publish leaf: %v", err)
	}
	f.Choices[0].DestinationID = "f2"
	if _, err := s.Publish(f); err != nil {
		t.Fatalf("publish with resolved destination: %v", err)
	}
	if _, err := s.Get("f1"); err != nil {
		t.Fatalf("strict publish should be immediately live: %v", err)
	}
}

func TestCyclicGraphAllowed(t *testing.T) {
	s := newTestStore(t, Config{})

	a := testFragment("a", 1, fragment.TierOpen,
		fragment.Choice{ID: "c1", Label: "Forward", DestinationID: "b"})
	b := testFragment("b", 2, fragment.TierOpen,
		fragment.Choice{ID: "c1", Label: "Return", DestinationID: "a"})
	if _, err := s.Publish(a); err != nil {
		t.Fatalf("publish a: %v", err)
	}
	if _, err := s.Publish(b); err != nil {
		t.Fatalf("publish b: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("cycles must finalize cleanly: %v", err)
	}
}

func TestTierAscentAgainstSequenceOrder(t *testing.T) {
	s := newTestStore(t, Config{})

	// Edge from open level 5 back to premium level 2 ascends tier against
	// story order and must be refused.
	src := testFragment("src", 5, fragment.TierOpen,
		fragment.Choice{ID: "c1", Label: "Skip", DestinationID: "vip"})
	vip := testFragment("vip", 2, fragment.TierPremium)
	if _, err := s.Publish(src); err != nil {
		t.Fatalf("publish src: %v", err)
	}
	if _, err := s.Publish(vip); err != nil {
		t.Fatalf("publish vip: %v", err)
	}
	err := s.Finalize()
	ae, ok := AsAdmissionError(err)
	if !ok || ae.Kind != AdmissionInvalidFragment {
		t.Fatalf("expected tier ascent rejection, got %v", err)
	}
}

func TestListByTierOrderedAndRetire(t *testing.T) {
	s := newTestStore(t, Config{})

	for _, f := range []fragment.Fragment{
		testFragment("o2", 2, fragment.TierOpen),
		testFragment("o1", 1, fragment.TierOpen),
		testFragment("m1", 3, fragment.TierMid),
	} {
		if _, err := s.Publish(f); err != nil {
			t.Fatalf("publish %s: %v", f.ID, err)
		}
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	open, err := s.ListByTier(fragment.TierOpen)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(open) != 2 || open[0].ID != "o1" || open[1].ID != "o2" {
		t.Fatalf("expected [o1 o2], got %+v", open)
	}

	if err := s.Retire("o1"); err != nil {
		t.Fatalf("retire: %v", err)
	}
	open, err = s.ListByTier(fragment.TierOpen)
	if err != nil {
		t.Fatalf("list after retire: %v", err)
	}
	if len(open) != 1 || open[0].ID != "o2" {
		t.Fatalf("retired fragment still listed: %+v", open)
	}
	// Retired fragments still resolve by id.
	if _, err := s.Get("o1"); err != nil {
		t.Fatalf("retired fragment must still resolve: %v", err)
	}
}

func TestReloadFromDisk(t *testing.T) {
	db := setupTestDB(t)
	sc := scorer.New(scorer.DefaultConfig())
	s, err := NewStore(db, sc, Config{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := s.Publish(testFragment("f1", 1, fragment.TierOpen)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	reloaded, err := NewStore(db, sc, Config{})
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	if _, err := reloaded.Get("f1"); err != nil {
		t.Fatalf("get after reload: %v", err)
	}
}
