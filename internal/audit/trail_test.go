package audit

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTrail(t *testing.T) *Trail {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	trail, err := NewTrail(db)
	if err != nil {
		t.Fatalf("NewTrail: %v", err)
	}
	return trail
}

func TestAppendAndListInOrder(t *testing.T) {
	trail := setupTrail(t)
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	entries := []Entry{
		{UserID: "u1", FragmentID: "f1", ChoiceID: "c1", ChoiceLabel: "Follow the corridor",
			Outcome: OutcomeAdvanced, CreditsAwarded: 10, CluesUnlocked: []string{"clue-key"},
			CreatedAt: base},
		{UserID: "u1", FragmentID: "f2", ChoiceID: "c2", Outcome: OutcomeDenied,
			Reason: "insufficient_tier", CreatedAt: base.Add(time.Minute)},
		{UserID: "u2", FragmentID: "f1", ChoiceID: "c1", Outcome: OutcomeAdvanced,
			CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := trail.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := trail.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for u1, got %d", len(got))
	}
	if got[0].Outcome != OutcomeAdvanced || got[1].Outcome != OutcomeDenied {
		t.Fatalf("order wrong: %+v", got)
	}
	if got[0].CreditsAwarded != 10 || len(got[0].CluesUnlocked) != 1 || got[0].CluesUnlocked[0] != "clue-key" {
		t.Fatalf("trigger fields lost: %+v", got[0])
	}
	if got[1].Reason != "insufficient_tier" {
		t.Fatalf("denial reason lost: %+v", got[1])
	}
}

func TestAppendFillsTimestamp(t *testing.T) {
	trail := setupTrail(t)
	if err := trail.Append(Entry{UserID: "u1", Outcome: OutcomeReset}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := trail.ListByUser("u1")
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByUser: %v, %d", err, len(got))
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at not filled")
	}
}

func TestListUnknownUserEmpty(t *testing.T) {
	trail := setupTrail(t)
	got, err := trail.ListByUser("ghost")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}
