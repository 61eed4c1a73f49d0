package projection

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/progress"
)

// #region view-tests

func TestViewOfStateSortsSets(t *testing.T) {
	st := progress.NewState("u1", time.Now().UTC())
	st.CurrentFragmentID = "f3"
	st.Unlock("zeta")
	st.Unlock("alpha")
	st.Complete("f2")
	st.Complete("f1")

	view := ViewOfState(st)
	if view.UserID != "u1" || view.CurrentFragmentID != "f3" {
		t.Fatalf("identity fields lost: %+v", view)
	}
	if !reflect.DeepEqual(view.UnlockedClues, []string{"alpha", "zeta"}) {
		t.Fatalf("clues not sorted: %v", view.UnlockedClues)
	}
	if !reflect.DeepEqual(view.CompletedFragments, []string{"f1", "f2"}) {
		t.Fatalf("completions not sorted: %v", view.CompletedFragments)
	}
}

func TestViewOfStateEmptySetsOmitted(t *testing.T) {
	view := ViewOfState(progress.NewState("u1", time.Now().UTC()))
	if view.UnlockedClues != nil || view.CompletedFragments != nil {
		t.Fatalf("empty sets should project to nil: %+v", view)
	}
}

func TestViewOfProfileCopiesScores(t *testing.T) {
	p := archetype.NewProfile("u1")
	p.Scores[archetype.TraitExplorer] = 12
	p.Dominant = archetype.TraitExplorer

	view := ViewOfProfile(p)
	view.Scores["explorer"] = 99
	if p.Scores[archetype.TraitExplorer] != 12 {
		t.Fatal("view mutation leaked into profile")
	}
	if view.Dominant != "explorer" {
		t.Fatalf("dominant lost: %+v", view)
	}
}

// #endregion view-tests

// #region tier-cache-tests

type countingTiers struct {
	calls int
	tier  fragment.Tier
	err   error
}

func (c *countingTiers) TierOf(_ context.Context, _ string) (fragment.Tier, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.tier, nil
}

func TestCachedTierSourceMemoizes(t *testing.T) {
	upstream := &countingTiers{tier: fragment.TierMid}
	src := NewCachedTierSource(upstream, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		tier, err := src.TierOf(ctx, "u1")
		if err != nil || tier != fragment.TierMid {
			t.Fatalf("TierOf: %v, %v", tier, err)
		}
	}
	if upstream.calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", upstream.calls)
	}
}

func TestCachedTierSourceDoesNotCacheErrors(t *testing.T) {
	upstream := &countingTiers{err: errors.New("subscription service down")}
	src := NewCachedTierSource(upstream, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := src.TierOf(ctx, "u1"); err == nil {
			t.Fatal("expected error")
		}
	}
	if upstream.calls != 3 {
		t.Fatalf("errors must not be cached: %d calls", upstream.calls)
	}
}

func TestCachedTierSourceInvalidate(t *testing.T) {
	upstream := &countingTiers{tier: fragment.TierOpen}
	src := NewCachedTierSource(upstream, time.Minute)
	ctx := context.Background()

	src.TierOf(ctx, "u1")
	upstream.tier = fragment.TierPremium
	src.Invalidate("u1")

	tier, err := src.TierOf(ctx, "u1")
	if err != nil || tier != fragment.TierPremium {
		t.Fatalf("expected fresh tier after invalidate: %v, %v", tier, err)
	}
	if upstream.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", upstream.calls)
	}
}

// #endregion tier-cache-tests
