package archetype

import (
	"testing"
	"time"
)

func TestObserveMonotonic(t *testing.T) {
	c := NewClassifier()
	p := NewProfile("u1")

	signals := []Signal{
		{Latency: LatencyFast, QuestionDensity: 0.5},
		{Latency: LatencySlow, Revisit: true},
		{Latency: LatencyMeasured, AttemptCount: 3, EmotionalDensity: 0.2},
	}

	prev := p
	for _, sig := range signals {
		next := c.Observe(prev, sig)
		for _, tr := range TraitPriority {
			if next.Scores[tr] < prev.Scores[tr] {
				t.Fatalf("trait %s decreased: %.2f -> %.2f", tr, prev.Scores[tr], next.Scores[tr])
			}
		}
		prev = next
	}
}

func TestObserveDoesNotMutateInput(t *testing.T) {
	c := NewClassifier()
	p := NewProfile("u1")
	_ = c.Observe(p, Signal{Latency: LatencyFast})

	for _, tr := range TraitPriority {
		if p.Scores[tr] != 0 {
			t.Fatalf("input profile mutated: %s = %.2f", tr, p.Scores[tr])
		}
	}
}

func TestDominantTieBreakPriority(t *testing.T) {
	p := NewProfile("u1")
	// All zero: earliest priority trait wins.
	if got := dominant(p.Scores); got != TraitExplorer {
		t.Fatalf("expected explorer on all-zero tie, got %s", got)
	}

	p.Scores[TraitPatient] = 5
	p.Scores[TraitDirect] = 5
	// Equal scores: direct precedes patient in the priority order.
	if got := dominant(p.Scores); got != TraitDirect {
		t.Fatalf("expected direct to win tie, got %s", got)
	}

	p.Scores[TraitPatient] = 6
	if got := dominant(p.Scores); got != TraitPatient {
		t.Fatalf("expected patient, got %s", got)
	}
}

func TestLatencyBuckets(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want LatencyBucket
	}{
		{5 * time.Second, LatencyFast},
		{20 * time.Second, LatencyMeasured},
		{50 * time.Second, LatencyDeliberate},
		{2 * time.Minute, LatencySlow},
	}
	for _, tc := range cases {
		if got := BucketLatency(tc.d); got != tc.want {
			t.Fatalf("BucketLatency(%v) = %s, want %s", tc.d, got, tc.want)
		}
	}
}

func TestAccumulatorSaturates(t *testing.T) {
	c := NewClassifier()
	p := NewProfile("u1")
	sig := Signal{Latency: LatencySlow, Revisit: true, EmotionalDensity: 1, QuestionDensity: 1}

	for i := 0; i < 200; i++ {
		p = c.Observe(p, sig)
	}
	for _, tr := range TraitPriority {
		if p.Scores[tr] > MaxTraitScore {
			t.Fatalf("trait %s exceeded bound: %.2f", tr, p.Scores[tr])
		}
	}
	if p.Scores[TraitPatient] != MaxTraitScore {
		t.Fatalf("expected patient to saturate, got %.2f", p.Scores[TraitPatient])
	}
}

func TestRepeatedMissionAttemptsFeedPersistence(t *testing.T) {
	c := NewClassifier()
	p := NewProfile("u1")

	p = c.Observe(p, Signal{AttemptCount: 1})
	if p.Scores[TraitPersistent] != 0 {
		t.Fatalf("first attempt should not score persistence: %.2f", p.Scores[TraitPersistent])
	}
	p = c.Observe(p, Signal{AttemptCount: 4})
	if p.Scores[TraitPersistent] != 3 {
		t.Fatalf("expected persistence 3, got %.2f", p.Scores[TraitPersistent])
	}
	// Attempt weight caps out.
	p2 := c.Observe(NewProfile("u2"), Signal{AttemptCount: 50})
	if p2.Scores[TraitPersistent] != attemptWeightCap {
		t.Fatalf("expected capped weight %.1f, got %.2f", attemptWeightCap, p2.Scores[TraitPersistent])
	}
}
