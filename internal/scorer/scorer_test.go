package scorer

import (
	"sync"
	"testing"
)

// richText saturates the markers for all four traits and carries no violations.
const richText = `Lean in, my dear... there are secrets and a mystery woven through every hidden enigma I keep. ` +
	`Shadows and veils, hints and clues... perhaps, maybe, not everything is what it seems between the lines. ` +
	`Do you feel the charm, the alluring pull, the tempting and irresistible spell? ` +
	`Fascinating, captivating magnetism draws you closer, darling... an enticing, suggestive whisper meant for you alone, treasure, stay with me. ` +
	`My heart and soul carry longing and desire, hope and fear, a mixture of melancholy and nostalgia... on one hand vulnerability, on the other an inner conflict, and yet both remain. ` +
	`Have you thought about the meaning? Have you wondered what understanding and wisdom wait here? ` +
	`Consider this: reflect, contemplate, ponder, interpret... explore the complexity, discover the perspective, let each dimension reveal itself. ` +
	`What do you make of it... will you dare?`

func TestScoreRichTextMeetsThreshold(t *testing.T) {
	s := New(DefaultConfig())
	res := s.Score(richText, ContextFragment)

	if !res.MeetsThreshold {
		t.Fatalf("expected rich text to meet threshold, got %.1f: %+v", res.OverallScore, res.Violations)
	}
	if res.OverallScore < 95 || res.OverallScore > 100 {
		t.Fatalf("overall score out of range: %.1f", res.OverallScore)
	}
	for _, tr := range Traits {
		if res.TraitScores[tr] < 0 || res.TraitScores[tr] > 25 {
			t.Fatalf("trait %s out of [0,25]: %.1f", tr, res.TraitScores[tr])
		}
	}
}

func TestScoreZeroMarkerText(t *testing.T) {
	s := New(DefaultConfig())
	res := s.Score("The quick brown fox jumps over a lazy dog near a red barn today.", ContextFragment)

	if res.MeetsThreshold {
		t.Fatal("marker-free text must not meet threshold")
	}
	if res.OverallScore > 10 {
		t.Fatalf("expected near-zero overall score, got %.1f", res.OverallScore)
	}
	if len(res.Violations) == 0 {
		t.Fatal("expected non-empty violations")
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := New(DefaultConfig())
	res := s.Score("   ", ContextFragment)

	if res.MeetsThreshold {
		t.Fatal("empty text must not meet threshold")
	}
	if res.OverallScore != 0 {
		t.Fatalf("expected zero score, got %.1f", res.OverallScore)
	}
	if len(res.Violations) == 0 || res.Violations[0].Rule != "empty content" {
		t.Fatalf("expected empty content violation, got %+v", res.Violations)
	}
}

func TestTechnicalVocabularyViolation(t *testing.T) {
	s := New(DefaultConfig())
	text := richText + " Open the settings menu and adjust the system parameters."
	res := s.Score(text, ContextFragment)

	found := false
	for _, v := range res.Violations {
		if v.Rule == "technical vocabulary detected" {
			found = true
			if v.Remediation == "" {
				t.Fatal("violation missing remediation")
			}
		}
	}
	if !found {
		t.Fatalf("expected technical vocabulary violation, got %+v", res.Violations)
	}
	clean := s.Score(richText, ContextFragment)
	if res.OverallScore >= clean.OverallScore {
		t.Fatalf("violations should reduce score: %.1f >= %.1f", res.OverallScore, clean.OverallScore)
	}
}

func TestSecondaryContextLowerThreshold(t *testing.T) {
	s := New(DefaultConfig())
	// Text scoring between the secondary and primary thresholds.
	text := `Secrets and shadows wait for you, my dear... perhaps the hidden clue whispers. ` +
		`A mixture of longing and fear pulls at the heart and soul. ` +
		`Have you thought about the meaning? Reflect, explore, discover... could it be?`
	primary := s.Score(text, ContextFragment)
	secondary := s.Score(text, ContextSecondary)

	if primary.OverallScore != secondary.OverallScore {
		t.Fatalf("score must not depend on context class: %.1f vs %.1f",
			primary.OverallScore, secondary.OverallScore)
	}
	if secondary.OverallScore >= 80 && !secondary.MeetsThreshold {
		t.Fatal("secondary threshold not applied")
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := New(DefaultConfig())
	first := s.Score(richText, ContextFragment)
	for i := 0; i < 5; i++ {
		again := s.Score(richText, ContextFragment)
		if again.OverallScore != first.OverallScore {
			t.Fatalf("score drifted across calls: %.1f vs %.1f", again.OverallScore, first.OverallScore)
		}
	}
}

func TestScoreParallelInvocation(t *testing.T) {
	s := New(DefaultConfig())
	want := s.Score(richText, ContextFragment).OverallScore

	var wg sync.WaitGroup
	errs := make(chan float64, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Score(richText, ContextFragment).OverallScore; got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("parallel score diverged: %.1f != %.1f", got, want)
	}
}
