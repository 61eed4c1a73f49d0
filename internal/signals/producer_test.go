package signals

import (
	"testing"
	"time"

	"github.com/velvetpath/narrative-engine/internal/archetype"
)

func TestProduceLatencyBucket(t *testing.T) {
	p := NewProducer()
	entered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sig := p.Produce(Input{
		EnteredAt:   entered,
		SubmittedAt: entered.Add(90 * time.Second),
	})
	if sig.Latency != archetype.LatencySlow {
		t.Fatalf("expected slow latency, got %s", sig.Latency)
	}

	sig = p.Produce(Input{
		EnteredAt:   entered,
		SubmittedAt: entered.Add(5 * time.Second),
	})
	if sig.Latency != archetype.LatencyFast {
		t.Fatalf("expected fast latency, got %s", sig.Latency)
	}
}

func TestProduceLexicalDensities(t *testing.T) {
	p := NewProducer()
	sig := p.Produce(Input{
		ResponseText: "I feel such longing in my heart. Why does she hide? What does it mean?",
		SubmittedAt:  time.Now(),
	})
	if sig.EmotionalDensity <= 0 {
		t.Fatalf("expected emotional density > 0, got %.3f", sig.EmotionalDensity)
	}
	if sig.QuestionDensity <= 0 {
		t.Fatalf("expected question density > 0, got %.3f", sig.QuestionDensity)
	}

	flat := p.Produce(Input{ResponseText: "ok", SubmittedAt: time.Now()})
	if flat.EmotionalDensity != 0 || flat.QuestionDensity != 0 {
		t.Fatalf("flat text should carry zero densities: %+v", flat)
	}
}
