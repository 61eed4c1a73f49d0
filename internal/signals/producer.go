// Package signals derives interaction signals from raw submission data.
// The producer computes the measurable features the archetype classifier
// consumes: latency bucket, revisit flag, attempt count, and lexical
// marker densities.
package signals

import (
	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/lexicon"
)

// #region producer

// Producer computes archetype signals from interaction inputs.
type Producer struct{}

// NewProducer returns a Producer.
func NewProducer() *Producer {
	return &Producer{}
}

// Produce derives one signal from the input.
func (p *Producer) Produce(input Input) archetype.Signal {
	latency := archetype.LatencyFast
	if !input.EnteredAt.IsZero() && input.SubmittedAt.After(input.EnteredAt) {
		latency = archetype.BucketLatency(input.SubmittedAt.Sub(input.EnteredAt))
	}

	return archetype.Signal{
		Latency:          latency,
		Revisit:          input.Revisit,
		AttemptCount:     input.AttemptCount,
		EmotionalDensity: lexicon.EmotionalDensity(input.ResponseText),
		QuestionDensity:  lexicon.QuestionDensity(input.ResponseText),
		ObservedAt:       input.SubmittedAt,
	}
}

// #endregion producer
