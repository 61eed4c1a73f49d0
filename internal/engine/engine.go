// Package engine runs the user progression state machine. It holds the
// per-user position in the fragment graph, applies choices through the
// access gate, scores mission submissions, applies fragment triggers,
// and feeds every interaction into the archetype classifier.
//
// Transitions for one user are strictly serialized through the
// progression store's per-user locks; distinct users never contend
// beyond the graph store's read path.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/gate"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/signals"
)

// #region engine-struct

// Engine coordinates the graph store, gate, validator, classifier, and
// external collaborators for every user turn.
type Engine struct {
	graph      *graph.Store
	progress   *progress.Store
	trail      *audit.Trail
	gate       *gate.Gate
	validator  *mission.Validator
	classifier *archetype.Classifier
	producer   *signals.Producer
	ledger     Ledger
	tiers      TierSource
	config     Config
	log        *logrus.Entry
}

// #endregion engine-struct

// #region constructor

// New wires an engine. ledger may be nil when no rewards collaborator
// is attached; tiers is required.
func New(
	g *graph.Store,
	p *progress.Store,
	trail *audit.Trail,
	validator *mission.Validator,
	ledger Ledger,
	tiers TierSource,
	config Config,
	log *logrus.Entry,
) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		graph:      g,
		progress:   p,
		trail:      trail,
		gate:       gate.NewGate(),
		validator:  validator,
		classifier: archetype.NewClassifier(),
		producer:   signals.NewProducer(),
		ledger:     ledger,
		tiers:      tiers,
		config:     config,
		log:        log.WithField("component", "engine"),
	}
}

// #endregion constructor

// #region submit-choice

// SubmitChoice applies one choice for one user. A denied gate check is
// a normal result, not an error; errors are reserved for contract
// violations and infrastructure failures.
func (e *Engine) SubmitChoice(ctx context.Context, userID, fragmentID, choiceID string) (ChoiceResult, error) {
	unlock := e.progress.Lock(userID)
	defer unlock()

	st, err := e.progress.GetOrCreate(userID)
	if err != nil {
		return ChoiceResult{}, err
	}
	if st.Status == progress.StatusAwaitingMission {
		return ChoiceResult{}, fmt.Errorf("user %s has an unresolved mission on %s: %w",
			userID, st.PendingFragmentID, ErrMissionPending)
	}

	tier, err := e.tiers.TierOf(ctx, userID)
	if err != nil {
		return ChoiceResult{}, fmt.Errorf("resolve tier: %w", err)
	}

	// First interaction: the submitted fragment is the entry point.
	if st.CurrentFragmentID == "" {
		origin, err := e.graph.Get(fragmentID)
		if err != nil {
			return ChoiceResult{}, err
		}
		if !tier.Covers(origin.Tier) {
			e.appendAudit(audit.Entry{
				UserID: userID, FromFragmentID: fragmentID, FragmentID: fragmentID,
				Outcome: audit.OutcomeDenied,
				Reason:  string(gate.DenialInsufficientTier),
			})
			return ChoiceResult{
				DenialReason: gate.DenialInsufficientTier,
				DenialDetail: fmt.Sprintf("entry fragment requires tier %s", origin.Tier),
			}, nil
		}
		st.CurrentFragmentID = fragmentID
	} else if st.CurrentFragmentID != fragmentID {
		return ChoiceResult{}, fmt.Errorf("user %s is at %s, not %s: %w",
			userID, st.CurrentFragmentID, fragmentID, ErrStalePosition)
	}

	current, err := e.graph.Get(st.CurrentFragmentID)
	if err != nil {
		return ChoiceResult{}, err
	}
	choice, ok := current.ChoiceByID(choiceID)
	if !ok {
		return ChoiceResult{}, fmt.Errorf("fragment %s has no choice %s: %w",
			fragmentID, choiceID, ErrUnknownChoice)
	}
	target, err := e.graph.Get(choice.DestinationID)
	if err != nil {
		return ChoiceResult{}, err
	}

	passed, err := e.progress.HasPassed(userID, target.ID)
	if err != nil {
		return ChoiceResult{}, err
	}

	d := e.gate.CanEnter(tier, st.UnlockedClues, choice, target, passed)
	if !d.Allowed {
		if d.Reason == gate.DenialMissionPending {
			// Admitted except for the mission: hold the transition.
			st.Status = progress.StatusAwaitingMission
			st.PendingFragmentID = target.ID
			st.PendingChoiceID = choice.ID
			st.PendingSince = time.Now().UTC()
			if err := e.progress.Save(st); err != nil {
				return ChoiceResult{}, err
			}
			e.appendAudit(audit.Entry{
				UserID: userID, FromFragmentID: current.ID, FragmentID: target.ID,
				ChoiceID: choice.ID, ChoiceLabel: choice.Label,
				Outcome: audit.OutcomeAwaitingMission,
				Reason:  string(target.Mission.Kind),
			})
			e.log.WithFields(logrus.Fields{
				"user": userID, "fragment": target.ID, "mission": target.Mission.Kind,
			}).Info("transition held for mission")
			return ChoiceResult{AwaitingMission: true}, nil
		}

		e.appendAudit(audit.Entry{
			UserID: userID, FromFragmentID: current.ID, FragmentID: target.ID,
			ChoiceID: choice.ID, ChoiceLabel: choice.Label,
			Outcome: audit.OutcomeDenied, Reason: string(d.Reason),
		})
		e.log.WithFields(logrus.Fields{
			"user": userID, "fragment": target.ID, "reason": d.Reason,
		}).Info("entry denied")
		return ChoiceResult{DenialReason: d.Reason, DenialDetail: d.Detail}, nil
	}

	return e.advance(ctx, st, current, choice, target, signals.Input{
		UserID:      userID,
		FragmentID:  target.ID,
		SubmittedAt: time.Now().UTC(),
		Revisit:     st.CompletedFragments[target.ID],
	})
}

// #endregion submit-choice

// #region submit-mission

// SubmitMissionResponse evaluates a mission submission against the held
// transition. A failed attempt is recorded and the user stays waiting;
// a pass completes the held transition; reaching the configured attempt
// limit drops the user back to their current position.
func (e *Engine) SubmitMissionResponse(ctx context.Context, userID, fragmentID string, payload mission.Submission) (MissionResult, error) {
	unlock := e.progress.Lock(userID)
	defer unlock()

	st, err := e.progress.Get(userID)
	if errors.Is(err, progress.ErrNotFound) {
		return MissionResult{}, fmt.Errorf("user %s: %w", userID, ErrNoPendingMission)
	}
	if err != nil {
		return MissionResult{}, err
	}
	if st.Status != progress.StatusAwaitingMission || st.PendingFragmentID != fragmentID {
		return MissionResult{}, fmt.Errorf("user %s has no mission pending on %s: %w",
			userID, fragmentID, ErrNoPendingMission)
	}

	target, err := e.graph.Get(fragmentID)
	if err != nil {
		return MissionResult{}, err
	}
	if !target.HasMission() {
		return MissionResult{}, fmt.Errorf("fragment %s carries no mission: %w",
			fragmentID, ErrNoPendingMission)
	}

	count, err := e.progress.AttemptCount(userID, fragmentID)
	if err != nil {
		return MissionResult{}, err
	}
	max := e.config.MaxMissionAttempts
	if max > 0 && count >= max {
		st.ClearPending()
		if err := e.progress.Save(st); err != nil {
			return MissionResult{}, err
		}
		e.appendAudit(audit.Entry{
			UserID: userID, FromFragmentID: st.CurrentFragmentID, FragmentID: fragmentID,
			Outcome: audit.OutcomeMissionFailed, Reason: "attempt limit reached",
		})
		return MissionResult{AttemptsExhausted: true}, nil
	}

	sub := payload
	sub.EnteredAt = st.PendingSince
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}

	att := e.validator.Evaluate(fragmentID, *target.Mission, sub, st.CompletedFragments)
	if err := e.progress.AppendAttempt(userID, att); err != nil {
		return MissionResult{}, err
	}

	sig := signals.Input{
		UserID:       userID,
		FragmentID:   fragmentID,
		ResponseText: sub.Text,
		EnteredAt:    sub.EnteredAt,
		SubmittedAt:  sub.SubmittedAt,
		AttemptCount: count + 1,
	}

	if !att.Passed {
		e.appendAudit(audit.Entry{
			UserID: userID, FromFragmentID: st.CurrentFragmentID, FragmentID: fragmentID,
			Outcome: audit.OutcomeMissionFailed, Reason: att.Reason,
		})
		e.log.WithFields(logrus.Fields{
			"user": userID, "fragment": fragmentID,
			"score": att.Score, "attempt": count + 1,
		}).Info("mission failed")

		res := MissionResult{Attempt: att}
		if max > 0 && count+1 >= max {
			st.ClearPending()
			if err := e.progress.Save(st); err != nil {
				return MissionResult{}, err
			}
			res.AttemptsExhausted = true
		}
		if err := e.observe(st.UserID, sig); err != nil {
			return MissionResult{}, err
		}
		return res, nil
	}

	e.appendAudit(audit.Entry{
		UserID: userID, FromFragmentID: st.CurrentFragmentID, FragmentID: fragmentID,
		Outcome: audit.OutcomeMissionPassed,
		Reason:  fmt.Sprintf("score %d", att.Score),
	})

	current, err := e.graph.Get(st.CurrentFragmentID)
	if err != nil {
		return MissionResult{}, err
	}
	choice, _ := current.ChoiceByID(st.PendingChoiceID)

	sig.Revisit = st.CompletedFragments[target.ID]
	cres, err := e.advance(ctx, st, current, choice, target, sig)
	if err != nil {
		return MissionResult{}, err
	}
	return MissionResult{
		Passed:      true,
		Attempt:     att,
		Advanced:    cres.Advanced,
		NewFragment: cres.NewFragment,
	}, nil
}

// #endregion submit-mission

// #region advance

// advance completes an admitted transition: position moves, the prior
// fragment joins the completed set, triggers fire, and the classifier
// observes the interaction. Credits are delegated before the state
// write so a ledger failure leaves the transition unapplied.
func (e *Engine) advance(ctx context.Context, st progress.State, from fragment.Fragment, choice fragment.Choice, target fragment.Fragment, sig signals.Input) (ChoiceResult, error) {
	st.CurrentFragmentID = target.ID
	st.Complete(from.ID)
	st.ClearPending()

	credits := 0
	var clues []string
	for _, trg := range target.Triggers {
		if trg.UnlockClue != "" {
			st.Unlock(trg.UnlockClue)
			clues = append(clues, trg.UnlockClue)
		}
		credits += trg.CreditAmount
	}

	if credits > 0 && e.ledger != nil {
		if err := e.ledger.Credit(ctx, st.UserID, credits); err != nil {
			return ChoiceResult{}, fmt.Errorf("credit %s: %w", st.UserID, err)
		}
	}

	if err := e.progress.Save(st); err != nil {
		return ChoiceResult{}, err
	}

	e.appendAudit(audit.Entry{
		UserID: st.UserID, FromFragmentID: from.ID, FragmentID: target.ID,
		ChoiceID: choice.ID, ChoiceLabel: choice.Label,
		Outcome: audit.OutcomeAdvanced,
		CreditsAwarded: credits, CluesUnlocked: clues,
	})

	if err := e.observe(st.UserID, sig); err != nil {
		return ChoiceResult{}, err
	}

	e.log.WithFields(logrus.Fields{
		"user": st.UserID, "fragment": target.ID, "credits": credits,
	}).Info("advanced")

	return ChoiceResult{Advanced: true, NewFragment: &target}, nil
}

func (e *Engine) observe(userID string, input signals.Input) error {
	prof, err := e.progress.GetOrCreateProfile(userID)
	if err != nil {
		return err
	}
	prof = e.classifier.Observe(prof, e.producer.Produce(input))
	return e.progress.SaveProfile(prof)
}

// appendAudit logs and drops trail write failures; the trail is
// diagnostic and must not abort an applied transition.
func (e *Engine) appendAudit(entry audit.Entry) {
	if e.trail == nil {
		return
	}
	if err := e.trail.Append(entry); err != nil {
		e.log.WithError(err).Warn("audit append failed")
	}
}

// #endregion advance

// #region reads

// GetState returns a user's progression record, creating it lazily.
func (e *Engine) GetState(ctx context.Context, userID string) (progress.State, error) {
	unlock := e.progress.Lock(userID)
	defer unlock()
	return e.progress.GetOrCreate(userID)
}

// GetArchetype returns a user's archetype profile, creating it lazily.
func (e *Engine) GetArchetype(ctx context.Context, userID string) (archetype.Profile, error) {
	unlock := e.progress.Lock(userID)
	defer unlock()
	return e.progress.GetOrCreateProfile(userID)
}

// #endregion reads

// #region authoring

// PublishFragment admits a fragment into the graph.
func (e *Engine) PublishFragment(ctx context.Context, f fragment.Fragment) (string, error) {
	return e.graph.Publish(f)
}

// Finalize validates draft destinations and promotes the draft set.
func (e *Engine) Finalize(ctx context.Context) error {
	return e.graph.Finalize()
}

// #endregion authoring

// #region reset

// Reset soft-resets a user: sets clear, position clears, the attempt
// history and audit trail survive.
func (e *Engine) Reset(ctx context.Context, userID string) error {
	unlock := e.progress.Lock(userID)
	defer unlock()
	if err := e.progress.Reset(userID); err != nil {
		return err
	}
	e.appendAudit(audit.Entry{UserID: userID, Outcome: audit.OutcomeReset})
	return nil
}

// #endregion reset
