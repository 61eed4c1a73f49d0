// Package graph holds the fragment graph store: the globally shared,
// append-only arena of published narrative fragments, keyed by stable id.
// The graph is a general directed graph; return and revisit choices make
// cycles legal by design.
package graph

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS fragments (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    sequence_level INTEGER NOT NULL,
    tier           TEXT NOT NULL,
    content        TEXT NOT NULL,
    choices        TEXT NOT NULL,
    triggers       TEXT NOT NULL,
    mission        TEXT,
    active         INTEGER NOT NULL DEFAULT 1,
    finalized      INTEGER NOT NULL DEFAULT 0,
    created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_fragments_tier_seq ON fragments(tier, sequence_level);
`

// #endregion schema

// #region store-struct

// Store manages the fragments table and an in-memory snapshot for readers.
// Readers never block on already-published fragments: reads go against the
// live map under an RWMutex; the publish critical section is the only
// writer.
type Store struct {
	db     *sql.DB
	scorer *scorer.Scorer
	config Config

	mu   sync.RWMutex
	live map[string]fragment.Fragment // finalized fragments, by id
	// drafts holds published-but-not-finalized fragments when deferred
	// validation is in effect.
	drafts map[string]fragment.Fragment
}

// #endregion store-struct

// #region constructor

// NewStore creates tables, loads any persisted fragments, and returns a Store.
func NewStore(db *sql.DB, sc *scorer.Scorer, config Config) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("graph schema: %w", err)
	}
	s := &Store{
		db:     db,
		scorer: sc,
		config: config,
		live:   map[string]fragment.Fragment{},
		drafts: map[string]fragment.Fragment{},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(
		`SELECT id, title, sequence_level, tier, content, choices, triggers, mission, active, finalized, created_at
		 FROM fragments`,
	)
	if err != nil {
		return fmt.Errorf("load fragments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f fragment.Fragment
		var choicesJSON, triggersJSON, createdStr string
		var missionJSON sql.NullString
		var active, finalized int
		if err := rows.Scan(&f.ID, &f.Title, &f.SequenceLevel, &f.Tier, &f.Content,
			&choicesJSON, &triggersJSON, &missionJSON, &active, &finalized, &createdStr); err != nil {
			return fmt.Errorf("scan fragment: %w", err)
		}
		if err := json.Unmarshal([]byte(choicesJSON), &f.Choices); err != nil {
			return fmt.Errorf("unmarshal choices %s: %w", f.ID, err)
		}
		if err := json.Unmarshal([]byte(triggersJSON), &f.Triggers); err != nil {
			return fmt.Errorf("unmarshal triggers %s: %w", f.ID, err)
		}
		if missionJSON.Valid && missionJSON.String != "" {
			f.Mission = &fragment.Mission{}
			if err := json.Unmarshal([]byte(missionJSON.String), f.Mission); err != nil {
				return fmt.Errorf("unmarshal mission %s: %w", f.ID, err)
			}
		}
		f.Active = active == 1
		f.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if finalized == 1 {
			s.live[f.ID] = f
		} else {
			s.drafts[f.ID] = f
		}
	}
	return rows.Err()
}

// #endregion constructor

// #region publish

// Publish admits a fragment into the graph. Content-bearing fragments must
// pass the consistency scorer; a failing score refuses admission with
// AdmissionConsistencyRejected. Under StrictOrder every choice destination
// must already resolve; otherwise destination validation is deferred to
// Finalize. Returns the fragment id (assigned when empty).
func (s *Store) Publish(f fragment.Fragment) (string, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if !f.Tier.Valid() {
		return "", &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
			Detail: fmt.Sprintf("unknown tier %q", f.Tier)}
	}
	if f.SequenceLevel < 1 {
		return "", &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
			Detail: "sequence_level must be >= 1"}
	}
	if f.Mission != nil {
		if detail := missionRequirementError(f.Mission); detail != "" {
			return "", &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
				Detail: detail}
		}
	}

	res := s.scorer.Score(f.Content, scorer.ContextFragment)
	if !res.MeetsThreshold {
		detail := fmt.Sprintf("consistency score %.1f below threshold", res.OverallScore)
		if len(res.Violations) > 0 {
			detail = fmt.Sprintf("%s: %s", detail, res.Violations[0].Rule)
		}
		return "", &AdmissionError{Kind: AdmissionConsistencyRejected, FragmentID: f.ID, Detail: detail}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.live[f.ID]; exists {
		return "", &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
			Detail: "fragment id already published"}
	}
	if _, exists := s.drafts[f.ID]; exists {
		return "", &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
			Detail: "fragment id already pending finalize"}
	}

	if s.config.StrictOrder {
		for _, c := range f.Choices {
			if !s.resolvesLocked(c.DestinationID) {
				return "", &AdmissionError{Kind: AdmissionDanglingReference, FragmentID: f.ID,
					Detail: fmt.Sprintf("choice %q destination %s unresolved", c.Label, c.DestinationID)}
			}
		}
	}

	f.Active = true
	f.CreatedAt = time.Now().UTC()
	if err := s.insert(f, s.config.StrictOrder); err != nil {
		return "", err
	}

	if s.config.StrictOrder {
		s.live[f.ID] = f
	} else {
		s.drafts[f.ID] = f
	}
	return f.ID, nil
}

// missionRequirementError reports a missing kind-specific scoring input.
// A mission without its inputs can never be passed, so it is rejected at
// publish time rather than holding users in the waiting state.
func missionRequirementError(m *fragment.Mission) string {
	if !m.Kind.Valid() {
		return fmt.Sprintf("unknown mission kind %q", m.Kind)
	}
	switch m.Kind {
	case fragment.MissionObservation:
		if m.HiddenElement == "" {
			return "observation mission has no hidden element"
		}
	case fragment.MissionComprehension, fragment.MissionSynthesis:
		if len(m.Keywords) == 0 {
			return fmt.Sprintf("%s mission has no keywords", m.Kind)
		}
	}
	return ""
}

func (s *Store) insert(f fragment.Fragment, finalized bool) error {
	choicesJSON, err := json.Marshal(f.Choices)
	if err != nil {
		return fmt.Errorf("marshal choices: %w", err)
	}
	triggersJSON, err := json.Marshal(f.Triggers)
	if err != nil {
		return fmt.Errorf("marshal triggers: %w", err)
	}
	var missionPtr interface{}
	if f.Mission != nil {
		missionJSON, err := json.Marshal(f.Mission)
		if err != nil {
			return fmt.Errorf("marshal mission: %w", err)
		}
		missionPtr = string(missionJSON)
	}
	fin := 0
	if finalized {
		fin = 1
	}
	_, err = s.db.Exec(
		`INSERT INTO fragments (id, title, sequence_level, tier, content, choices, triggers, mission, active, finalized, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`,
		f.ID, f.Title, f.SequenceLevel, string(f.Tier), f.Content,
		string(choicesJSON), string(triggersJSON), missionPtr, fin,
		f.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert fragment: %w", err)
	}
	return nil
}

func (s *Store) resolvesLocked(id string) bool {
	if _, ok := s.live[id]; ok {
		return true
	}
	_, ok := s.drafts[id]
	return ok
}

// #endregion publish

// #region finalize

// Finalize validates every draft fragment's choice destinations against
// the union of live and draft fragments, checks tier ascent ordering, and
// promotes drafts to the live snapshot. The first unresolved destination
// aborts the pass with AdmissionDanglingReference; no drafts are promoted.
func (s *Store) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lookup := func(id string) (fragment.Fragment, bool) {
		if f, ok := s.live[id]; ok {
			return f, true
		}
		f, ok := s.drafts[id]
		return f, ok
	}

	for _, f := range s.drafts {
		for _, c := range f.Choices {
			dest, ok := lookup(c.DestinationID)
			if !ok {
				return &AdmissionError{Kind: AdmissionDanglingReference, FragmentID: f.ID,
					Detail: fmt.Sprintf("choice %q destination %s unresolved", c.Label, c.DestinationID)}
			}
			// Tier ascent must follow story order: an edge into a higher
			// tier may not move backwards in sequence_level.
			if dest.Tier.Rank() > f.Tier.Rank() && dest.SequenceLevel < f.SequenceLevel {
				return &AdmissionError{Kind: AdmissionInvalidFragment, FragmentID: f.ID,
					Detail: fmt.Sprintf("edge to %s ascends tier against sequence order", dest.ID)}
			}
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin finalize tx: %w", err)
	}
	defer tx.Rollback()

	for id := range s.drafts {
		if _, err := tx.Exec(`UPDATE fragments SET finalized = 1 WHERE id = ?`, id); err != nil {
			return fmt.Errorf("finalize %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize: %w", err)
	}

	for id, f := range s.drafts {
		s.live[id] = f
	}
	s.drafts = map[string]fragment.Fragment{}
	return nil
}

// #endregion finalize

// #region reads

// Get returns the finalized fragment with the given id.
// Retired fragments still resolve so existing user references stay valid.
func (s *Store) Get(id string) (fragment.Fragment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.live[id]
	if !ok {
		return fragment.Fragment{}, fmt.Errorf("get fragment %s: %w", id, ErrNotFound)
	}
	return f, nil
}

// ChoicesFrom returns the ordered outgoing choices of a fragment.
func (s *Store) ChoicesFrom(id string) ([]fragment.Choice, error) {
	f, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	out := make([]fragment.Choice, len(f.Choices))
	copy(out, f.Choices)
	return out, nil
}

// ListByTier returns active finalized fragments of the given tier ordered
// by sequence level. Reads through SQLite to use the (tier, sequence_level)
// index.
func (s *Store) ListByTier(tier fragment.Tier) ([]fragment.Fragment, error) {
	rows, err := s.db.Query(
		`SELECT id FROM fragments
		 WHERE tier = ? AND active = 1 AND finalized = 1
		 ORDER BY sequence_level ASC`,
		string(tier),
	)
	if err != nil {
		return nil, fmt.Errorf("list by tier: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]fragment.Fragment, 0, len(ids))
	for _, id := range ids {
		if f, ok := s.live[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// Snapshot returns a copy of the live fragment set for iteration without
// holding the store lock.
func (s *Store) Snapshot() map[string]fragment.Fragment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]fragment.Fragment, len(s.live))
	for id, f := range s.live {
		out[id] = f
	}
	return out
}

// #endregion reads

// #region retire

// Retire soft-retires a fragment: it is removed from tier listings but
// still resolves by id. Fragments are never hard-deleted while user state
// may reference them.
func (s *Store) Retire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.live[id]
	if !ok {
		return fmt.Errorf("retire fragment %s: %w", id, ErrNotFound)
	}
	if _, err := s.db.Exec(`UPDATE fragments SET active = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("retire fragment: %w", err)
	}
	f.Active = false
	s.live[id] = f
	return nil
}

// #endregion retire
