// Package progress persists per-user progression state and mission
// attempts in SQLite, and hands out per-user locks so the engine can
// serialize transitions for a single user without contending across
// users.
package progress

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/mission"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS user_progress (
	user_id             TEXT PRIMARY KEY,
	status              TEXT NOT NULL,
	current_fragment_id TEXT,
	pending_fragment_id TEXT,
	pending_choice_id   TEXT,
	pending_since       TEXT,
	unlocked_clues      TEXT NOT NULL,
	completed_fragments TEXT NOT NULL,
	created_at          TEXT NOT NULL,
	updated_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS mission_attempts (
	attempt_id   TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	fragment_id  TEXT NOT NULL,
	kind         TEXT NOT NULL,
	score        INTEGER NOT NULL,
	passed       INTEGER NOT NULL,
	reason       TEXT,
	submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_user_fragment
	ON mission_attempts(user_id, fragment_id);

CREATE TABLE IF NOT EXISTS archetype_profiles (
	user_id    TEXT PRIMARY KEY,
	scores     TEXT NOT NULL,
	dominant   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
// #endregion schema

// #region store-struct

// Store manages progression state in SQLite. The mission_attempts table
// is append-only: rows survive soft resets.
type Store struct {
	db    *sql.DB
	locks sync.Map // user id -> *sync.Mutex
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. audit).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region locking

// Lock acquires the per-user mutex and returns its unlock func. Distinct
// users never contend; two calls for the same user serialize.
func (s *Store) Lock(userID string) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// #endregion locking

// #region get

// Get reads a user's progression record. Returns ErrNotFound when the
// user has never interacted.
func (s *Store) Get(userID string) (State, error) {
	var (
		st                            State
		current, pendingF, pendingC   sql.NullString
		pendingSince                  sql.NullString
		cluesJSON, completedJSON      string
		createdStr, updatedStr        string
	)

	err := s.db.QueryRow(
		`SELECT user_id, status, current_fragment_id, pending_fragment_id,
		        pending_choice_id, pending_since, unlocked_clues,
		        completed_fragments, created_at, updated_at
		 FROM user_progress WHERE user_id = ?`, userID,
	).Scan(&st.UserID, &st.Status, &current, &pendingF, &pendingC,
		&pendingSince, &cluesJSON, &completedJSON, &createdStr, &updatedStr)
	if err == sql.ErrNoRows {
		return State{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return State{}, fmt.Errorf("get progression %s: %w", userID, err)
	}

	if current.Valid {
		st.CurrentFragmentID = current.String
	}
	if pendingF.Valid {
		st.PendingFragmentID = pendingF.String
	}
	if pendingC.Valid {
		st.PendingChoiceID = pendingC.String
	}
	if pendingSince.Valid && pendingSince.String != "" {
		st.PendingSince, _ = time.Parse(time.RFC3339Nano, pendingSince.String)
	}
	if err := json.Unmarshal([]byte(cluesJSON), &st.UnlockedClues); err != nil {
		return State{}, fmt.Errorf("unmarshal clues: %w", err)
	}
	if err := json.Unmarshal([]byte(completedJSON), &st.CompletedFragments); err != nil {
		return State{}, fmt.Errorf("unmarshal completed: %w", err)
	}
	st.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	st.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return st, nil
}

// GetOrCreate reads a user's record, lazily creating it on the first
// interaction.
func (s *Store) GetOrCreate(userID string) (State, error) {
	st, err := s.Get(userID)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return State{}, err
	}
	st = NewState(userID, time.Now().UTC())
	if err := s.Save(st); err != nil {
		return State{}, err
	}
	return st, nil
}

// #endregion get

// #region save

// Save upserts a user's progression record.
func (s *Store) Save(st State) error {
	cluesJSON, err := json.Marshal(st.UnlockedClues)
	if err != nil {
		return fmt.Errorf("marshal clues: %w", err)
	}
	completedJSON, err := json.Marshal(st.CompletedFragments)
	if err != nil {
		return fmt.Errorf("marshal completed: %w", err)
	}

	var pendingSince interface{}
	if !st.PendingSince.IsZero() {
		pendingSince = st.PendingSince.Format(time.RFC3339Nano)
	}

	st.UpdatedAt = time.Now().UTC()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = st.UpdatedAt
	}

	_, err = s.db.Exec(
		`INSERT INTO user_progress
		   (user_id, status, current_fragment_id, pending_fragment_id,
		    pending_choice_id, pending_since, unlocked_clues,
		    completed_fragments, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   status = excluded.status,
		   current_fragment_id = excluded.current_fragment_id,
		   pending_fragment_id = excluded.pending_fragment_id,
		   pending_choice_id = excluded.pending_choice_id,
		   pending_since = excluded.pending_since,
		   unlocked_clues = excluded.unlocked_clues,
		   completed_fragments = excluded.completed_fragments,
		   updated_at = excluded.updated_at`,
		st.UserID, string(st.Status), st.CurrentFragmentID,
		st.PendingFragmentID, st.PendingChoiceID, pendingSince,
		string(cluesJSON), string(completedJSON),
		st.CreatedAt.Format(time.RFC3339Nano),
		st.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save progression %s: %w", st.UserID, err)
	}
	return nil
}

// #endregion save

// #region attempts

// AppendAttempt records a mission attempt. Attempts are immutable once
// written; a timed-out submission is still appended with passed=false.
func (s *Store) AppendAttempt(userID string, att mission.Attempt) error {
	_, err := s.db.Exec(
		`INSERT INTO mission_attempts
		   (attempt_id, user_id, fragment_id, kind, score, passed, reason, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		att.ID, userID, att.FragmentID, string(att.Kind), att.Score,
		boolToInt(att.Passed), att.Reason,
		att.SubmittedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// Attempts lists a user's attempts against one fragment, oldest first.
func (s *Store) Attempts(userID, fragmentID string) ([]mission.Attempt, error) {
	rows, err := s.db.Query(
		`SELECT attempt_id, fragment_id, kind, score, passed, reason, submitted_at
		 FROM mission_attempts
		 WHERE user_id = ? AND fragment_id = ?
		 ORDER BY submitted_at ASC`, userID, fragmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var atts []mission.Attempt
	for rows.Next() {
		var (
			att          mission.Attempt
			kind         string
			passed       int
			reason       sql.NullString
			submittedStr string
		)
		if err := rows.Scan(&att.ID, &att.FragmentID, &kind, &att.Score,
			&passed, &reason, &submittedStr); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		att.Kind = fragment.MissionKind(kind)
		att.Passed = passed != 0
		if reason.Valid {
			att.Reason = reason.String
		}
		att.SubmittedAt, _ = time.Parse(time.RFC3339Nano, submittedStr)
		atts = append(atts, att)
	}
	return atts, rows.Err()
}

// AttemptCount returns how many attempts a user has made against one
// fragment's mission.
func (s *Store) AttemptCount(userID, fragmentID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM mission_attempts WHERE user_id = ? AND fragment_id = ?`,
		userID, fragmentID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

// HasPassed reports whether the user has any passing attempt for a
// fragment's mission.
func (s *Store) HasPassed(userID, fragmentID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM mission_attempts
		 WHERE user_id = ? AND fragment_id = ? AND passed = 1`,
		userID, fragmentID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check passed: %w", err)
	}
	return n > 0, nil
}

// #endregion attempts

// #region profiles

// GetProfile reads a user's archetype profile. Returns ErrNotFound for
// users with no observed interactions.
func (s *Store) GetProfile(userID string) (archetype.Profile, error) {
	var (
		scoresJSON, dominant, updatedStr string
	)
	err := s.db.QueryRow(
		`SELECT scores, dominant, updated_at FROM archetype_profiles WHERE user_id = ?`,
		userID,
	).Scan(&scoresJSON, &dominant, &updatedStr)
	if err == sql.ErrNoRows {
		return archetype.Profile{}, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return archetype.Profile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}

	p := archetype.Profile{UserID: userID, Dominant: archetype.Trait(dominant)}
	if err := json.Unmarshal([]byte(scoresJSON), &p.Scores); err != nil {
		return archetype.Profile{}, fmt.Errorf("unmarshal scores: %w", err)
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return p, nil
}

// GetOrCreateProfile reads a user's profile, lazily creating an empty
// one on the first interaction.
func (s *Store) GetOrCreateProfile(userID string) (archetype.Profile, error) {
	p, err := s.GetProfile(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return archetype.Profile{}, err
	}
	p = archetype.NewProfile(userID)
	if err := s.SaveProfile(p); err != nil {
		return archetype.Profile{}, err
	}
	return p, nil
}

// SaveProfile upserts a user's archetype profile.
func (s *Store) SaveProfile(p archetype.Profile) error {
	scoresJSON, err := json.Marshal(p.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err = s.db.Exec(
		`INSERT INTO archetype_profiles (user_id, scores, dominant, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   scores = excluded.scores,
		   dominant = excluded.dominant,
		   updated_at = excluded.updated_at`,
		p.UserID, string(scoresJSON), string(p.Dominant),
		p.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.UserID, err)
	}
	return nil
}

// #endregion profiles

// #region reset

// Reset performs a soft reset: position and the append-only sets are
// cleared while the attempt history survives for audit.
func (s *Store) Reset(userID string) error {
	st, err := s.Get(userID)
	if err != nil {
		return err
	}
	st.Status = StatusIdle
	st.CurrentFragmentID = ""
	st.ClearPending()
	st.UnlockedClues = map[string]bool{}
	st.CompletedFragments = map[string]bool{}
	return s.Save(st)
}

// #endregion reset

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
