// Package audit records every progression decision in an append-only
// SQLite table. The trail feeds fixture export and archetype analysis
// and survives soft resets of user state.
package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decision_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id          TEXT NOT NULL,
	from_fragment_id TEXT,
	fragment_id      TEXT,
	choice_id      TEXT,
	choice_label   TEXT,
	outcome        TEXT NOT NULL,
	reason         TEXT,
	credits        INTEGER NOT NULL DEFAULT 0,
	clues_json     TEXT,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_log_user
	ON decision_log(user_id, id);
`
// #endregion schema

// #region trail

// Trail appends decision entries to a shared database handle.
type Trail struct {
	db *sql.DB
}

// NewTrail migrates the decision_log table on the given handle. The
// handle is shared with the progression store so a turn's state write
// and its audit row live in the same database.
func NewTrail(db *sql.DB) (*Trail, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate decision log: %w", err)
	}
	return &Trail{db: db}, nil
}

// Append writes one entry. Entries are never updated or deleted.
func (t *Trail) Append(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var cluesJSON interface{}
	if len(e.CluesUnlocked) > 0 {
		b, err := json.Marshal(e.CluesUnlocked)
		if err != nil {
			return fmt.Errorf("marshal clues: %w", err)
		}
		cluesJSON = string(b)
	}

	_, err := t.db.Exec(
		`INSERT INTO decision_log
		   (user_id, from_fragment_id, fragment_id, choice_id, choice_label, outcome, reason, credits, clues_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID,
		nullIfEmpty(e.FromFragmentID),
		nullIfEmpty(e.FragmentID),
		nullIfEmpty(e.ChoiceID),
		nullIfEmpty(e.ChoiceLabel),
		string(e.Outcome),
		nullIfEmpty(e.Reason),
		e.CreditsAwarded,
		cluesJSON,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

// ListByUser returns a user's entries in insertion order. Used by the
// fixture exporter to reconstruct a session.
func (t *Trail) ListByUser(userID string) ([]Entry, error) {
	rows, err := t.db.Query(
		`SELECT user_id, from_fragment_id, fragment_id, choice_id, choice_label, outcome, reason, credits, clues_json, created_at
		 FROM decision_log WHERE user_id = ? ORDER BY id ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                                 Entry
			fromFragmentID                    sql.NullString
			fragmentID, choiceID, choiceLabel sql.NullString
			reason, cluesJSON                 sql.NullString
			createdStr                        string
		)
		if err := rows.Scan(&e.UserID, &fromFragmentID, &fragmentID, &choiceID, &choiceLabel,
			&e.Outcome, &reason, &e.CreditsAwarded, &cluesJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.FromFragmentID = fromFragmentID.String
		e.FragmentID = fragmentID.String
		e.ChoiceID = choiceID.String
		e.ChoiceLabel = choiceLabel.String
		e.Reason = reason.String
		if cluesJSON.Valid {
			if err := json.Unmarshal([]byte(cluesJSON.String), &e.CluesUnlocked); err != nil {
				return nil, fmt.Errorf("unmarshal clues: %w", err)
			}
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion trail

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
