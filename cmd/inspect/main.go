// inspect prints the published graph and, for a given user, their
// progression state, archetype profile, and decision trail.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/velvetpath/narrative-engine/internal/archetype"
	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/config"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "database path (overrides DB_PATH)")
	userID := flag.String("user", "", "show one user's progression instead of the graph")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	store, err := progress.NewStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *userID != "" {
		err = runUserMode(store, cfg, *userID, *jsonOut)
	} else {
		err = runGraphMode(store, cfg, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region graph-mode

type graphRow struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Sequence int           `json:"sequence_level"`
	Tier     fragment.Tier `json:"tier"`
	Choices  int           `json:"choices"`
	Mission  string        `json:"mission,omitempty"`
	Active   bool          `json:"active"`
}

func runGraphMode(store *progress.Store, cfg config.Config, jsonOut bool) error {
	gs, err := graph.NewStore(store.DB(), scorer.New(cfg.Scorer()), cfg.Graph())
	if err != nil {
		return err
	}

	var rows []graphRow
	for _, tier := range []fragment.Tier{fragment.TierOpen, fragment.TierMid, fragment.TierPremium} {
		frags, err := gs.ListByTier(tier)
		if err != nil {
			return err
		}
		for _, f := range frags {
			r := graphRow{
				ID:       f.ID,
				Title:    f.Title,
				Sequence: f.SequenceLevel,
				Tier:     f.Tier,
				Choices:  len(f.Choices),
				Active:   f.Active,
			}
			if f.HasMission() {
				r.Mission = string(f.Mission.Kind)
			}
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sequence != rows[j].Sequence {
			return rows[i].Sequence < rows[j].Sequence
		}
		return rows[i].ID < rows[j].ID
	})

	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no fragments published")
		return nil
	}
	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-20s  %3s  %-7s  %7s  %-13s  %-24s\n",
		"Fragment", "Seq", "Tier", "Choices", "Mission", "Title")
	fmt.Printf("%-20s+-%3s+-%-7s+-%7s+-%-13s+-%-24s\n",
		"--------------------", "---", "-------", "-------", "-------------", "------------------------")
	for _, r := range rows {
		mission := "—"
		if r.Mission != "" {
			mission = r.Mission
		}
		id := r.ID
		if !r.Active {
			id += " (retired)"
		}
		fmt.Printf("%-20s  %3d  %-7s  %7d  %-13s  %-24s\n",
			id, r.Sequence, r.Tier, r.Choices, mission, truncate(r.Title, 24))
	}
	fmt.Printf("\n%d fragments\n", len(rows))
	return nil
}

// #endregion graph-mode

// #region user-mode

type userOutput struct {
	UserID    string           `json:"user_id"`
	Status    progress.Status  `json:"status"`
	Current   string           `json:"current_fragment_id,omitempty"`
	Pending   string           `json:"pending_fragment_id,omitempty"`
	Clues     []string         `json:"unlocked_clues,omitempty"`
	Completed []string         `json:"completed_fragments,omitempty"`
	Archetype *archetypeOutput `json:"archetype,omitempty"`
	Trail     []audit.Entry    `json:"trail,omitempty"`
}

type archetypeOutput struct {
	Dominant archetype.Trait             `json:"dominant"`
	Scores   map[archetype.Trait]float64 `json:"scores"`
}

func runUserMode(store *progress.Store, cfg config.Config, userID string, jsonOut bool) error {
	st, err := store.Get(userID)
	if err != nil {
		if errors.Is(err, progress.ErrNotFound) {
			return fmt.Errorf("no progression recorded for user %s", userID)
		}
		return err
	}

	out := userOutput{
		UserID:    st.UserID,
		Status:    st.Status,
		Current:   st.CurrentFragmentID,
		Pending:   st.PendingFragmentID,
		Clues:     sortedKeys(st.UnlockedClues),
		Completed: sortedKeys(st.CompletedFragments),
	}
	if prof, err := store.GetProfile(userID); err == nil {
		out.Archetype = &archetypeOutput{Dominant: prof.Dominant, Scores: prof.Scores}
	} else if !errors.Is(err, progress.ErrNotFound) {
		return err
	}

	trail, err := audit.NewTrail(store.DB())
	if err != nil {
		return err
	}
	out.Trail, err = trail.ListByUser(userID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("User:      %s\n", out.UserID)
	fmt.Printf("Status:    %s\n", out.Status)
	fmt.Printf("Position:  %s\n", orDash(out.Current))
	if out.Pending != "" {
		fmt.Printf("Pending:   %s (since %s)\n", out.Pending, st.PendingSince.Format("2006-01-02T15:04:05Z"))
	}
	fmt.Printf("Clues:     %s\n", orDash(strings.Join(out.Clues, ", ")))
	fmt.Printf("Completed: %s\n", orDash(strings.Join(out.Completed, ", ")))

	if out.Archetype != nil {
		fmt.Printf("\nArchetype (dominant: %s):\n", out.Archetype.Dominant)
		for _, t := range archetype.TraitPriority {
			fmt.Printf("  %-12s %.2f\n", t, out.Archetype.Scores[t])
		}
	}

	if len(out.Trail) > 0 {
		fmt.Printf("\nDecision trail:\n")
		fmt.Printf("%-20s  %-20s  %-16s  %s\n", "From", "Fragment", "Outcome", "Time")
		for _, e := range out.Trail {
			fmt.Printf("%-20s  %-20s  %-16s  %s\n",
				orDash(e.FromFragmentID), orDash(e.FragmentID), e.Outcome,
				e.CreatedAt.Format("2006-01-02T15:04:05Z"))
		}
	}
	return nil
}

// #endregion user-mode

// #region output

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// #endregion output
