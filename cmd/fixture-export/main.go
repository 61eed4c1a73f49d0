// fixture-export reconstructs a replay fixture from a user's audit
// trail: the published graph plus the user's recorded choice outcomes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/config"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/replay"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region main

func main() {
	_ = godotenv.Load()

	userID := flag.String("user", "", "user whose session to export")
	tierName := flag.String("tier", "open", "tier to replay the session under")
	dbPath := flag.String("db", "", "database path (overrides DB_PATH)")
	outPath := flag.String("out", "", "output fixture path (default <user>.json)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export -user <id> [-tier open] [-db narrative.db] [-out session.json]")
		os.Exit(2)
	}
	tier := fragment.Tier(*tierName)
	if !tier.Valid() {
		fmt.Fprintf(os.Stderr, "unknown tier %q\n", *tierName)
		os.Exit(2)
	}

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

	trail, err := audit.NewTrail(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open trail: %v\n", err)
		os.Exit(1)
	}
	entries, err := trail.ListByUser(*userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read trail: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "no recorded decisions for user %s\n", *userID)
		os.Exit(1)
	}

	graphStore, err := graph.NewStore(store.DB(), scorer.New(cfg.Scorer()), cfg.Graph())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open graph store: %v\n", err)
		os.Exit(1)
	}

	fixture := replay.FromTrail(entries, *userID, tier)
	fixture.Fragments = sortedFragments(graphStore.Snapshot())

	out := *outPath
	if out == "" {
		out = *userID + ".json"
	}
	if err := replay.Save(out, fixture); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exported %d steps and %d fragments to %s\n",
		len(fixture.Steps), len(fixture.Fragments), out)
}

// #endregion main

// #region helpers

func sortedFragments(snapshot map[string]fragment.Fragment) []fragment.Fragment {
	frags := make([]fragment.Fragment, 0, len(snapshot))
	for _, f := range snapshot {
		frags = append(frags, f)
	}
	sort.Slice(frags, func(i, j int) bool {
		if frags[i].SequenceLevel != frags[j].SequenceLevel {
			return frags[i].SequenceLevel < frags[j].SequenceLevel
		}
		return frags[i].ID < frags[j].ID
	})
	return frags
}

// #endregion helpers
