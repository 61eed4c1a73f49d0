// replay drives a recorded session fixture through a fresh in-memory
// engine and reports per-step outcome matches. Exits non-zero when any
// step diverges from its expectation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/velvetpath/narrative-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print every step, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -fixture path/to/session.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.Load(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Replay: %s ===\n", fixture.Description)
	fmt.Printf("  user=%s tier=%s steps=%d\n", fixture.UserID, fixture.Tier, len(fixture.Steps))

	results, summary, err := replay.Run(fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		if !r.Matched || *verbose {
			mark := "ok"
			if !r.Matched {
				mark = "MISMATCH"
			}
			fmt.Printf("  [%d] %-8s expect=%-24s actual=%-24s %s\n",
				r.Index, r.Kind, r.Expected, r.Actual, mark)
			if r.Detail != "" {
				fmt.Printf("      %s\n", r.Detail)
			}
		}
	}

	fmt.Printf("steps=%d matched=%d mismatched=%d final=%s archetype=%s\n",
		summary.TotalSteps, summary.Matched, summary.Mismatched,
		summary.FinalFragmentID, summary.Dominant)

	if summary.Mismatched > 0 {
		os.Exit(1)
	}
}

// #endregion main
