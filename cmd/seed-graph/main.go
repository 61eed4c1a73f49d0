// seed-graph publishes fragments from a YAML authoring file into the
// graph store and finalizes the draft set.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/velvetpath/narrative-engine/internal/config"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region authoring-file

// seedFile is the YAML authoring format: a flat fragment list.
type seedFile struct {
	Fragments []fragment.Fragment `yaml:"fragments"`
}

// #endregion authoring-file

// #region main

func main() {
	_ = godotenv.Load()

	filePath := flag.String("file", "", "YAML file with fragments to publish")
	dbPath := flag.String("db", "", "database path (overrides DB_PATH)")
	noFinalize := flag.Bool("no-finalize", false, "publish drafts without finalizing")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-graph -file graph.yaml [-db narrative.db] [-no-finalize]")
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

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *filePath, err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", *filePath, err)
		os.Exit(1)
	}
	if len(seed.Fragments) == 0 {
		fmt.Fprintf(os.Stderr, "%s contains no fragments\n", *filePath)
		os.Exit(1)
	}

	store, err := progress.NewStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	graphStore, err := graph.NewStore(store.DB(), scorer.New(cfg.Scorer()), cfg.Graph())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open graph store: %v\n", err)
		os.Exit(1)
	}

	published := 0
	for _, f := range seed.Fragments {
		id, err := graphStore.Publish(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "publish %s: %v\n", f.ID, err)
			os.Exit(1)
		}
		fmt.Printf("published %s (tier %s, level %d)\n", id, f.Tier, f.SequenceLevel)
		published++
	}

	if !*noFinalize {
		if err := graphStore.Finalize(); err != nil {
			fmt.Fprintf(os.Stderr, "finalize: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("finalized")
	}
	fmt.Printf("%d fragments published to %s\n", published, cfg.DBPath)
}

// #endregion main
