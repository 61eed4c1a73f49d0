// engined serves the narrative progression engine over gRPC.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/velvetpath/narrative-engine/internal/audit"
	"github.com/velvetpath/narrative-engine/internal/config"
	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/progress"
	"github.com/velvetpath/narrative-engine/internal/projection"
	"github.com/velvetpath/narrative-engine/internal/rpc"
	"github.com/velvetpath/narrative-engine/internal/scorer"
)

// #region collaborator-stand-ins

// staticTiers answers every lookup with the configured default tier.
// Replace with a real subscription client when one is attached.
type staticTiers struct {
	tier fragment.Tier
}

func (s staticTiers) TierOf(context.Context, string) (fragment.Tier, error) {
	return s.tier, nil
}

// logLedger records delegated credits in the log until a rewards
// service is attached.
type logLedger struct {
	log *logrus.Entry
}

func (l logLedger) Credit(_ context.Context, userID string, amount int) error {
	l.log.WithFields(logrus.Fields{"user": userID, "amount": amount}).Info("credit delegated")
	return nil
}

// #endregion collaborator-stand-ins

// #region main

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	log := logrus.NewEntry(logger)

	store, err := progress.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open progression store: %v", err)
	}
	defer store.Close()

	graphStore, err := graph.NewStore(store.DB(), scorer.New(cfg.Scorer()), cfg.Graph())
	if err != nil {
		log.Fatalf("open graph store: %v", err)
	}

	trail, err := audit.NewTrail(store.DB())
	if err != nil {
		log.Fatalf("open audit trail: %v", err)
	}

	tiers := projection.NewCachedTierSource(
		staticTiers{tier: fragment.Tier(cfg.DefaultTier)}, cfg.TierCacheTTL)

	eng := engine.New(
		graphStore, store, trail,
		mission.NewValidator(cfg.Mission()),
		logLedger{log: log.WithField("component", "ledger")},
		tiers, cfg.Engine(), log,
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}

	server := grpc.NewServer()
	rpc.NewServer(eng, log).Register(server)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		server.GracefulStop()
	}()

	log.WithFields(logrus.Fields{
		"addr": cfg.GRPCAddr, "db": cfg.DBPath,
	}).Info("engine listening")
	if err := server.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main
