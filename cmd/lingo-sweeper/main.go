package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"

	"lingo/internal/modkit"
	"lingo/internal/modkit/module"
	"lingo/internal/platform/config"
	"lingo/internal/platform/logger"
	"lingo/internal/platform/store"

	resolvemod "lingo/internal/services/resolve/module"
)

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Flags
	var (
		fOnce     = flag.Bool("once", false, "run a single sweep and exit")
		fInterval = flag.Duration("interval", time.Hour, "sweep interval when running as a daemon")
		fStats    = flag.Bool("stats", false, "log cache stats after each sweep")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	rm := resolvemod.New(deps, resolvemod.Options{})
	defer rm.Close()

	module.Register(rm.Name(), rm.Ports())
	ports := module.MustPortsOf[resolvemod.Ports](rm)

	ctx := context.Background()

	sweep := func() {
		run := uuid.NewString()
		log := l.With().Str("run_id", run).Logger()

		started := time.Now()
		deleted, err := ports.Maintenance.SweepExpired(ctx)
		if err != nil {
			log.Error().Err(err).Msg("sweep failed")
			return
		}
		log.Info().
			Int64("deleted", deleted).
			Dur("took", time.Since(started)).
			Msg("sweep complete")

		if *fStats {
			stats, err := ports.Maintenance.Stats(ctx)
			if err != nil {
				log.Error().Err(err).Msg("stats failed")
				return
			}
			log.Info().
				Int64("static_entries", stats.StaticEntries).
				Int64("cache_entries", stats.CacheEntries).
				Int64("total_usage", stats.TotalUsage).
				Float64("mean_confidence", stats.MeanConfidence).
				Msg("cache stats")
		}
	}

	sweep()
	if *fOnce {
		return
	}

	tick := time.NewTicker(*fInterval)
	defer tick.Stop()
	for range tick.C {
		sweep()
	}
}
