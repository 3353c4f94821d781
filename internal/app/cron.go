package app

import (
	"context"
	"time"

	"github.com/lingo-polska/core/internal/modules/morphology"
	pkgcron "github.com/lingo-polska/core/internal/pkg/cron"
	"go.uber.org/zap"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, morphSvc *morphology.Service, logger *zap.Logger) {
	cronLogger := logger.Named("cron")

	sched.Register(pkgcron.Job{
		Name:        "rebuild_lemma_summaries",
		Description: "Rebuild the lemma summary table from the word forms table",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			if err := morphSvc.RebuildSummaries(ctx); err != nil {
				cronLogger.Warn("summary rebuild failed", zap.Error(err))
				return err
			}
			cronLogger.Info("lemma summaries rebuilt")
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "sweep_lookup_caches",
		Description: "Evict expired entries from the in-process lookup caches",
		Interval:    10 * time.Minute,
		Fn: func(ctx context.Context) error {
			evicted := morphSvc.SweepCaches()
			if evicted > 0 {
				cronLogger.Info("cache sweep", zap.Int("evicted", evicted))
			}
			return nil
		},
	})
}
