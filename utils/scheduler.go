package utils

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"coursehub/config"
	"coursehub/services/catalog"
	"coursehub/services/ledger"
)

const jobTimeout = 5 * time.Minute

// InitializeScheduler registers the maintenance jobs and starts the cron runner.
// Callers stop it with Stop() on shutdown.
func InitializeScheduler(cfg *config.Config, l *ledger.Ledger, store *catalog.Store) (*cron.Cron, error) {
	zap.L().Info("[SCHEDULER] initializing scheduler")

	c := cron.New()

	if _, err := c.AddFunc(cfg.ReconcileCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		ReconcileEnrollments(ctx, l)
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cfg.CategoryRefreshCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		RefreshCategoryCounts(ctx, store)
	}); err != nil {
		return nil, err
	}

	c.Start()
	zap.L().Info("[SCHEDULER] scheduler started",
		zap.String("reconcile", cfg.ReconcileCron),
		zap.String("categoryRefresh", cfg.CategoryRefreshCron))
	return c, nil
}

// ReconcileEnrollments re-applies the progress/status rule to every enrollment
func ReconcileEnrollments(ctx context.Context, l *ledger.Ledger) {
	changed, err := l.ReconcileStatuses(ctx)
	if err != nil {
		zap.L().Error("[SCHEDULER] error reconciling enrollment statuses", zap.Error(err))
		return
	}
	if changed > 0 {
		zap.L().Info("[SCHEDULER] reconciled enrollment statuses", zap.Int64("changed", changed))
	}
}

// RefreshCategoryCounts recomputes every category's course count
func RefreshCategoryCounts(ctx context.Context, store *catalog.Store) {
	changed, err := store.RefreshCourseCounts(ctx)
	if err != nil {
		zap.L().Error("[SCHEDULER] error refreshing category counts", zap.Error(err))
		return
	}
	if changed > 0 {
		zap.L().Info("[SCHEDULER] refreshed category counts", zap.Int("changed", changed))
	}
}
