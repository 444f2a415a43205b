package job

import (
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/logger"
	"TeleInvest/internal/pkg/redis"
	"TeleInvest/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ReconcileJob recomputes every profile rollup from the ledger and
// overwrites rows that drifted. The ledger is the source of truth; the
// rollups are just a cached view of it.
type ReconcileJob struct {
	investRepo  repository.InvestmentRepo
	profileRepo repository.ProfileRepo
}

func NewReconcileJob(investRepo repository.InvestmentRepo, profileRepo repository.ProfileRepo) *ReconcileJob {
	return &ReconcileJob{investRepo: investRepo, profileRepo: profileRepo}
}

func (s *ReconcileJob) Run() {
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, "job-"+uuid.NewString())

	locked, err := redis.TryLock(ctx, consts.ReconcileLock, 1, 10*time.Minute, 1)
	if err != nil || !locked {
		log.WarnContext(ctx, "reconcile skipped, lock not acquired", "err", err)
		return
	}
	defer redis.UnLock(ctx, consts.ReconcileLock, 1)

	start := time.Now()
	sums, err := s.investRepo.SumByUser(ctx)
	if err != nil {
		log.ErrorContext(ctx, "reconcile ledger scan failed", "err", err)
		return
	}

	corrected := 0
	for _, sum := range sums {
		changed, err := s.profileRepo.Overwrite(ctx, sum.UserID, sum.TotalInvested, sum.CurrentValue, sum.TotalEarnings)
		if err != nil {
			log.ErrorContext(ctx, "reconcile profile overwrite failed", "user_id", sum.UserID, "err", err)
			continue
		}
		if changed {
			corrected++
			log.WarnContext(ctx, "profile rollup drifted, corrected",
				"user_id", sum.UserID,
				"total_invested", sum.TotalInvested,
				"portfolio_value", sum.CurrentValue,
				"total_earnings", sum.TotalEarnings)
		}
	}

	log.InfoContext(ctx, "reconcile finished",
		"profiles", len(sums), "corrected", corrected, "cost", time.Since(start).String())
}
