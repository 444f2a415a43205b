package job

import (
	"TeleInvest/internal/api/config"
	"TeleInvest/internal/pkg/consts"
	"TeleInvest/internal/pkg/logger"
	"TeleInvest/internal/pkg/redis"
	"TeleInvest/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// DistributionJob pays out a share of each channel's monthly ad revenue
// to its shareholders. A (channel, period) journal row makes each payout
// run at most once per month even if the job fires again.
type DistributionJob struct {
	channelRepo      repository.ChannelRepo
	distributionRepo repository.DistributionRepo
}

func NewDistributionJob(channelRepo repository.ChannelRepo, distributionRepo repository.DistributionRepo) *DistributionJob {
	return &DistributionJob{channelRepo: channelRepo, distributionRepo: distributionRepo}
}

func (s *DistributionJob) Run() {
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, "job-"+uuid.NewString())

	locked, err := redis.TryLock(ctx, consts.DistributionLock, 1, 30*time.Minute, 1)
	if err != nil || !locked {
		log.WarnContext(ctx, "distribution skipped, lock not acquired", "err", err)
		return
	}
	defer redis.UnLock(ctx, consts.DistributionLock, 1)

	// The run fires at the start of a month and pays out the month that
	// just ended.
	period := time.Now().AddDate(0, -1, 0).Format("2006-01")
	payoutRatio := config.Cfg.Invest.PayoutRatio

	channels, err := s.channelRepo.ListActive(ctx)
	if err != nil {
		log.ErrorContext(ctx, "distribution channel scan failed", "err", err)
		return
	}

	applied := 0
	for _, channel := range channels {
		if channel.TotalShares <= 0 || channel.MonthlyRevenue <= 0 {
			continue
		}
		amountPerShare := channel.MonthlyRevenue * payoutRatio / float64(channel.TotalShares)

		ok, err := s.distributionRepo.RecordDistribution(ctx, channel.ID, period, amountPerShare)
		if err != nil {
			log.ErrorContext(ctx, "distribution failed",
				"channel_id", channel.ID, "period", period, "err", err)
			continue
		}
		if ok {
			applied++
			log.InfoContext(ctx, "earnings distributed",
				"channel_id", channel.ID, "period", period, "amount_per_share", amountPerShare)
		}
	}

	log.InfoContext(ctx, "distribution finished",
		"period", period, "channels", len(channels), "applied", applied)
}
