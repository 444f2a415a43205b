package cron

import (
	"TeleInvest/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	reconcileJob    *job.ReconcileJob
	distributionJob *job.DistributionJob
}

func NewCronManager(reconcileJob *job.ReconcileJob, distributionJob *job.DistributionJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		reconcileJob:    reconcileJob,
		distributionJob: distributionJob,
	}
}

// RegisterJobs wires the scheduled jobs: nightly rollup reconciliation
// and a monthly earnings payout.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.reconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@monthly", s.distributionJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
