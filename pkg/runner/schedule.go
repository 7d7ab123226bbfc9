package runner

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// Scheduler runs jobs on standard five-field cron specs. A run that is still going
// when its next tick fires is skipped.
type Scheduler struct {
	cron    *cron.Cron
	logger  arbor.ILogger
	baseCtx context.Context
}

func NewScheduler(logger arbor.ILogger, baseCtx context.Context) *Scheduler {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers job under spec.
func (s *Scheduler) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, func() {
		if s.baseCtx.Err() != nil {
			return
		}
		job(s.baseCtx)
	})
}

// Next is the next activation time of the first entry, for logging.
func (s *Scheduler) Next() string {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Next.Format("2006-01-02 15:04:05")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	if s.logger != nil {
		s.logger.Info().Str("next", s.Next()).Msg("Scheduler started")
	}
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info().Msg("Scheduler stopped")
	}
}
