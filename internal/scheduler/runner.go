// Package scheduler runs periodic jobs on cron expressions with a seconds field.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Runner struct {
	cron    *cron.Cron
	log     zerolog.Logger
	baseCtx context.Context
}

// New builds a runner whose jobs receive baseCtx, so cancelling it stops in-flight work.
func New(baseCtx context.Context, logger zerolog.Logger) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	l := logger.With().Str("module", "scheduler").Logger()
	return &Runner{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:     l,
		baseCtx: baseCtx,
	}
}

// Add registers job under spec. name only labels log lines.
func (r *Runner) Add(name, spec string, job func(context.Context)) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		if r.baseCtx.Err() != nil {
			return
		}
		r.log.Debug().Str("job", name).Msg("cron job triggered")
		job(r.baseCtx)
	})
	if err != nil {
		return 0, err
	}
	r.log.Info().Str("job", name).Str("spec", spec).Msg("cron job registered")
	return id, nil
}

// Len reports the number of registered jobs.
func (r *Runner) Len() int { return len(r.cron.Entries()) }

func (r *Runner) Start() {
	r.log.Info().Msg("cron started")
	r.cron.Start()
}

// Stop prevents new runs and waits for running jobs to return.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info().Msg("cron stopped")
}
