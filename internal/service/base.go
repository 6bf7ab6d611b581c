package service

import (
	"context"
	"errors"

	"github.com/maxviazov/wrestling-analytics-service/internal/analytics"
	"github.com/maxviazov/wrestling-analytics-service/internal/model"
	"github.com/maxviazov/wrestling-analytics-service/internal/repository"
	"github.com/rs/zerolog"
)

// base is embedded by every service: store access plus the fold-on-failure policy.
type base struct {
	store    repository.Store
	settings Settings
	log      zerolog.Logger
}

func newBase(store repository.Store, settings Settings, logger zerolog.Logger, component string) base {
	if settings.NoContest == "" {
		settings.NoContest = analytics.NoContestAsLoss
	}
	if settings.TopWrestlerMinMatches <= 0 {
		settings.TopWrestlerMinMatches = analytics.DefaultTopWrestlerMinMatches
	}
	l := logger.With().Str("module", "service").Str("component", component).Logger()
	return base{store: store, settings: settings, log: l}
}

// degrade records a read failure that is about to be replaced by a zero value.
// An unconfigured store and a missing row are expected states and stay at debug.
func (b *base) degrade(op string, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, repository.ErrNotConfigured), errors.Is(err, repository.ErrNotFound):
		b.log.Debug().Err(err).Str("op", op).Msg("read returned no data")
	case errors.Is(err, context.Canceled):
		b.log.Debug().Err(err).Str("op", op).Msg("read canceled")
	default:
		b.log.Warn().Err(err).Str("op", op).Msg("read failed; serving empty result")
	}
	if b.settings.Degraded != nil {
		b.settings.Degraded(op, err)
	}
}

// readTx runs fn inside one read snapshot when the store supports it, and directly otherwise.
func (b *base) readTx(ctx context.Context, fn repository.TxFunc) {
	if b.store.Tx == nil {
		_ = fn(ctx)
		return
	}
	err := b.store.Tx.WithinReadTx(ctx, fn)
	if err != nil && !errors.Is(err, errFolded) {
		// no snapshot could be opened; each read below degrades on its own
		b.log.Debug().Err(err).Msg("read snapshot unavailable")
		_ = fn(ctx)
	}
}

// errFolded aborts a snapshot early after the failure was already folded.
var errFolded = errors.New("read folded")

// allWrestlerStats loads every wrestler and every match and reduces them in memory.
// Either read failing yields an empty list, never wrestlers with zeroed records.
func (b *base) allWrestlerStats(ctx context.Context) []model.WrestlerStats {
	var (
		wrestlers []model.Wrestler
		matches   []model.Match
		loaded    bool
	)
	b.readTx(ctx, func(ctx context.Context) error {
		var err error
		wrestlers, err = b.store.Wrestlers.List(ctx)
		if err != nil {
			b.degrade("wrestlers.list", err)
			return errFolded
		}
		matches, err = b.store.Matches.ListAll(ctx)
		if err != nil {
			b.degrade("matches.list_all", err)
			return errFolded
		}
		loaded = true
		return nil
	})
	if !loaded {
		return []model.WrestlerStats{}
	}
	return analytics.ReduceAll(wrestlers, matches, b.settings.NoContest)
}
