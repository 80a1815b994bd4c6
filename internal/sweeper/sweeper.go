// Package sweeper drops expired analysis sessions on a fixed interval so the
// session table and cache do not grow without bound.
package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"shortspro/internal/storage"
	"shortspro/log"
)

const (
	defaultMaxAge   = 24 * time.Hour
	defaultInterval = 30 * time.Minute
)

// Config controls session expiry behavior.
type Config struct {
	MaxAge   time.Duration
	Interval time.Duration
}

// Sweeper removes expired sessions in the background.
type Sweeper struct {
	config Config

	ctx    context.Context
	cancel context.CancelFunc

	wg     sync.WaitGroup
	closed atomic.Bool
}

// New creates and starts a sweeper. An immediate first sweep clears sessions
// left behind by a previous run.
func New(cfg Config) *Sweeper {
	cfg = normalizeConfig(cfg)
	ctx, cancel := context.WithCancel(context.Background())

	s := &Sweeper{
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	s.wg.Add(1)
	go s.run()
	return s
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultMaxAge
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return cfg
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	s.sweepOnce()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	removed, err := storage.ExpireSessionsOlderThan(s.config.MaxAge)
	if err != nil {
		log.GetLogger().Warn("[Sweeper] session expiry failed", zap.Error(err))
		return
	}
	if removed > 0 {
		log.GetLogger().Info("[Sweeper] expired sessions removed",
			zap.Int64("count", removed),
			zap.Duration("max_age", s.config.MaxAge))
	}
}

// Close stops the background loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	s.cancel()
	s.wg.Wait()
}
