package bootstrap

import (
	"log/slog"

	"github.com/osse101/Farmstead_Go/internal/config"
	"github.com/osse101/Farmstead_Go/internal/scheduler"
	"github.com/osse101/Farmstead_Go/internal/worker"
)

// turnClockQueueSize holds at most one pending tick; extra ticks are dropped
const turnClockQueueSize = 1

// TurnClock advances idle turns in the background
type TurnClock struct {
	pool  *worker.Pool
	sched *scheduler.Scheduler
}

// InitializeTurnClock starts the idle turn clock when TURN_INTERVAL is set.
// It returns nil when the clock is disabled.
func InitializeTurnClock(cfg *config.Config, game worker.TurnAdvancer) *TurnClock {
	if cfg.TurnInterval <= 0 {
		return nil
	}

	pool := worker.NewPool(1, turnClockQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(JobNameTurnClock, cfg.TurnInterval, worker.NewTurnClockJob(game))

	slog.Info(LogMsgTurnClockStarted, "interval", cfg.TurnInterval.String())
	return &TurnClock{pool: pool, sched: sched}
}

// Stop halts the ticker, then the worker
func (tc *TurnClock) Stop() {
	if tc == nil {
		return
	}
	tc.sched.Stop()
	tc.pool.Stop()
}
