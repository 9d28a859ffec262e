package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/game"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// TurnAdvancer is the slice of the game controller the turn clock needs
type TurnAdvancer interface {
	Snapshot() *domain.Snapshot
	AdvanceTurn(ctx context.Context) game.Result
}

// TurnClockJob ends the current turn when nothing happened since the previous tick.
// The first tick only records the version.
type TurnClockJob struct {
	game TurnAdvancer

	mu          sync.Mutex
	lastVersion uint64
}

// NewTurnClockJob creates a turn clock for the given game
func NewTurnClockJob(g TurnAdvancer) *TurnClockJob {
	return &TurnClockJob{game: g}
}

// Process implements Job
func (j *TurnClockJob) Process(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	log := logger.FromContext(ctx)
	current := j.game.Snapshot()
	if current.Version != j.lastVersion {
		j.lastVersion = current.Version
		log.Debug(LogMsgTurnClockSkipped, "version", current.Version)
		return nil
	}

	res := j.game.AdvanceTurn(ctx)
	if !res.Applied {
		log.Warn(LogMsgTurnClockFailed, "code", res.Code)
		if res.Reason != nil {
			return res.Reason
		}
		return errors.New(LogMsgTurnClockFailed)
	}
	j.lastVersion = res.Version
	log.Info(LogMsgTurnClockAdvanced, "turn", j.game.Snapshot().Resources.Turn, "version", res.Version)
	return nil
}
