package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
)

//go:generate mockery --name RunStore --filename runstore.go

// RunStore reads completed sync runs.
type RunStore interface {
	// LastCompletedRun returns the most recently completed run or ErrNotFound.
	LastCompletedRun(ctx context.Context) (*models.SyncRun, error)
}

// Gate decides whether a scheduled sync run should proceed. It only decides;
// triggering is the caller's job.
type Gate struct {
	store RunStore
}

// NewGate returns new Gate.
func NewGate(store RunStore) *Gate {
	return &Gate{
		store: store,
	}
}

// ShouldRun reports whether a new scheduled run should start: always when
// forced, when no run has ever completed, or when at least minInterval has
// passed since the last completed run.
func (g *Gate) ShouldRun(ctx context.Context, now time.Time, minInterval time.Duration, force bool) (bool, error) {
	if force {
		return true, nil
	}

	lastRun, err := g.store.LastCompletedRun(ctx)
	if errors.Is(err, platform.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't get last completed run: %w", err)
	}

	if lastRun.CompletedAt == nil {
		return true, nil
	}

	return now.Sub(*lastRun.CompletedAt) >= minInterval, nil
}
