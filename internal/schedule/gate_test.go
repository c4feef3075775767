package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/models/modelstesting"
	"github.com/craftline/catalog-sync/internal/schedule"
	"github.com/craftline/catalog-sync/internal/schedule/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now         = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
	minInterval = time.Hour
)

func TestUnitShouldRun(t *testing.T) {
	tests := []struct {
		name        string
		completedAt time.Time
		want        bool
	}{
		{
			name:        "interval elapsed",
			completedAt: now.Add(-2 * time.Hour),
			want:        true,
		},
		{
			name:        "interval elapsed exactly",
			completedAt: now.Add(-time.Hour),
			want:        true,
		},
		{
			name:        "interval not elapsed",
			completedAt: now.Add(-10 * time.Minute),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastRun := modelstesting.FakeRun(func(r *models.SyncRun) {
				r.Status = models.RunSuccess
				r.CompletedAt = &tt.completedAt
			})

			store := mocks.NewRunStore(t)
			store.On("LastCompletedRun", context.TODO()).Return(&lastRun, nil)

			should, err := schedule.NewGate(store).ShouldRun(context.TODO(), now, minInterval, false)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, should)
		})
	}
}

func TestUnitShouldRunForced(t *testing.T) {
	// force bypasses the store entirely
	store := mocks.NewRunStore(t)

	should, err := schedule.NewGate(store).ShouldRun(context.TODO(), now, minInterval, true)

	require.NoError(t, err, "shouldn't return any error")
	assert.True(t, should, "forced runs should always proceed")
}

func TestUnitShouldRunNoCompletedRuns(t *testing.T) {
	store := mocks.NewRunStore(t)
	store.On("LastCompletedRun", context.TODO()).Return(nil, platform.ErrNotFound)

	should, err := schedule.NewGate(store).ShouldRun(context.TODO(), now, minInterval, false)

	require.NoError(t, err, "shouldn't return any error")
	assert.True(t, should, "first ever run should always proceed")
}

func TestUnitShouldRunStoreError(t *testing.T) {
	store := mocks.NewRunStore(t)
	store.On("LastCompletedRun", context.TODO()).Return(nil, assert.AnError)

	should, err := schedule.NewGate(store).ShouldRun(context.TODO(), now, minInterval, false)

	require.ErrorContains(t, err, "can't get last completed run", "should return error about failed run lookup")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	assert.False(t, should)
}
