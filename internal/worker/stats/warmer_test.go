package stats_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/worker/stats"
)

type fakeRefresher struct {
	calls atomic.Int32
	err   error
}

func (f *fakeRefresher) RefreshSummary(ctx context.Context) (*domain.StatsSummary, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.StatsSummary{TotalCount: 42}, nil
}

func TestWarmer_RefreshesOnStartAndStops(t *testing.T) {
	refresher := &fakeRefresher{}
	warmer := stats.NewWarmer(refresher, zap.NewNop(), time.Hour)

	done := make(chan struct{})
	go func() {
		_ = warmer.Start(context.Background())
		close(done)
	}()

	// Первый прогрев происходит сразу после запуска
	assert.Eventually(t, func() bool {
		return refresher.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	assert.NoError(t, warmer.Stop())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop")
	}
}

func TestWarmer_SurvivesRefreshFailure(t *testing.T) {
	refresher := &fakeRefresher{err: errors.ErrAggregateFailure}
	warmer := stats.NewWarmer(refresher, zap.NewNop(), 20*time.Millisecond)

	done := make(chan struct{})
	go func() {
		_ = warmer.Start(context.Background())
		close(done)
	}()

	// Ошибка прогрева не останавливает цикл: счетчик продолжает расти
	assert.Eventually(t, func() bool {
		return refresher.calls.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	assert.NoError(t, warmer.Stop())
	<-done
}

func TestWarmer_StopsOnContextCancel(t *testing.T) {
	refresher := &fakeRefresher{}
	warmer := stats.NewWarmer(refresher, zap.NewNop(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = warmer.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not react to context cancellation")
	}
}

func TestWarmer_DoubleStopIsSafe(t *testing.T) {
	warmer := stats.NewWarmer(&fakeRefresher{}, zap.NewNop(), time.Hour)
	assert.NoError(t, warmer.Stop())
	assert.NoError(t, warmer.Stop())
}
