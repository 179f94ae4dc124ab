package stats

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
)

// SummaryRefresher пересобирает сводную статистику и обновляет кеш
type SummaryRefresher interface {
	RefreshSummary(ctx context.Context) (*domain.StatsSummary, error)
}

// Warmer периодически прогревает кеш сводной статистики, чтобы
// запросы дашборда не ждали медленный fan-out к upstream API.
type Warmer struct {
	refresher SummaryRefresher
	logger    *zap.Logger
	interval  time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWarmer создает новый Warmer
func NewWarmer(refresher SummaryRefresher, logger *zap.Logger, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Warmer{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Name возвращает имя воркера
func (w *Warmer) Name() string {
	return "stats-warmer"
}

// Start запускает цикл прогрева. Первый прогрев выполняется сразу,
// дальше - по интервалу. Ошибка прогрева не останавливает цикл.
func (w *Warmer) Start(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stats warmer context cancelled")
			return nil
		case <-w.stopCh:
			w.logger.Info("Stats warmer stopped")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// Stop останавливает воркер
func (w *Warmer) Stop() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	return nil
}

func (w *Warmer) refresh(ctx context.Context) {
	start := time.Now()

	summary, err := w.refresher.RefreshSummary(ctx)
	if err != nil {
		w.logger.Warn("Stats warmup failed", zap.Error(err))
		return
	}

	w.logger.Info("Stats cache warmed",
		zap.Int("total_count", summary.TotalCount),
		zap.Duration("duration", time.Since(start)))
}
