package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	"github.com/tour-microservice/internal/pkg/errors"
)

const topN = 3

// StatsUseCase собирает статистику распределения объектов по регионам
// и типам контента. Upstream не дает агрегатов, поэтому количество
// извлекается пробными запросами (страница размером 1, берется totalCount).
type StatsUseCase struct {
	tourRepo  repository.TourAPIRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	statsTTL  time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	tourRepo repository.TourAPIRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statsTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		tourRepo:  tourRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		statsTTL:  statsTTL,
	}
}

// RegionCounts возвращает количество объектов по регионам, по убыванию.
// Пробы выполняются параллельно и все доводятся до конца; упавшие регионы
// отбрасываются с предупреждением. Если упали все - ErrAggregateFailure.
func (uc *StatsUseCase) RegionCounts(ctx context.Context) ([]domain.RegionCount, error) {
	regions, err := uc.tourRepo.ListRegions(ctx, "")
	if err != nil {
		uc.logger.Error("Failed to list regions for stats", zap.Error(err))
		return nil, err
	}
	if len(regions) == 0 {
		return []domain.RegionCount{}, nil
	}

	counts := make([]domain.RegionCount, len(regions))
	failed := make([]bool, len(regions))

	var wg sync.WaitGroup
	for i, region := range regions {
		wg.Add(1)
		go func(i int, region domain.RegionDescriptor) {
			defer wg.Done()

			page, err := uc.tourRepo.ListByArea(ctx, domain.ListQuery{
				AreaCode: region.Code,
				PageSize: 1,
				PageNo:   1,
			})
			if err != nil {
				uc.logger.Warn("Region count probe failed",
					zap.String("area_code", region.Code),
					zap.String("name", region.Name),
					zap.Error(err))
				failed[i] = true
				return
			}

			counts[i] = domain.RegionCount{
				Code:  region.Code,
				Name:  region.Name,
				Count: page.TotalCount,
			}
		}(i, region)
	}
	wg.Wait()

	result := make([]domain.RegionCount, 0, len(regions))
	for i := range counts {
		if !failed[i] {
			result = append(result, counts[i])
		}
	}

	if len(result) == 0 {
		uc.logger.Error("All region count probes failed", zap.Int("regions", len(regions)))
		return nil, errors.ErrAggregateFailure
	}

	// Стабильная сортировка: равные количества сохраняют порядок справочника
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Count > result[b].Count
	})

	return result, nil
}

// TypeCounts возвращает количество объектов по типам контента, по убыванию.
// Семантика отказов та же, что у RegionCounts.
func (uc *StatsUseCase) TypeCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	types := domain.ContentTypes

	counts := make([]domain.CategoryCount, len(types))
	failed := make([]bool, len(types))

	var wg sync.WaitGroup
	for i, ct := range types {
		wg.Add(1)
		go func(i int, ct domain.ContentType) {
			defer wg.Done()

			page, err := uc.tourRepo.ListByArea(ctx, domain.ListQuery{
				ContentTypeID: ct.ID,
				PageSize:      1,
				PageNo:        1,
			})
			if err != nil {
				uc.logger.Warn("Type count probe failed",
					zap.String("content_type_id", ct.ID),
					zap.String("name", ct.Name),
					zap.Error(err))
				failed[i] = true
				return
			}

			counts[i] = domain.CategoryCount{
				ID:    ct.ID,
				Name:  ct.Name,
				Count: page.TotalCount,
			}
		}(i, ct)
	}
	wg.Wait()

	result := make([]domain.CategoryCount, 0, len(types))
	for i := range counts {
		if !failed[i] {
			result = append(result, counts[i])
		}
	}

	if len(result) == 0 {
		uc.logger.Error("All type count probes failed", zap.Int("types", len(types)))
		return nil, errors.ErrAggregateFailure
	}

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Count > result[b].Count
	})

	return result, nil
}

// Summary возвращает сводную статистику, используя кеш когда возможно
func (uc *StatsUseCase) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Stats summary fetched from cache")
		return cached, nil
	}

	return uc.RefreshSummary(ctx)
}

// RefreshSummary пересобирает сводку минуя кеш и обновляет кеш.
// Распределения по регионам и типам собираются параллельно.
func (uc *StatsUseCase) RefreshSummary(ctx context.Context) (*domain.StatsSummary, error) {
	var wg sync.WaitGroup
	var regions []domain.RegionCount
	var types []domain.CategoryCount
	var regionsErr, typesErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		regions, regionsErr = uc.RegionCounts(ctx)
	}()
	go func() {
		defer wg.Done()
		types, typesErr = uc.TypeCounts(ctx)
	}()
	wg.Wait()

	if regionsErr != nil {
		return nil, regionsErr
	}
	if typesErr != nil {
		return nil, typesErr
	}

	total := 0
	for _, r := range regions {
		total += r.Count
	}

	summary := &domain.StatsSummary{
		TotalCount:  total,
		TopRegions:  topRegions(regions),
		TopTypes:    topTypes(types),
		GeneratedAt: time.Now().UTC(),
	}

	if err := uc.cacheRepo.SetStats(ctx, summary, uc.statsTTL); err != nil {
		uc.logger.Warn("Failed to cache stats summary", zap.Error(err))
	}

	uc.logger.Info("Stats summary refreshed",
		zap.Int("total_count", total),
		zap.Int("regions", len(regions)),
		zap.Int("types", len(types)))

	return summary, nil
}

func topRegions(counts []domain.RegionCount) []domain.RegionCount {
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}

func topTypes(counts []domain.CategoryCount) []domain.CategoryCount {
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
