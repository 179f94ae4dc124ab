package domain

import "time"

// RegionCount - количество объектов в одном регионе
type RegionCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryCount - количество объектов одного типа контента
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsSummary - сводная статистика для дашборда.
// TotalCount - сумма по регионам: приближение, объект с несколькими
// регионами в upstream будет посчитан дважды.
type StatsSummary struct {
	TotalCount  int             `json:"total_count"`
	TopRegions  []RegionCount   `json:"top_regions"`
	TopTypes    []CategoryCount `json:"top_types"`
	GeneratedAt time.Time       `json:"generated_at"`
}
