package domain

// ListQuery - параметры листинга по региону/типу.
// Пустые опциональные поля не передаются в upstream.
type ListQuery struct {
	AreaCode      string
	ContentTypeID string
	Arrange       string
	PageSize      int
	PageNo        int
}

// SearchQuery - параметры поиска по ключевому слову
type SearchQuery struct {
	Keyword       string
	AreaCode      string
	ContentTypeID string
	Arrange       string
	PageSize      int
	PageNo        int
}

// NearbyQuery - параметры поиска объектов вокруг точки.
// Координаты в градусах, радиус в метрах.
type NearbyQuery struct {
	Lon           float64
	Lat           float64
	RadiusMeters  int
	ContentTypeID string
	PageSize      int
	PageNo        int
}
