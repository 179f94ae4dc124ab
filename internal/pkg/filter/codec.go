package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Порядки сортировки листинга
const (
	SortLatest = "latest"
	SortName   = "name"
)

// Размеры питомцев для pet-фильтра
const (
	PetSizeSmall  = "small"
	PetSizeMedium = "medium"
	PetSizeLarge  = "large"
)

// State - состояние фильтров листинга. Без потерь конвертируется
// в query-строку URL и обратно: значения по умолчанию (sort=latest, page=1)
// в строку не попадают, но всегда восстанавливаются при разборе.
type State struct {
	Keyword     string   `json:"keyword,omitempty"`
	RegionCode  string   `json:"region_code,omitempty"`
	CategoryIDs []string `json:"category_ids,omitempty"`
	PetFriendly bool     `json:"pet_friendly,omitempty"`
	PetSize     string   `json:"pet_size,omitempty"`
	SortOrder   string   `json:"sort_order"`
	Page        int      `json:"page"`
}

// Имена query-параметров
const (
	paramKeyword    = "keyword"
	paramRegion     = "region"
	paramCategories = "categories"
	paramPet        = "pet"
	paramPetSize    = "petSize"
	paramSort       = "sort"
	paramPage       = "page"
)

// Parse разбирает query-параметры в State, заполняя значения по умолчанию.
// Номер страницы меньше 1 приводится к 1.
func Parse(values url.Values) State {
	state := State{
		Keyword:    strings.TrimSpace(values.Get(paramKeyword)),
		RegionCode: strings.TrimSpace(values.Get(paramRegion)),
		SortOrder:  SortLatest,
		Page:       1,
	}

	if raw := strings.TrimSpace(values.Get(paramCategories)); raw != "" {
		parts := strings.Split(raw, ",")
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				state.CategoryIDs = append(state.CategoryIDs, trimmed)
			}
		}
	}

	if values.Get(paramPet) == "true" {
		state.PetFriendly = true
		state.PetSize = strings.TrimSpace(values.Get(paramPetSize))
	}

	if sort := values.Get(paramSort); sort == SortName {
		state.SortOrder = SortName
	}

	if page, err := strconv.Atoi(values.Get(paramPage)); err == nil && page > 1 {
		state.Page = page
	}

	return state
}

// Encode сериализует State в query-строку без значений по умолчанию,
// чтобы URL оставались минимальными.
func (s State) Encode() string {
	values := url.Values{}

	if s.Keyword != "" {
		values.Set(paramKeyword, s.Keyword)
	}
	if s.RegionCode != "" {
		values.Set(paramRegion, s.RegionCode)
	}
	if len(s.CategoryIDs) > 0 {
		values.Set(paramCategories, strings.Join(s.CategoryIDs, ","))
	}
	if s.PetFriendly {
		values.Set(paramPet, "true")
		if s.PetSize != "" {
			values.Set(paramPetSize, s.PetSize)
		}
	}
	if s.SortOrder == SortName {
		values.Set(paramSort, SortName)
	}
	if s.Page > 1 {
		values.Set(paramPage, strconv.Itoa(s.Page))
	}

	return values.Encode()
}

// Arrange переводит порядок сортировки в параметр arrange upstream API:
// C - по дате изменения, A - по названию.
func (s State) Arrange() string {
	if s.SortOrder == SortName {
		return "A"
	}
	return "C"
}
