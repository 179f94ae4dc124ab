package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/filter"
	"github.com/tour-microservice/internal/pkg/utils"
	"github.com/tour-microservice/internal/usecase"
)

func newListingUseCase(tour *MockTourAPIRepository, cache *MockCacheRepository, bookmarks *MockBookmarkRepository) *usecase.ListingUseCase {
	return usecase.NewListingUseCase(tour, cache, bookmarks, zap.NewNop(), 5*time.Minute, 24*time.Hour, 10)
}

func TestListingUseCase_ListRegions(t *testing.T) {
	ctx := context.Background()
	regions := []domain.RegionDescriptor{{Code: "1", Name: "서울"}}

	t.Run("cache hit skips gateway", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		mockCache.On("GetRegions", ctx, "").Return(regions, nil)

		resp, err := uc.ListRegions(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		mockTour.AssertNotCalled(t, "ListRegions")
	})

	t.Run("cache miss fetches and caches", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		mockCache.On("GetRegions", ctx, "31").Return(nil, nil)
		mockTour.On("ListRegions", ctx, "31").Return(regions, nil)
		mockCache.On("SetRegions", ctx, "31", regions, 24*time.Hour).Return(nil)

		resp, err := uc.ListRegions(ctx, "31")
		require.NoError(t, err)
		assert.Equal(t, regions, resp.Regions)
		mockCache.AssertCalled(t, "SetRegions", ctx, "31", regions, 24*time.Hour)
	})
}

func TestListingUseCase_ListListings(t *testing.T) {
	ctx := context.Background()
	page := &domain.ListingPage{
		Items: []domain.ListingItem{
			{ContentID: "126508", Title: "경복궁"},
			{ContentID: "264337", Title: "해운대해수욕장"},
		},
		TotalCount: 2,
	}

	t.Run("keyword routes to search", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		state := filter.State{Keyword: "궁", SortOrder: filter.SortLatest, Page: 1}

		mockCache.On("GetListingPage", ctx, state.Encode()).Return(nil, nil)
		mockTour.On("SearchByKeyword", ctx, mock.MatchedBy(func(q domain.SearchQuery) bool {
			return q.Keyword == "궁" && q.Arrange == "C" && q.PageSize == 10 && q.PageNo == 1
		})).Return(page, nil)
		mockCache.On("SetListingPage", ctx, state.Encode(), page, 5*time.Minute).Return(nil)

		resp, err := uc.ListListings(ctx, state, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Items, 2)
		mockTour.AssertNotCalled(t, "ListByArea")
	})

	t.Run("no keyword routes to area listing", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		state := filter.State{RegionCode: "1", CategoryIDs: []string{"12"}, SortOrder: filter.SortName, Page: 2}

		mockCache.On("GetListingPage", ctx, state.Encode()).Return(nil, nil)
		mockTour.On("ListByArea", ctx, mock.MatchedBy(func(q domain.ListQuery) bool {
			return q.AreaCode == "1" && q.ContentTypeID == "12" && q.Arrange == "A" && q.PageNo == 2
		})).Return(page, nil)
		mockCache.On("SetListingPage", ctx, state.Encode(), page, 5*time.Minute).Return(nil)

		resp, err := uc.ListListings(ctx, state, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, state.Encode(), resp.Filter)
	})

	t.Run("cache hit skips gateway", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		state := filter.State{SortOrder: filter.SortLatest, Page: 1}
		mockCache.On("GetListingPage", ctx, "default").Return(page, nil)

		resp, err := uc.ListListings(ctx, state, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		mockTour.AssertNotCalled(t, "ListByArea")
		mockTour.AssertNotCalled(t, "SearchByKeyword")
	})

	t.Run("multiple categories fetch without type filter", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		state := filter.State{CategoryIDs: []string{"12", "39"}, SortOrder: filter.SortLatest, Page: 1}

		mockCache.On("GetListingPage", ctx, state.Encode()).Return(nil, nil)
		mockTour.On("ListByArea", ctx, mock.MatchedBy(func(q domain.ListQuery) bool {
			return q.ContentTypeID == ""
		})).Return(page, nil)
		mockCache.On("SetListingPage", ctx, state.Encode(), page, 5*time.Minute).Return(nil)

		_, err := uc.ListListings(ctx, state, "")
		require.NoError(t, err)
	})

	t.Run("bookmark flags decorated for authenticated user", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		mockBookmarks := &MockBookmarkRepository{}
		uc := newListingUseCase(mockTour, mockCache, mockBookmarks)

		state := filter.State{SortOrder: filter.SortLatest, Page: 1}
		mockCache.On("GetListingPage", ctx, "default").Return(page, nil)
		mockBookmarks.On("BookmarkedSet", ctx, "user-1", []string{"126508", "264337"}).
			Return(map[string]bool{"126508": true}, nil)

		resp, err := uc.ListListings(ctx, state, "user-1")
		require.NoError(t, err)
		assert.True(t, resp.Items[0].IsBookmarked)
		assert.False(t, resp.Items[1].IsBookmarked)
	})

	t.Run("bookmark failure does not fail the listing", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		mockBookmarks := &MockBookmarkRepository{}
		uc := newListingUseCase(mockTour, mockCache, mockBookmarks)

		state := filter.State{SortOrder: filter.SortLatest, Page: 1}
		mockCache.On("GetListingPage", ctx, "default").Return(page, nil)
		mockBookmarks.On("BookmarkedSet", ctx, "user-1", mock.Anything).
			Return(nil, errors.ErrDatabaseError)

		resp, err := uc.ListListings(ctx, state, "user-1")
		require.NoError(t, err)
		assert.False(t, resp.Items[0].IsBookmarked)
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockCache := &MockCacheRepository{}
		uc := newListingUseCase(mockTour, mockCache, &MockBookmarkRepository{})

		state := filter.State{Keyword: "궁", SortOrder: filter.SortLatest, Page: 1}
		mockCache.On("GetListingPage", ctx, state.Encode()).Return(nil, nil)
		mockTour.On("SearchByKeyword", ctx, mock.Anything).Return(nil, errors.ErrTimeout)

		_, err := uc.ListListings(ctx, state, "")
		assert.True(t, stderrors.Is(err, errors.ErrTimeout))
	})
}

func TestListingUseCase_GetListing(t *testing.T) {
	ctx := context.Background()
	detail := &domain.ListingDetail{
		ListingItem: domain.ListingItem{ContentID: "126508", Title: "경복궁"},
		Overview:    "조선왕조의 법궁",
	}

	t.Run("anonymous user gets no bookmark flag", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockBookmarks := &MockBookmarkRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, mockBookmarks)

		mockTour.On("GetDetail", ctx, "126508").Return(detail, nil)

		resp, err := uc.GetListing(ctx, "126508", "", "")
		require.NoError(t, err)
		assert.False(t, resp.IsBookmarked)
		assert.Nil(t, resp.Intro)
		mockBookmarks.AssertNotCalled(t, "IsBookmarked")
		mockTour.AssertNotCalled(t, "GetIntro")
	})

	t.Run("authenticated user gets bookmark flag", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		mockBookmarks := &MockBookmarkRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, mockBookmarks)

		mockTour.On("GetDetail", ctx, "126508").Return(detail, nil)
		mockBookmarks.On("IsBookmarked", ctx, "user-1", "126508").Return(true, nil)

		resp, err := uc.GetListing(ctx, "126508", "", "user-1")
		require.NoError(t, err)
		assert.True(t, resp.IsBookmarked)
	})

	t.Run("content type merges intro into detail", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		intro := &domain.OperatingInfo{
			ContentID:     "126508",
			ContentTypeID: "12",
			Fields:        map[string]string{"usetime": "09:00~18:00"},
		}
		mockTour.On("GetDetail", ctx, "126508").Return(detail, nil)
		mockTour.On("GetIntro", ctx, "126508", "12").Return(intro, nil)

		resp, err := uc.GetListing(ctx, "126508", "12", "")
		require.NoError(t, err)
		require.NotNil(t, resp.Intro)
		assert.Equal(t, "09:00~18:00", resp.Intro.Fields["usetime"])
	})

	t.Run("intro failure does not fail the detail", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		mockTour.On("GetDetail", ctx, "126508").Return(detail, nil)
		mockTour.On("GetIntro", ctx, "126508", "12").Return(nil, errors.ErrTimeout)

		resp, err := uc.GetListing(ctx, "126508", "12", "")
		require.NoError(t, err)
		assert.Nil(t, resp.Intro)
		assert.Equal(t, "경복궁", resp.Title)
	})

	t.Run("not found propagates", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		mockTour.On("GetDetail", ctx, "999999").Return(nil, errors.ErrListingNotFound)

		_, err := uc.GetListing(ctx, "999999", "", "")
		assert.True(t, stderrors.Is(err, errors.ErrListingNotFound))
	})
}

func TestListingUseCase_GetNearby(t *testing.T) {
	ctx := context.Background()
	origin := &domain.ListingDetail{
		ListingItem: domain.ListingItem{
			ContentID:      "126508",
			Title:          "경복궁",
			Coordinate:     utils.Coordinate{Lat: 37.579617, Lon: 126.977041},
			HasCoordinates: true,
		},
	}

	t.Run("sorted by distance with origin excluded", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		page := &domain.ListingPage{
			Items: []domain.ListingItem{
				{ContentID: "2733967", Title: "국립민속박물관", Coordinate: utils.Coordinate{Lat: 37.581497, Lon: 126.978590}, HasCoordinates: true},
				{ContentID: "126508", Title: "경복궁", Coordinate: utils.Coordinate{Lat: 37.579617, Lon: 126.977041}, HasCoordinates: true},
				{ContentID: "126509", Title: "국립고궁박물관", Coordinate: utils.Coordinate{Lat: 37.576625, Lon: 126.975099}, HasCoordinates: true},
			},
			TotalCount: 3,
		}

		mockTour.On("GetDetail", ctx, "126508").Return(origin, nil)
		mockTour.On("ListNearby", ctx, mock.MatchedBy(func(q domain.NearbyQuery) bool {
			return q.Lat == origin.Coordinate.Lat && q.Lon == origin.Coordinate.Lon &&
				q.RadiusMeters == 500 && q.PageSize == 10 && q.PageNo == 1
		})).Return(page, nil)

		resp, err := uc.GetNearby(ctx, "126508", 500)
		require.NoError(t, err)
		assert.Equal(t, "126508", resp.Origin)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "2733967", resp.Items[0].ContentID)
		assert.Equal(t, "126509", resp.Items[1].ContentID)
		assert.Less(t, resp.Items[0].DistanceKm, resp.Items[1].DistanceKm)
	})

	t.Run("origin without coordinates is rejected", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		flat := &domain.ListingDetail{
			ListingItem: domain.ListingItem{ContentID: "300000", Title: "좌표없음"},
		}
		mockTour.On("GetDetail", ctx, "300000").Return(flat, nil)

		_, err := uc.GetNearby(ctx, "300000", 1000)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidCoordinates))
		mockTour.AssertNotCalled(t, "ListNearby")
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		mockTour := &MockTourAPIRepository{}
		uc := newListingUseCase(mockTour, &MockCacheRepository{}, &MockBookmarkRepository{})

		mockTour.On("GetDetail", ctx, "126508").Return(origin, nil)
		mockTour.On("ListNearby", ctx, mock.Anything).Return(nil, errors.ErrUpstreamGeneric)

		_, err := uc.GetNearby(ctx, "126508", 0)
		assert.True(t, stderrors.Is(err, errors.ErrUpstreamGeneric))
	})
}
