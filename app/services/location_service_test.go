package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Türkiye carries two cities, the USA one, China none. Five rows on a
// left join, four on an inner join.
func seedLocations(t *testing.T, conn *gorm.DB) {
	t.Helper()

	countries := []models.Country{{Name: "Türkiye"}, {Name: "USA"}, {Name: "China"}}
	require.NoError(t, conn.Create(&countries).Error)

	cities := []models.City{
		{Name: "Ankara", CountryID: countries[0].ID},
		{Name: "Istanbul", CountryID: countries[0].ID},
		{Name: "New York", CountryID: countries[1].ID},
	}
	require.NoError(t, conn.Create(&cities).Error)
}

func TestLocationInnerJoinSkipsCitylessCountries(t *testing.T) {
	conn := newTestDB(t)
	seedLocations(t, conn)
	service := NewLocationService(conn)
	ctx := context.Background()

	inner := &dto.LocationQueryRequest{}
	innerRows, err := service.InnerJoinList(ctx, inner)
	require.NoError(t, err)
	assert.Len(t, innerRows, 3)
	assert.Equal(t, 3, inner.TotalCount)

	left := &dto.LocationQueryRequest{}
	leftRows, err := service.LeftJoinList(ctx, left)
	require.NoError(t, err)
	require.Len(t, leftRows, 4)
	assert.Equal(t, 4, left.TotalCount)

	for _, row := range innerRows {
		require.NotNil(t, row.CityID)
	}

	var citylessSeen bool
	for _, row := range leftRows {
		if row.CityID == nil {
			citylessSeen = true
			assert.Equal(t, "China", row.CountryName)
			assert.Nil(t, row.CityName)
		}
	}
	assert.True(t, citylessSeen)
}

func TestLocationCityFilterDropsNullCities(t *testing.T) {
	conn := newTestDB(t)
	seedLocations(t, conn)
	service := NewLocationService(conn)
	ctx := context.Background()

	request := &dto.LocationQueryRequest{CityName: "York"}
	rows, err := service.LeftJoinList(ctx, request)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "USA", rows[0].CountryName)

	// substring matching is case sensitive
	request = &dto.LocationQueryRequest{CityName: "york"}
	rows, err = service.LeftJoinList(ctx, request)
	require.NoError(t, err)
	assert.Empty(t, rows)

	request = &dto.LocationQueryRequest{CountryName: "Türkiye", CityName: "Ankara"}
	rows, err = service.InnerJoinList(ctx, request)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ankara", *rows[0].CityName)
}

func TestLocationOrdering(t *testing.T) {
	conn := newTestDB(t)
	seedLocations(t, conn)
	service := NewLocationService(conn)
	ctx := context.Background()

	request := &dto.LocationQueryRequest{OrderBy: dto.OrderByCityName, Descending: true}
	rows, err := service.InnerJoinList(ctx, request)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "New York", *rows[0].CityName)
	assert.Equal(t, "Istanbul", *rows[1].CityName)
	assert.Equal(t, "Ankara", *rows[2].CityName)
}

func TestLocationPagingPartitionsTheListing(t *testing.T) {
	conn := newTestDB(t)
	seedLocations(t, conn)
	service := NewLocationService(conn)
	ctx := context.Background()

	var turkiye models.Country
	require.NoError(t, conn.Where("name = ?", "Türkiye").First(&turkiye).Error)
	require.NoError(t, conn.Create(&models.City{Name: "Izmir", CountryID: turkiye.ID}).Error)

	unpaged := &dto.LocationQueryRequest{OrderBy: dto.OrderByCityName}
	all, err := service.LeftJoinList(ctx, unpaged)
	require.NoError(t, err)
	require.Len(t, all, 5)

	// five rows at two per page split 2, 2, 1
	var paged []dto.LocationResponse
	for page, want := range []int{2, 2, 1} {
		request := &dto.LocationQueryRequest{OrderBy: dto.OrderByCityName, PageNumber: page + 1, CountPerPage: 2}
		rows, err := service.LeftJoinList(ctx, request)
		require.NoError(t, err)
		require.Len(t, rows, want)

		// the count reflects the whole filtered set, not the page
		assert.Equal(t, 5, request.TotalCount)
		paged = append(paged, rows...)
	}
	assert.Equal(t, all, paged)

	// a page past the end comes back empty
	request := &dto.LocationQueryRequest{PageNumber: 4, CountPerPage: 2}
	rows, err := service.LeftJoinList(ctx, request)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
