package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryCreateRejectsDuplicateName(t *testing.T) {
	conn := newTestDB(t)
	service := NewCountryService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = service.Create(ctx, dto.CountryRequest{Name: " Türkiye "})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Country with the same name exists!", result.Message)
}

func TestCountryDeleteBlockedByCities(t *testing.T) {
	conn := newTestDB(t)
	service := NewCountryService(conn)
	cities := newCityService(t, conn)
	ctx := context.Background()

	countryResult, err := service.Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	require.True(t, countryResult.Successful)

	cityResult, err := cities.Create(ctx, dto.CityRequest{Name: "Ankara", CountryID: &countryResult.ID})
	require.NoError(t, err)
	require.True(t, cityResult.Successful)

	result, err := service.Delete(ctx, countryResult.ID)
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Country can't be deleted because it has relational cities!", result.Message)

	// dropping the city unblocks the delete
	cityDelete, err := cities.Delete(ctx, cityResult.ID)
	require.NoError(t, err)
	require.True(t, cityDelete.Successful)

	result, err = service.Delete(ctx, countryResult.ID)
	require.NoError(t, err)
	assert.True(t, result.Successful)

	item, err := service.Item(ctx, countryResult.ID)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCountryItemListsCitiesByName(t *testing.T) {
	conn := newTestDB(t)
	service := NewCountryService(conn)
	cities := newCityService(t, conn)
	ctx := context.Background()

	countryResult, err := service.Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	require.True(t, countryResult.Successful)

	for _, name := range []string{"Izmir", "Ankara", "Bursa"} {
		result, err := cities.Create(ctx, dto.CityRequest{Name: name, CountryID: &countryResult.ID})
		require.NoError(t, err)
		require.True(t, result.Successful)
	}

	item, err := service.Item(ctx, countryResult.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Len(t, item.Cities, 3)
	assert.Equal(t, "Ankara", item.Cities[0].Name)
	assert.Equal(t, "Bursa", item.Cities[1].Name)
	assert.Equal(t, "Izmir", item.Cities[2].Name)
}
