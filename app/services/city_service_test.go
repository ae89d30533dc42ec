package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/utils/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCityService(t *testing.T, conn *gorm.DB) *CityService {
	t.Helper()
	return NewCityService(conn, files.NewFileService(t.TempDir()))
}

func TestCityCreateRejectsDuplicateName(t *testing.T) {
	conn := newTestDB(t)
	service := newCityService(t, conn)
	ctx := context.Background()

	countryResult, err := NewCountryService(conn).Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	require.True(t, countryResult.Successful)

	result, err := service.Create(ctx, dto.CityRequest{Name: "Ankara", CountryID: &countryResult.ID})
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = service.Create(ctx, dto.CityRequest{Name: "Ankara", CountryID: &countryResult.ID})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "City with the same name exists!", result.Message)
}

func TestCityListByCountryOrdersByName(t *testing.T) {
	conn := newTestDB(t)
	service := newCityService(t, conn)
	countries := NewCountryService(conn)
	ctx := context.Background()

	turkiye, err := countries.Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	usa, err := countries.Create(ctx, dto.CountryRequest{Name: "USA"})
	require.NoError(t, err)

	for _, seed := range []struct {
		name      string
		countryID uint
	}{
		{"Izmir", turkiye.ID},
		{"Ankara", turkiye.ID},
		{"New York", usa.ID},
	} {
		result, err := service.Create(ctx, dto.CityRequest{Name: seed.name, CountryID: &seed.countryID})
		require.NoError(t, err)
		require.True(t, result.Successful)
	}

	cities, err := service.ListByCountry(ctx, turkiye.ID)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Ankara", cities[0].Name)
	assert.Equal(t, "Izmir", cities[1].Name)
}

func TestCityDeleteBlockedByUsers(t *testing.T) {
	conn := newTestDB(t)
	service := newCityService(t, conn)
	ctx := context.Background()

	countryResult, err := NewCountryService(conn).Create(ctx, dto.CountryRequest{Name: "Türkiye"})
	require.NoError(t, err)
	require.True(t, countryResult.Successful)

	cityResult, err := service.Create(ctx, dto.CityRequest{Name: "Ankara", CountryID: &countryResult.ID})
	require.NoError(t, err)
	require.True(t, cityResult.Successful)

	users, _ := newUserService(t, conn)
	userResult, err := users.Create(ctx, dto.UserRequest{
		UserName:  "cagil",
		Password:  "admin",
		IsActive:  true,
		CountryID: &countryResult.ID,
		CityID:    &cityResult.ID,
	})
	require.NoError(t, err)
	require.True(t, userResult.Successful)

	result, err := service.Delete(ctx, cityResult.ID)
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "City can't be deleted because it has relational users!", result.Message)

	userDelete, err := users.Delete(ctx, userResult.ID)
	require.NoError(t, err)
	require.True(t, userDelete.Successful)

	result, err = service.Delete(ctx, cityResult.ID)
	require.NoError(t, err)
	assert.True(t, result.Successful)
}
