package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCreateRejectsDuplicateName(t *testing.T) {
	conn := newTestDB(t)
	service := NewRoleService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.RoleRequest{Name: models.RoleAdmin})
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = service.Create(ctx, dto.RoleRequest{Name: models.RoleAdmin})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Role with the same name exists!", result.Message)
}

func TestRoleDeleteCascadesUserLinks(t *testing.T) {
	conn := newTestDB(t)
	service := NewRoleService(conn)
	users, _ := newUserService(t, conn)
	ctx := context.Background()

	roleResult, err := service.Create(ctx, dto.RoleRequest{Name: models.RoleUser})
	require.NoError(t, err)
	require.True(t, roleResult.Successful)

	userResult, err := users.Create(ctx, dto.UserRequest{
		UserName: "luna",
		Password: "user",
		IsActive: true,
		RoleIDs:  []uint{roleResult.ID},
	})
	require.NoError(t, err)
	require.True(t, userResult.Successful)

	// the role lists its carriers
	item, err := service.Item(ctx, roleResult.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, []string{"luna"}, item.Users)

	result, err := service.Delete(ctx, roleResult.ID)
	require.NoError(t, err)
	require.True(t, result.Successful)

	var joinCount int64
	require.NoError(t, conn.Model(&models.UserRole{}).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	// the user survives the role delete without the assignment
	user, err := users.Item(ctx, userResult.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.Roles)
}
