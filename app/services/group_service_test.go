package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreateRejectsDuplicateTitle(t *testing.T) {
	conn := newTestDB(t)
	service := NewGroupService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.GroupRequest{Title: "General"})
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = service.Create(ctx, dto.GroupRequest{Title: "General"})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Group with the same title exists!", result.Message)
}

func TestGroupDeleteBlockedByUsers(t *testing.T) {
	conn := newTestDB(t)
	service := NewGroupService(conn)
	users, _ := newUserService(t, conn)
	ctx := context.Background()

	groupResult, err := service.Create(ctx, dto.GroupRequest{Title: "General"})
	require.NoError(t, err)
	require.True(t, groupResult.Successful)

	userResult, err := users.Create(ctx, dto.UserRequest{
		UserName: "luna",
		Password: "user",
		IsActive: true,
		GroupID:  &groupResult.ID,
	})
	require.NoError(t, err)
	require.True(t, userResult.Successful)

	result, err := service.Delete(ctx, groupResult.ID)
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Group can't be deleted because it has relational users!", result.Message)

	item, err := service.Item(ctx, groupResult.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 1, item.UserCount)

	userDelete, err := users.Delete(ctx, userResult.ID)
	require.NoError(t, err)
	require.True(t, userDelete.Successful)

	result, err = service.Delete(ctx, groupResult.ID)
	require.NoError(t, err)
	assert.True(t, result.Successful)
}
