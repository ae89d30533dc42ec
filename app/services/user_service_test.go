package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, conn *gorm.DB) (*UserService, sessions.SessionStore) {
	t.Helper()
	store := sessions.NewCookieSessionStore([]byte("test-auth-key-0123456789abcdef00"))
	return NewUserService(conn, store), store
}

func TestUserActiveNameUniqueness(t *testing.T) {
	conn := newTestDB(t)
	service, _ := newUserService(t, conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.UserRequest{UserName: "luna", Password: "user", IsActive: true})
	require.NoError(t, err)
	require.True(t, result.Successful)

	// an active holder blocks the name
	result, err = service.Create(ctx, dto.UserRequest{UserName: "luna", Password: "user", IsActive: true})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Active user with the same user name exists!", result.Message)

	// passive users may share the name freely
	result, err = service.Create(ctx, dto.UserRequest{UserName: "luna", Password: "user", IsActive: false})
	require.NoError(t, err)
	assert.True(t, result.Successful)

	result, err = service.Create(ctx, dto.UserRequest{UserName: "luna", Password: "user", IsActive: false})
	require.NoError(t, err)
	assert.True(t, result.Successful)

	users, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserRejectsOutOfRangeScore(t *testing.T) {
	conn := newTestDB(t)
	service, _ := newUserService(t, conn)
	ctx := context.Background()

	score := func(v float64) *decimal.Decimal {
		d := decimal.NewFromFloat(v)
		return &d
	}

	for _, s := range []*decimal.Decimal{score(9), score(-1)} {
		result, err := service.Create(ctx, dto.UserRequest{
			UserName: "luna",
			Password: "user",
			IsActive: true,
			Score:    s,
		})
		require.NoError(t, err)
		assert.False(t, result.Successful)
		assert.Equal(t, "Score must be between 0 and 5!", result.Message)
	}

	created, err := service.Create(ctx, dto.UserRequest{
		UserName: "luna",
		Password: "user",
		IsActive: true,
		Score:    score(4.7),
	})
	require.NoError(t, err)
	require.True(t, created.Successful)

	result, err := service.Update(ctx, dto.UserRequest{
		ID:       created.ID,
		UserName: "luna",
		Password: "user",
		IsActive: true,
		Score:    score(5.1),
	})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Score must be between 0 and 5!", result.Message)

	user, err := service.Item(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Score.Equal(decimal.NewFromFloat(4.7)))
}

func TestUserLogin(t *testing.T) {
	conn := newTestDB(t)
	service, store := newUserService(t, conn)
	ctx := context.Background()

	created, err := service.Create(ctx, dto.UserRequest{UserName: "admin", Password: "admin", IsActive: true})
	require.NoError(t, err)
	require.True(t, created.Successful)

	passive, err := service.Create(ctx, dto.UserRequest{UserName: "ghost", Password: "ghost", IsActive: false})
	require.NoError(t, err)
	require.True(t, passive.Successful)

	login := func(userName, password string) (Result, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		result, err := service.Login(ctx, w, r, dto.LoginRequest{UserName: userName, Password: password})
		require.NoError(t, err)
		return result, w
	}

	result, _ := login("admin", "wrong")
	assert.False(t, result.Successful)
	assert.Equal(t, "Invalid user name or password!", result.Message)

	result, _ = login("nobody", "admin")
	assert.False(t, result.Successful)
	assert.Equal(t, "Invalid user name or password!", result.Message)

	// the passive account is invisible to login
	result, _ = login("ghost", "ghost")
	assert.False(t, result.Successful)

	result, w := login("admin", "admin")
	require.True(t, result.Successful)
	require.NotEmpty(t, w.Result().Cookies())

	// the issued cookie resolves back to the signed-in user
	signedIn := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		signedIn.AddCookie(cookie)
	}
	userID, userName, _, ok := store.CurrentUser(signedIn)
	require.True(t, ok)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "admin", userName)
}

func TestUserRegisterRequiresUserRole(t *testing.T) {
	conn := newTestDB(t)
	service, _ := newUserService(t, conn)
	ctx := context.Background()

	request := dto.RegisterRequest{UserName: "newcomer", Password: "pass", ConfirmPassword: "pass"}

	result, err := service.Register(ctx, request)
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "\"User\" role not found!", result.Message)

	roleResult, err := NewRoleService(conn).Create(ctx, dto.RoleRequest{Name: models.RoleUser})
	require.NoError(t, err)
	require.True(t, roleResult.Successful)

	result, err = service.Register(ctx, request)
	require.NoError(t, err)
	require.True(t, result.Successful)

	registered, err := service.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.True(t, registered.IsActive)
	assert.Equal(t, []string{models.RoleUser}, registered.Roles)
}

func TestUserUpdateRewritesRoles(t *testing.T) {
	conn := newTestDB(t)
	service, _ := newUserService(t, conn)
	roles := NewRoleService(conn)
	ctx := context.Background()

	adminRole, err := roles.Create(ctx, dto.RoleRequest{Name: models.RoleAdmin})
	require.NoError(t, err)
	userRole, err := roles.Create(ctx, dto.RoleRequest{Name: models.RoleUser})
	require.NoError(t, err)

	created, err := service.Create(ctx, dto.UserRequest{
		UserName: "cagil",
		Password: "admin",
		IsActive: true,
		RoleIDs:  []uint{adminRole.ID, userRole.ID},
	})
	require.NoError(t, err)
	require.True(t, created.Successful)

	result, err := service.Update(ctx, dto.UserRequest{
		ID:       created.ID,
		UserName: "cagil",
		Password: "admin",
		IsActive: true,
		RoleIDs:  []uint{userRole.ID},
	})
	require.NoError(t, err)
	require.True(t, result.Successful)

	var joins []models.UserRole
	require.NoError(t, conn.Where("user_id = ?", created.ID).Find(&joins).Error)
	require.Len(t, joins, 1)
	assert.Equal(t, userRole.ID, joins[0].RoleID)
}

func TestUserDeleteCascadesRoleLinks(t *testing.T) {
	conn := newTestDB(t)
	service, _ := newUserService(t, conn)
	ctx := context.Background()

	roleResult, err := NewRoleService(conn).Create(ctx, dto.RoleRequest{Name: models.RoleUser})
	require.NoError(t, err)

	created, err := service.Create(ctx, dto.UserRequest{
		UserName: "luna",
		Password: "user",
		IsActive: true,
		RoleIDs:  []uint{roleResult.ID},
	})
	require.NoError(t, err)
	require.True(t, created.Successful)

	result, err := service.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, result.Successful)

	var joinCount int64
	require.NoError(t, conn.Model(&models.UserRole{}).Count(&joinCount).Error)
	assert.Zero(t, joinCount)
}
