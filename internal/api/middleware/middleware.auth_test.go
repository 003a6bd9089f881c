// Package middleware - Test xác thực với cache user (không cần Mongo).
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel_crm/config"
	authmodels "travel_crm/internal/api/auth/models"
	"travel_crm/internal/global"
	"travel_crm/internal/utility"
)

const testJwtSecret = "test-jwt-secret"

// seedCachedUser đưa user vào cache của AuthManager như thể vừa được load từ DB.
func seedCachedUser(user *authmodels.User) {
	GetAuthManager().userCache.Set("auth_user:"+user.ID.Hex(), user)
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.ServerConfig = &config.Configuration{JwtSecret: testJwtSecret}

	app := fiber.New()
	app.Use(AuthMiddleware(""))
	app.Get("/protected", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestInvalidateUser_XoaUserKhoiCache(t *testing.T) {
	user := &authmodels.User{ID: primitive.NewObjectID(), Token: "token-1"}
	seedCachedUser(user)

	_, ok := GetAuthManager().userCache.Get("auth_user:" + user.ID.Hex())
	require.True(t, ok, "user phải có trong cache sau khi seed")

	GetAuthManager().InvalidateUser(user.ID)

	_, ok = GetAuthManager().userCache.Get("auth_user:" + user.ID.Hex())
	assert.False(t, ok, "InvalidateUser phải xóa user khỏi cache")
}

func TestAuthMiddleware_TokenKhopBanCacheDuocChapNhan(t *testing.T) {
	app := newAuthTestApp(t)

	userID := primitive.NewObjectID()
	token, err := utility.CreateToken(testJwtSecret, userID.Hex(), authmodels.RoleAdmin)
	require.NoError(t, err)
	seedCachedUser(&authmodels.User{ID: userID, Role: authmodels.RoleAdmin, Token: token})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

// Đăng nhập mới phát hành token mới nhưng bản cache cũ còn giữ token trước đó:
// token mới bị từ chối cho tới khi cache được invalidate — vì vậy handler
// login/logout/block phải gọi InvalidateUser ngay sau khi đổi token.
func TestAuthMiddleware_CacheCuTuChoiTokenMoiChoToiKhiInvalidate(t *testing.T) {
	app := newAuthTestApp(t)

	userID := primitive.NewObjectID()
	token, err := utility.CreateToken(testJwtSecret, userID.Hex(), authmodels.RoleAdmin)
	require.NoError(t, err)

	// Cache còn giữ user với token của phiên trước
	seedCachedUser(&authmodels.User{ID: userID, Role: authmodels.RoleAdmin, Token: "token-phien-truoc"})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode, "token mới phải bị từ chối khi cache còn giữ token cũ")

	// Sau invalidate, cache không còn bản cũ — lượt xác thực sau sẽ load lại từ DB
	GetAuthManager().InvalidateUser(userID)
	_, ok := GetAuthManager().userCache.Get("auth_user:" + userID.Hex())
	assert.False(t, ok)
}

func TestAuthMiddleware_UserBiKhoaTrongCacheBiTuChoi(t *testing.T) {
	app := newAuthTestApp(t)

	userID := primitive.NewObjectID()
	token, err := utility.CreateToken(testJwtSecret, userID.Hex(), authmodels.RoleAdmin)
	require.NoError(t, err)
	seedCachedUser(&authmodels.User{ID: userID, Role: authmodels.RoleAdmin, Token: token, IsBlock: true})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
