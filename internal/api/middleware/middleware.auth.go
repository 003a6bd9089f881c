package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "travel_crm/internal/api/auth/models"
	authsvc "travel_crm/internal/api/auth/service"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
	"travel_crm/internal/utility"
)

// AuthManager quản lý xác thực với cache để giảm truy vấn DB.
// Cache user 5 phút, dọn dẹp mỗi 10 phút.
type AuthManager struct {
	userCache *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về singleton AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManager = &AuthManager{
			userCache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManager
}

// getUser lấy user theo ID, ưu tiên cache trước khi query DB.
func (m *AuthManager) getUser(c fiber.Ctx, userID primitive.ObjectID) (*authmodels.User, error) {
	cacheKey := "auth_user:" + userID.Hex()
	if cached, ok := m.userCache.Get(cacheKey); ok {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo user service", common.StatusInternalServerError, err)
	}

	user, err := userService.FindOneById(c.Context(), userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	m.userCache.Set(cacheKey, &user)
	return &user, nil
}

// InvalidateUser xóa user khỏi cache (gọi khi block/logout để token hết hiệu lực ngay).
func (m *AuthManager) InvalidateUser(userID primitive.ObjectID) {
	m.userCache.Delete("auth_user:" + userID.Hex())
}

// AuthMiddleware xác thực Bearer token và kiểm tra quyền truy cập trang.
// requirePage rỗng nghĩa là chỉ cần đăng nhập, không yêu cầu quyền cụ thể.
//
// Flow:
//  1. Lấy token từ header Authorization (Bearer xxx)
//  2. Verify chữ ký + hạn JWT
//  3. Lấy user từ cache/DB, so token với token đang lưu (revocation check)
//  4. Kiểm tra IsBlock và quyền truy cập trang theo role
//  5. Lưu user_id, user_role, clientID vào context
func AuthMiddleware(requirePage string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utility.ParseToken(global.ServerConfig.JwtSecret, tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user, err := GetAuthManager().getUser(c, userID)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Token phải khớp token đang lưu — đăng nhập mới / logout / block vô hiệu token cũ
		if user.Token == "" || user.Token != tokenString {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa", common.StatusForbidden, nil))
			return nil
		}

		if requirePage != "" && !authsvc.RoleCanAccess(user.Role, requirePage) {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"role":    user.Role,
				"page":    requirePage,
			}).Warn("❌ [AUTH] Truy cập bị từ chối")
			logger.LogPermission("denied", c, map[string]interface{}{
				"user_id": user.ID.Hex(),
				"role":    user.Role,
				"page":    requirePage,
			})
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthRole, "Không có quyền truy cập", common.StatusForbidden, nil))
			return nil
		}

		// Tenant scope: user cũ chưa có clientId thì fallback về chính user ID
		clientID := user.ClientID
		if clientID.IsZero() {
			clientID = user.ID
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		c.Locals("clientID", clientID.Hex())

		return c.Next()
	}
}
