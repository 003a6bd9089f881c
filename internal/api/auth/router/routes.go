// Package authrouter đăng ký các route thuộc domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "travel_crm/internal/api/auth/handler"
	"travel_crm/internal/api/middleware"
	"travel_crm/internal/api/router"
)

// Register đăng ký các route auth vào group /api/v1.
func Register(v1 fiber.Router, r *router.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return err
	}

	// Các route công khai (không cần token)
	v1.Post("/auth/login", userHandler.HandleLogin)
	v1.Post("/auth/signup", userHandler.HandleSignup)

	// Các route cần đăng nhập
	authMiddleware := middleware.AuthMiddleware("")
	router.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authMiddleware}, userHandler.HandleLogout)
	router.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.HandleGetMe)
	router.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/reset-password", []fiber.Handler{authMiddleware}, userHandler.HandleResetPassword)

	// Quản lý người dùng (chỉ role có quyền trang users — admin)
	adminMiddleware := middleware.AuthMiddleware("users")
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/create", []fiber.Handler{adminMiddleware}, userHandler.HandleCreateUser)
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/block", []fiber.Handler{adminMiddleware}, userHandler.HandleBlockUser)
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/unblock", []fiber.Handler{adminMiddleware}, userHandler.HandleUnBlockUser)
	r.RegisterCRUDRoutes(v1, "/users", userHandler, router.ReadOnlyConfig, "users")

	return nil
}
