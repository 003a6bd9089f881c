// Package chatrouter đăng ký các route thuộc domain chat.
package chatrouter

import (
	"github.com/gofiber/fiber/v3"

	chathdl "travel_crm/internal/api/chat/handler"
	"travel_crm/internal/api/middleware"
	"travel_crm/internal/api/router"
)

// Register đăng ký các route chat vào group /api/v1.
// Route webhook công khai — platform gọi trực tiếp, xác thực qua verify token.
func Register(v1 fiber.Router, r *router.Router) error {
	webhookHandler, err := chathdl.NewWebhookHandler()
	if err != nil {
		return err
	}
	conversationHandler, err := chathdl.NewConversationHandler()
	if err != nil {
		return err
	}
	pageHandler, err := chathdl.NewPageHandler()
	if err != nil {
		return err
	}

	// Webhook (không qua auth middleware)
	v1.Get("/webhook/:platform", webhookHandler.HandleVerify)
	v1.Post("/webhook/:platform", webhookHandler.HandleReceive)

	// Hội thoại của agent
	chatMiddleware := middleware.AuthMiddleware("conversations")
	router.RegisterRouteWithMiddleware(v1, "/chat", "GET", "/threads", []fiber.Handler{chatMiddleware}, conversationHandler.HandleListThreads)
	router.RegisterRouteWithMiddleware(v1, "/chat", "GET", "/conversation/:id", []fiber.Handler{chatMiddleware}, conversationHandler.HandleGetConversation)
	router.RegisterRouteWithMiddleware(v1, "/chat", "POST", "/reply", []fiber.Handler{chatMiddleware}, conversationHandler.HandleReply)

	// Quản lý trang đã đăng ký (trang settings)
	settingsMiddleware := middleware.AuthMiddleware("settings")
	router.RegisterRouteWithMiddleware(v1, "/chat-pages", "POST", "/register", []fiber.Handler{settingsMiddleware}, pageHandler.HandleRegisterPage)
	r.RegisterCRUDRoutes(v1, "/chat-pages", pageHandler, router.CRUDConfig{
		Find: true, FindOne: true, FindById: true, Paginate: true,
		UpdById: true, DelById: true, Count: true,
	}, "settings")

	return nil
}
