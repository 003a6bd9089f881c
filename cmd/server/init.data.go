package main

import (
	"context"

	"travel_crm/internal/api/chat/adapter"
	"travel_crm/internal/api/chat/notify"
	authsvc "travel_crm/internal/api/auth/service"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu và các thành phần runtime mặc định:
// tài khoản admin, platform adapter và publisher thông báo realtime.
func InitDefaultData() *notify.Publisher {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	// 1. Seed admin mặc định nếu chưa có admin nào
	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}
	if err := userService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to ensure default admin: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Default admin ensured")

	// 2. Đăng ký platform adapter cho webhook và gửi tin
	baseURL := global.ServerConfig.GraphAPIBaseURL
	adapter.Register(adapter.NewMessengerAdapter(baseURL))
	adapter.Register(adapter.NewInstagramAdapter(baseURL))
	log.Info("✅ [INIT] Step 2: Platform adapters registered (messenger, instagram)")

	// 3. Khởi tạo publisher thông báo realtime (no-op nếu không cấu hình NATS)
	publisher, err := notify.NewPublisher()
	if err != nil {
		log.WithError(err).Error("❌ [INIT] Step 3: Failed to connect NATS, realtime notifications disabled")
		publisher = nil
	} else {
		publisher.Register()
		log.Info("✅ [INIT] Step 3: Notify publisher registered")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
	return publisher
}
