package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"travel_crm/config"
	authmodels "travel_crm/internal/api/auth/models"
	chatmodels "travel_crm/internal/api/chat/models"
	crmmodels "travel_crm/internal/api/crm/models"
	"travel_crm/internal/database"
	"travel_crm/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc.
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Auth
	global.MongoDB_ColNames.Users = "auth_users"

	// Chat (pipeline tiếp nhận hội thoại)
	global.MongoDB_ColNames.ChatPages = "chat_pages"
	global.MongoDB_ColNames.ChatConversations = "chat_conversations"
	global.MongoDB_ColNames.ChatMessages = "chat_messages"
	global.MongoDB_ColNames.ChatWebhookLogs = "chat_webhook_logs"

	// CRM (tiền tố crm_)
	global.MongoDB_ColNames.Bookings = "crm_bookings"
	global.MongoDB_ColNames.Itineraries = "crm_itineraries"
	global.MongoDB_ColNames.Invoices = "crm_invoices"
	global.MongoDB_ColNames.InvoiceItems = "crm_invoice_items"
	global.MongoDB_ColNames.Contacts = "crm_contacts"
	global.MongoDB_ColNames.TravelPackages = "crm_travel_packages"
	global.MongoDB_ColNames.Hotels = "crm_hotels"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: strong_password, chat_platform, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})

	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatPages), chatmodels.ChatPage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatConversations), chatmodels.ChatConversation{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatMessages), chatmodels.ChatMessage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatWebhookLogs), chatmodels.ChatWebhookLog{})

	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Bookings), crmmodels.Booking{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Itineraries), crmmodels.Itinerary{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Invoices), crmmodels.Invoice{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.InvoiceItems), crmmodels.InvoiceItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), crmmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TravelPackages), crmmodels.TravelPackage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Hotels), crmmodels.Hotel{})
}
