package global

import (
	"travel_crm/config"
	"travel_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Auth
	Users string // Tên collection cho người dùng

	// Chat (ingestion pipeline)
	ChatPages         string // Tên collection cho trang đã đăng ký (page -> tenant)
	ChatConversations string // Tên collection cho cuộc trò chuyện
	ChatMessages      string // Tên collection cho tin nhắn
	ChatWebhookLogs   string // Tên collection cho log webhook thô

	// CRM
	Bookings       string // Tên collection cho booking tour
	Itineraries    string // Tên collection cho lịch trình
	Invoices       string // Tên collection cho hóa đơn
	InvoiceItems   string // Tên collection cho dòng hóa đơn
	Contacts       string // Tên collection cho liên hệ
	TravelPackages string // Tên collection cho gói tour
	Hotels         string // Tên collection cho khách sạn
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
