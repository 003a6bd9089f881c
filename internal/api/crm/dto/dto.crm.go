// Package crmdto chứa các cấu trúc input cho API CRM.
package crmdto

import (
	models "travel_crm/internal/api/crm/models"
)

// ContactCreateInput dữ liệu tạo liên hệ
type ContactCreateInput struct {
	ClientID       string `json:"clientId" validate:"required" transform:"str_objectid"`
	Name           string `json:"name" validate:"required,max=200"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Source         string `json:"source" validate:"required,oneof=chat manual"`
	ConversationID string `json:"conversationId,omitempty" transform:"str_objectid,optional"`
	Note           string `json:"note,omitempty"`
}

// ContactUpdateInput dữ liệu cập nhật liên hệ
type ContactUpdateInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,max=200"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Note  string `json:"note,omitempty"`
}

// BookingCreateInput dữ liệu tạo booking
type BookingCreateInput struct {
	ClientID    string  `json:"clientId" validate:"required" transform:"str_objectid"`
	ContactID   string  `json:"contactId" validate:"required" transform:"str_objectid"`
	PackageID   string  `json:"packageId,omitempty" transform:"str_objectid,optional"`
	Status      string  `json:"status" validate:"required,oneof=pending confirmed paid completed cancelled"`
	TravelDate  int64   `json:"travelDate" validate:"required"`
	Adults      int     `json:"adults" validate:"required,min=1"`
	Children    int     `json:"children" validate:"min=0"`
	TotalAmount float64 `json:"totalAmount" validate:"min=0"`
	Currency    string  `json:"currency,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// BookingUpdateInput dữ liệu cập nhật booking
type BookingUpdateInput struct {
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed paid completed cancelled"`
	TravelDate  int64   `json:"travelDate,omitempty"`
	Adults      int     `json:"adults,omitempty" validate:"omitempty,min=1"`
	Children    int     `json:"children,omitempty" validate:"omitempty,min=0"`
	TotalAmount float64 `json:"totalAmount,omitempty" validate:"omitempty,min=0"`
	Currency    string  `json:"currency,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// ItineraryCreateInput dữ liệu tạo lịch trình.
// Days dùng trực tiếp model ItineraryDay — ObjectID tự unmarshal từ chuỗi hex.
type ItineraryCreateInput struct {
	ClientID  string                `json:"clientId" validate:"required" transform:"str_objectid"`
	BookingID string                `json:"bookingId" validate:"required" transform:"str_objectid"`
	Title     string                `json:"title" validate:"required,max=200"`
	Days      []models.ItineraryDay `json:"days" validate:"required,min=1"`
}

// ItineraryUpdateInput dữ liệu cập nhật lịch trình
type ItineraryUpdateInput struct {
	Title string                `json:"title,omitempty" validate:"omitempty,max=200"`
	Days  []models.ItineraryDay `json:"days,omitempty" validate:"omitempty,min=1"`
}

// TravelPackageCreateInput dữ liệu tạo gói tour
type TravelPackageCreateInput struct {
	ClientID     string  `json:"clientId" validate:"required" transform:"str_objectid"`
	Code         string  `json:"code" validate:"required,max=50"`
	Name         string  `json:"name" validate:"required,max=200"`
	Description  string  `json:"description,omitempty"`
	DurationDays int     `json:"durationDays" validate:"required,min=1"`
	BasePrice    float64 `json:"basePrice" validate:"min=0"`
	Currency     string  `json:"currency,omitempty"`
}

// TravelPackageUpdateInput dữ liệu cập nhật gói tour
type TravelPackageUpdateInput struct {
	Name         string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description  string  `json:"description,omitempty"`
	DurationDays int     `json:"durationDays,omitempty" validate:"omitempty,min=1"`
	BasePrice    float64 `json:"basePrice,omitempty" validate:"omitempty,min=0"`
	Currency     string  `json:"currency,omitempty"`
}

// HotelCreateInput dữ liệu tạo khách sạn
type HotelCreateInput struct {
	ClientID string `json:"clientId" validate:"required" transform:"str_objectid"`
	Name     string `json:"name" validate:"required,max=200"`
	City     string `json:"city,omitempty"`
	Address  string `json:"address,omitempty"`
	Stars    int    `json:"stars,omitempty" validate:"omitempty,min=1,max=5"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// HotelUpdateInput dữ liệu cập nhật khách sạn
type HotelUpdateInput struct {
	Name    string `json:"name,omitempty" validate:"omitempty,max=200"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Stars   int    `json:"stars,omitempty" validate:"omitempty,min=1,max=5"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// InvoiceItemInput một dòng hóa đơn khi tạo
type InvoiceItemInput struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unitPrice" validate:"min=0"`
}

// InvoiceCreateInput dữ liệu tạo hóa đơn kèm các dòng chi tiết.
// Không có transform tag — InvoiceService.CreateWithItems tự build model.
type InvoiceCreateInput struct {
	ClientID      string             `json:"clientId" validate:"required"`
	BookingID     string             `json:"bookingId" validate:"required"`
	InvoiceNumber string             `json:"invoiceNumber" validate:"required,max=50"`
	Currency      string             `json:"currency,omitempty"`
	DueAt         int64              `json:"dueAt,omitempty"`
	Items         []InvoiceItemInput `json:"items" validate:"required,min=1,dive"`
}

// InvoiceUpdateInput dữ liệu cập nhật trạng thái hóa đơn
type InvoiceUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=draft issued paid void"`
	DueAt  int64  `json:"dueAt,omitempty"`
}
