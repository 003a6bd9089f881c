package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái hóa đơn.
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Invoice là hóa đơn phát hành cho một booking.
// InvoiceNumber unique trong phạm vi một tenant.
type Invoice struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID      primitive.ObjectID `json:"clientId" bson:"clientId" index:"compound:idx_invoice_number_unique"`
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber" index:"compound:idx_invoice_number_unique"`
	BookingID     primitive.ObjectID `json:"bookingId" bson:"bookingId" index:"single:1"`
	Status        string             `json:"status" bson:"status"` // draft | issued | paid | void
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`
	Currency      string             `json:"currency" bson:"currency"`
	IssuedAt      int64              `json:"issuedAt,omitempty" bson:"issuedAt,omitempty"`
	DueAt         int64              `json:"dueAt,omitempty" bson:"dueAt,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// InvoiceItem là một dòng trong hóa đơn.
type InvoiceItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	InvoiceID   primitive.ObjectID `json:"invoiceId" bson:"invoiceId" index:"single:1"`
	Description string             `json:"description" bson:"description"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	UnitPrice   float64            `json:"unitPrice" bson:"unitPrice"`
	Amount      float64            `json:"amount" bson:"amount"` // Quantity * UnitPrice, tính khi tạo
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
