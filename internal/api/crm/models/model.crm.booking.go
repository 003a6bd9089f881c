package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái booking.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusPaid      = "paid"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking là một lượt đặt tour của khách.
type Booking struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	ContactID   primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`
	PackageID   primitive.ObjectID `json:"packageId,omitempty" bson:"packageId,omitempty"`
	Status      string             `json:"status" bson:"status" index:"single:1"` // pending | confirmed | paid | completed | cancelled
	TravelDate  int64              `json:"travelDate" bson:"travelDate"`          // Ngày khởi hành (mili giây)
	Adults      int                `json:"adults" bson:"adults"`
	Children    int                `json:"children" bson:"children"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	Currency    string             `json:"currency" bson:"currency"` // VND, USD, ...
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
