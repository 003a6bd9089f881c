package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItineraryDay là một ngày trong lịch trình tour.
type ItineraryDay struct {
	DayNumber   int                `json:"dayNumber" bson:"dayNumber"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	HotelID     primitive.ObjectID `json:"hotelId,omitempty" bson:"hotelId,omitempty"` // Khách sạn nghỉ đêm (nếu có)
}

// Itinerary là lịch trình chi tiết gắn với một booking.
type Itinerary struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID  primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	BookingID primitive.ObjectID `json:"bookingId" bson:"bookingId" index:"single:1"`
	Title     string             `json:"title" bson:"title"`
	Days      []ItineraryDay     `json:"days" bson:"days"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
