package crmhdl

import (
	"fmt"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
)

// BookingHandler CRUD booking tour
type BookingHandler struct {
	*basehdl.BaseHandler[models.Booking, crmdto.BookingCreateInput, crmdto.BookingUpdateInput]
}

// NewBookingHandler tạo mới BookingHandler
func NewBookingHandler() (*BookingHandler, error) {
	bookingService, err := crmsvc.NewBookingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %v", err)
	}
	return &BookingHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Booking, crmdto.BookingCreateInput, crmdto.BookingUpdateInput](bookingService),
	}, nil
}
