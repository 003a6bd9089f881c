package crmhdl

import (
	"fmt"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
)

// HotelHandler CRUD khách sạn đối tác
type HotelHandler struct {
	*basehdl.BaseHandler[models.Hotel, crmdto.HotelCreateInput, crmdto.HotelUpdateInput]
}

// NewHotelHandler tạo mới HotelHandler
func NewHotelHandler() (*HotelHandler, error) {
	hotelService, err := crmsvc.NewHotelService()
	if err != nil {
		return nil, fmt.Errorf("failed to create hotel service: %v", err)
	}
	return &HotelHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Hotel, crmdto.HotelCreateInput, crmdto.HotelUpdateInput](hotelService),
	}, nil
}
