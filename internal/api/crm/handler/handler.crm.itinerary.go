package crmhdl

import (
	"fmt"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
)

// ItineraryHandler CRUD lịch trình tour
type ItineraryHandler struct {
	*basehdl.BaseHandler[models.Itinerary, crmdto.ItineraryCreateInput, crmdto.ItineraryUpdateInput]
}

// NewItineraryHandler tạo mới ItineraryHandler
func NewItineraryHandler() (*ItineraryHandler, error) {
	itineraryService, err := crmsvc.NewItineraryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create itinerary service: %v", err)
	}
	return &ItineraryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Itinerary, crmdto.ItineraryCreateInput, crmdto.ItineraryUpdateInput](itineraryService),
	}, nil
}
