package crmsvc

import (
	"fmt"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// ItineraryService quản lý lịch trình tour
type ItineraryService struct {
	*basesvc.BaseServiceMongoImpl[models.Itinerary]
}

// NewItineraryService tạo mới ItineraryService
func NewItineraryService() (*ItineraryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Itineraries)
	if !exist {
		return nil, fmt.Errorf("failed to get itineraries collection: %v", common.ErrNotFound)
	}

	return &ItineraryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Itinerary](collection),
	}, nil
}
