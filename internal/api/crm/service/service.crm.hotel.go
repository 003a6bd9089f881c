package crmsvc

import (
	"fmt"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// HotelService quản lý khách sạn đối tác
type HotelService struct {
	*basesvc.BaseServiceMongoImpl[models.Hotel]
}

// NewHotelService tạo mới HotelService
func NewHotelService() (*HotelService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Hotels)
	if !exist {
		return nil, fmt.Errorf("failed to get hotels collection: %v", common.ErrNotFound)
	}

	return &HotelService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Hotel](collection),
	}, nil
}
