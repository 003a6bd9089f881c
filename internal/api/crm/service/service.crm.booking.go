package crmsvc

import (
	"fmt"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// BookingService quản lý booking tour
type BookingService struct {
	*basesvc.BaseServiceMongoImpl[models.Booking]
}

// NewBookingService tạo mới BookingService
func NewBookingService() (*BookingService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("failed to get bookings collection: %v", common.ErrNotFound)
	}

	return &BookingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Booking](collection),
	}, nil
}
