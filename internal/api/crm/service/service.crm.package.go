package crmsvc

import (
	"fmt"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// TravelPackageService quản lý gói tour
type TravelPackageService struct {
	*basesvc.BaseServiceMongoImpl[models.TravelPackage]
}

// NewTravelPackageService tạo mới TravelPackageService
func NewTravelPackageService() (*TravelPackageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TravelPackages)
	if !exist {
		return nil, fmt.Errorf("failed to get travel_packages collection: %v", common.ErrNotFound)
	}

	return &TravelPackageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TravelPackage](collection),
	}, nil
}
