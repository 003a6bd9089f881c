// Package crmsvc - các service thuộc domain CRM của đại lý du lịch.
package crmsvc

import (
	"fmt"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// ContactService quản lý liên hệ khách hàng
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[models.Contact]
}

// NewContactService tạo mới ContactService
func NewContactService() (*ContactService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("failed to get contacts collection: %v", common.ErrNotFound)
	}

	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Contact](collection),
	}, nil
}
