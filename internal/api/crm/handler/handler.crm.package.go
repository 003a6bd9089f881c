package crmhdl

import (
	"fmt"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
)

// TravelPackageHandler CRUD gói tour
type TravelPackageHandler struct {
	*basehdl.BaseHandler[models.TravelPackage, crmdto.TravelPackageCreateInput, crmdto.TravelPackageUpdateInput]
}

// NewTravelPackageHandler tạo mới TravelPackageHandler
func NewTravelPackageHandler() (*TravelPackageHandler, error) {
	packageService, err := crmsvc.NewTravelPackageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create travel package service: %v", err)
	}
	return &TravelPackageHandler{
		BaseHandler: basehdl.NewBaseHandler[models.TravelPackage, crmdto.TravelPackageCreateInput, crmdto.TravelPackageUpdateInput](packageService),
	}, nil
}
