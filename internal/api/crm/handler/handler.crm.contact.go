// Package crmhdl - handler HTTP cho domain CRM.
// Hầu hết entity dùng CRUD chuẩn của BaseHandler; chỉ hóa đơn có flow riêng.
package crmhdl

import (
	"fmt"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
)

// ContactHandler CRUD liên hệ khách hàng
type ContactHandler struct {
	*basehdl.BaseHandler[models.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput]
}

// NewContactHandler tạo mới ContactHandler
func NewContactHandler() (*ContactHandler, error) {
	contactService, err := crmsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %v", err)
	}
	return &ContactHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Contact, crmdto.ContactCreateInput, crmdto.ContactUpdateInput](contactService),
	}, nil
}
