// Package authsvc - Test ánh xạ role sang trang được phép.
package authsvc

import (
	"testing"

	models "travel_crm/internal/api/auth/models"
)

func TestGetRolePages_RoleKhongXacDinh(t *testing.T) {
	pages := GetRolePages("role-la")
	if len(pages) != len(RolePages[models.RoleGuest]) {
		t.Errorf("role không xác định phải được coi như guest, nhận: %v", pages)
	}
}

func TestRoleCanAccess(t *testing.T) {
	if !RoleCanAccess(models.RoleAdmin, "users") {
		t.Error("admin phải truy cập được trang users")
	}
	if RoleCanAccess(models.RoleUser, "users") {
		t.Error("user thường không được truy cập trang users")
	}
	if RoleCanAccess(models.RoleUser, "settings") {
		t.Error("user thường không được truy cập trang settings")
	}
	if !RoleCanAccess(models.RoleUser, "conversations") {
		t.Error("user thường phải truy cập được trang conversations")
	}
	if RoleCanAccess(models.RoleGuest, "bookings") {
		t.Error("guest chỉ được xem dashboard")
	}
}
