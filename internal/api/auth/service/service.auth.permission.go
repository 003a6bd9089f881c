package authsvc

import (
	models "travel_crm/internal/api/auth/models"
)

// RolePages ánh xạ role sang danh sách trang (tính năng) được phép truy cập.
// Frontend dùng map này (qua GET /auth/me) để ẩn/hiện menu.
var RolePages = map[string][]string{
	models.RoleAdmin: {
		"dashboard",
		"conversations",
		"bookings",
		"itineraries",
		"invoices",
		"contacts",
		"packages",
		"hotels",
		"users",
		"settings",
	},
	models.RoleUser: {
		"dashboard",
		"conversations",
		"bookings",
		"itineraries",
		"invoices",
		"contacts",
		"packages",
		"hotels",
	},
	models.RoleGuest: {
		"dashboard",
	},
}

// GetRolePages trả về danh sách trang được phép của role.
// Role không xác định được coi như guest.
func GetRolePages(role string) []string {
	if pages, ok := RolePages[role]; ok {
		return pages
	}
	return RolePages[models.RoleGuest]
}

// RoleCanAccess kiểm tra role có quyền truy cập trang không.
func RoleCanAccess(role string, page string) bool {
	for _, p := range GetRolePages(role) {
		if p == page {
			return true
		}
	}
	return false
}
