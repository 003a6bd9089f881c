// Package utility - Test vòng đời token và băm mật khẩu.
package utility

import (
	"errors"
	"testing"

	"travel_crm/internal/common"
)

func TestCreateToken_ParseLaiDungClaims(t *testing.T) {
	token, err := CreateToken("test-secret", "user-123", "admin")
	if err != nil {
		t.Fatalf("CreateToken trả lỗi: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken trả lỗi với token vừa tạo: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, muốn %q", claims.UserID, "user-123")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, muốn %q", claims.Role, "admin")
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "user-123", "user")
	if err != nil {
		t.Fatalf("CreateToken trả lỗi: %v", err)
	}

	if _, err := ParseToken("secret-b", token); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("token ký sai secret phải trả ErrTokenInvalid, nhận: %v", err)
	}
}

func TestParseToken_ChuoiRac(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("chuỗi rác phải trả ErrTokenInvalid, nhận: %v", err)
	}
}

func TestHashPassword_CompareKhopVaKhongKhop(t *testing.T) {
	hashed, err := HashPassword("Admin@123456")
	if err != nil {
		t.Fatalf("HashPassword trả lỗi: %v", err)
	}
	if hashed == "Admin@123456" {
		t.Fatal("hash không được bằng mật khẩu gốc")
	}

	if err := ComparePassword(hashed, "Admin@123456"); err != nil {
		t.Errorf("mật khẩu đúng phải khớp, nhận lỗi: %v", err)
	}
	if err := ComparePassword(hashed, "sai-mat-khau"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("mật khẩu sai phải trả ErrInvalidCredentials, nhận: %v", err)
	}
}
