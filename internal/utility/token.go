package utility

import (
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"travel_crm/internal/common"
)

// TokenTTL là thời gian sống mặc định của JWT token (30 ngày).
const TokenTTL = 30 * 24 * time.Hour

// TokenClaims là claims của JWT token phát hành cho người dùng.
type TokenClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token (HS256) cho người dùng.
// @params - secret ký token, userID và role đưa vào claims
// @returns - chuỗi token đã ký
func CreateToken(secret string, userID string, role string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken parse và verify JWT token.
// Trả về claims nếu token hợp lệ, lỗi ErrTokenExpired/ErrTokenInvalid nếu không.
func ParseToken(secret string, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
