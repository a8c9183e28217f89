package utility

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"vidtube/internal/common"
)

// TokenClaims là payload của access/refresh token
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// CreateToken tạo JWT ký HMAC-SHA256 chứa userID, hết hạn sau ttl.
// Dùng chung cho cả access token và refresh token, chỉ khác ttl và secret.
func CreateToken(userID string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err.Error())
	}
	return signed, nil
}

// ParseToken xác thực chữ ký và hạn dùng của token, trả về userID.
// Token hết hạn trả về ErrTokenExpired, token sai trả về ErrTokenInvalid.
func ParseToken(tokenString string, secret string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}
