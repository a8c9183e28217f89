package utility

import (
	"golang.org/x/crypto/bcrypt"

	"vidtube/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err.Error())
	}
	return string(hashed), nil
}

// ComparePassword so khớp mật khẩu với hash trong database.
// Sai mật khẩu trả về ErrInvalidCredentials, không lộ chi tiết.
func ComparePassword(hashedPassword string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
