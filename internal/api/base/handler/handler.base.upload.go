package basehdl

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/common"
)

// SaveTempUpload lưu file multipart vào thư mục tạm và trả về đường dẫn.
// Tên file tạm chứa timestamp nano để không đụng nhau giữa các request.
// File tạm do media.Storage xóa sau khi upload, dù thành công hay thất bại.
func SaveTempUpload(c fiber.Ctx, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu file '%s' trong form", field),
			common.StatusBadRequest,
			err,
		)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))
	localPath := filepath.Join(os.TempDir(), name)
	if err := c.SaveFile(fileHeader, localPath); err != nil {
		return "", common.NewError(common.ErrCodeMediaUpload, "Không thể lưu file tạm", common.StatusInternalServerError, err.Error())
	}
	return localPath, nil
}

// SaveOptionalTempUpload như SaveTempUpload nhưng field vắng mặt không phải lỗi,
// trả về đường dẫn rỗng.
func SaveOptionalTempUpload(c fiber.Ctx, field string) (string, error) {
	// FormFile trả lỗi khi field không có trong form
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename))
	localPath := filepath.Join(os.TempDir(), name)
	if err := c.SaveFile(fileHeader, localPath); err != nil {
		return "", common.NewError(common.ErrCodeMediaUpload, "Không thể lưu file tạm", common.StatusInternalServerError, err.Error())
	}
	return localPath, nil
}
