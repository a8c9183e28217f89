// Package userhdl xử lý các request xác thực và quản lý tài khoản.
package userhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	userdto "vidtube/internal/api/user/dto"
	models "vidtube/internal/api/user/models"
	usersvc "vidtube/internal/api/user/service"
	"vidtube/internal/global"
	"vidtube/internal/logger"
	"vidtube/internal/media"
)

// UserHandler xử lý các request liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, userdto.UserRegisterInput, userdto.UserUpdateAccountInput]
	userService *usersvc.UserService
	storage     *media.Storage
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler(userService *usersvc.UserService, storage *media.Storage) *UserHandler {
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, userdto.UserRegisterInput, userdto.UserUpdateAccountInput](userService.BaseServiceMongoImpl),
		userService: userService,
		storage:     storage,
	}
}

// HandleRegister đăng ký người dùng: multipart gồm fullName, email,
// userName, password, avatar (bắt buộc) và coverImage (tùy chọn)
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	input := userdto.UserRegisterInput{
		FullName: c.FormValue("fullName"),
		Email:    c.FormValue("email"),
		UserName: c.FormValue("userName"),
		Password: c.FormValue("password"),
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	avatarPath, err := basehdl.SaveTempUpload(c, "avatar")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	avatarAsset, err := h.storage.Store(c.Context(), avatarPath, media.KindImage)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var coverAsset *media.Asset
	coverPath, err := basehdl.SaveOptionalTempUpload(c, "coverImage")
	if err != nil {
		h.removeImage(c, *avatarAsset)
		h.HandleResponse(c, nil, err)
		return nil
	}
	if coverPath != "" {
		coverAsset, err = h.storage.Store(c.Context(), coverPath, media.KindImage)
		if err != nil {
			h.removeImage(c, *avatarAsset)
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	user, err := h.userService.Register(c.Context(), &input, *avatarAsset, coverAsset)
	if err != nil {
		h.removeImage(c, *avatarAsset)
		if coverAsset != nil {
			h.removeImage(c, *coverAsset)
		}
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("register", c, map[string]interface{}{"user_id": user.ID.Hex()})
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogin đăng nhập bằng email hoặc userName kèm password.
// Token trả về trong body và trong cặp cookie httpOnly.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input userdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, accessToken, refreshToken, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.setAuthCookies(c, accessToken, refreshToken)
	logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})
	h.HandleResponse(c, fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, nil)
	return nil
}

// HandleRefreshToken xoay cặp token từ refresh token trong cookie hoặc body
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		var input userdto.UserRefreshTokenInput
		// Body rỗng không phải lỗi, thiếu token sẽ được service báo
		_ = h.ParseRequestBody(c, &input)
		refreshToken = input.RefreshToken
	}

	user, accessToken, newRefreshToken, err := h.userService.RefreshTokens(c.Context(), refreshToken)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.setAuthCookies(c, accessToken, newRefreshToken)
	h.HandleResponse(c, fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": newRefreshToken,
	}, nil)
	return nil
}

// HandleLogout xóa refresh token đang lưu và dọn cookie
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if err := h.userService.Logout(c.Context(), userID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.clearAuthCookies(c)
	logger.LogAuth("logout", c, map[string]interface{}{"user_id": userID.Hex()})
	h.HandleResponse(c, nil, nil)
	return nil
}

// HandleChangePassword đổi mật khẩu người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input userdto.UserChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.userService.ChangePassword(c.Context(), userID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetCurrentUser trả về profile người dùng hiện tại
func (h *UserHandler) HandleGetCurrentUser(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.FindOneById(c.Context(), userID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateAccount cập nhật fullName/email của người dùng hiện tại
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input userdto.UserUpdateAccountInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.UpdateAccount(c.Context(), userID, &input)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateAvatar thay avatar, avatar cũ bị xóa khỏi kho media
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	localPath, err := basehdl.SaveTempUpload(c, "avatar")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	asset, err := h.storage.Store(c.Context(), localPath, media.KindImage)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	oldAvatar, user, err := h.userService.UpdateAvatar(c.Context(), userID, *asset)
	if err != nil {
		h.removeImage(c, *asset)
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.removeImage(c, oldAvatar)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUpdateCoverImage thay ảnh bìa, ảnh cũ (nếu có) bị xóa khỏi kho media
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	localPath, err := basehdl.SaveTempUpload(c, "coverImage")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	asset, err := h.storage.Store(c.Context(), localPath, media.KindImage)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	oldCover, user, err := h.userService.UpdateCoverImage(c.Context(), userID, *asset)
	if err != nil {
		h.removeImage(c, *asset)
		h.HandleResponse(c, nil, err)
		return nil
	}
	if oldCover != nil {
		h.removeImage(c, *oldCover)
	}
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleWatchHistory trả về lịch sử xem kèm video và chủ kênh
func (h *UserHandler) HandleWatchHistory(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	history, err := h.userService.WatchHistory(c.Context(), userID)
	h.HandleResponse(c, history, err)
	return nil
}

// setAuthCookies gắn cặp token vào cookie httpOnly
func (h *UserHandler) setAuthCookies(c fiber.Ctx, accessToken, refreshToken string) {
	accessTTL := time.Duration(global.ServerConfig.AccessTokenTTLMinutes) * time.Minute
	refreshTTL := time.Duration(global.ServerConfig.RefreshTokenTTLHours) * time.Hour

	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTTL),
		HTTPOnly: true,
		Secure:   global.ServerConfig.EnableTLS,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTTL),
		HTTPOnly: true,
		Secure:   global.ServerConfig.EnableTLS,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// clearAuthCookies xóa cặp cookie token
func (h *UserHandler) clearAuthCookies(c fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   global.ServerConfig.EnableTLS,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
	}
}

// removeImage xóa image object khỏi kho media, lỗi chỉ ghi log
func (h *UserHandler) removeImage(c fiber.Ctx, asset media.Asset) {
	if asset.Key == "" {
		return
	}
	if err := h.storage.Delete(c.Context(), asset.Key, media.KindImage); err != nil {
		logger.WithRequest(c).Warnf("Không thể xóa media object %s: %v", asset.Key, err)
	}
}
