// Package usersvc - service người dùng: đăng ký, đăng nhập, token,
// quản lý tài khoản và lịch sử xem.
package usersvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "vidtube/internal/api/base/service"
	userdto "vidtube/internal/api/user/dto"
	models "vidtube/internal/api/user/models"
	videomodels "vidtube/internal/api/video/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/media"
	"vidtube/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng.
// Collection được truyền tường minh khi khởi tạo ở cmd/server.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewUserService tạo mới UserService
func NewUserService(users *mongo.Collection, videos *mongo.Collection) *UserService {
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](users),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videos),
	}
}

// Register đăng ký người dùng mới. Email và userName trùng trả về lỗi 409
// nhờ unique index, không cần đọc trước khi ghi.
func (s *UserService) Register(ctx context.Context, input *userdto.UserRegisterInput, avatar media.Asset, coverImage *media.Asset) (models.User, error) {
	var zero models.User

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	user := models.User{
		UserName:   strings.ToLower(strings.TrimSpace(input.UserName)),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		FullName:   strings.TrimSpace(input.FullName),
		Avatar:     avatar,
		CoverImage: coverImage,
		Password:   hashed,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return zero, common.NewError(common.ErrCodeBusinessState, "Email hoặc userName đã được sử dụng", common.StatusConflict, nil)
		}
		return zero, err
	}
	return created, nil
}

// Login xác thực bằng email hoặc userName kèm password.
// Trả về user cùng cặp access/refresh token, refresh token được lưu lại.
func (s *UserService) Login(ctx context.Context, input *userdto.UserLoginInput) (models.User, string, string, error) {
	var zero models.User

	if input.Email == "" && input.UserName == "" {
		return zero, "", "", common.NewError(common.ErrCodeValidationInput, "Cần email hoặc userName để đăng nhập", common.StatusBadRequest, nil)
	}

	conditions := []bson.M{}
	if input.Email != "" {
		conditions = append(conditions, bson.M{"email": strings.ToLower(input.Email)})
	}
	if input.UserName != "" {
		conditions = append(conditions, bson.M{"userName": strings.ToLower(input.UserName)})
	}

	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"$or": conditions}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, "", "", common.ErrInvalidCredentials
		}
		return zero, "", "", err
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return zero, "", "", err
	}

	return s.issueTokens(ctx, user)
}

// RefreshTokens xoay cặp token từ refresh token hợp lệ.
// Refresh token phải khớp với token đang lưu trên user.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (models.User, string, string, error) {
	var zero models.User

	if refreshToken == "" {
		return zero, "", "", common.ErrTokenMissing
	}

	userIDHex, err := utility.ParseToken(refreshToken, global.ServerConfig.JwtSecret)
	if err != nil {
		return zero, "", "", err
	}
	userID := utility.String2ObjectID(userIDHex)
	if userID.IsZero() {
		return zero, "", "", common.ErrTokenInvalid
	}

	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, "", "", common.ErrTokenInvalid
		}
		return zero, "", "", err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return zero, "", "", common.ErrTokenInvalid
	}

	return s.issueTokens(ctx, user)
}

// issueTokens tạo cặp access/refresh token và lưu refresh token vào user
func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.User, string, string, error) {
	var zero models.User

	accessTTL := time.Duration(global.ServerConfig.AccessTokenTTLMinutes) * time.Minute
	refreshTTL := time.Duration(global.ServerConfig.RefreshTokenTTLHours) * time.Hour

	accessToken, err := utility.CreateToken(user.ID.Hex(), global.ServerConfig.JwtSecret, accessTTL)
	if err != nil {
		return zero, "", "", err
	}
	refreshToken, err := utility.CreateToken(user.ID.Hex(), global.ServerConfig.JwtSecret, refreshTTL)
	if err != nil {
		return zero, "", "", err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": refreshToken},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, update)
	if err != nil {
		return zero, "", "", err
	}
	return updated, accessToken, refreshToken, nil
}

// Logout xóa refresh token đang lưu của user
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, update)
	return err
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *userdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	if err := utility.ComparePassword(user.Password, input.OldPassword); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusBadRequest, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, update)
	return err
}

// UpdateAccount cập nhật fullName/email. Email trùng trả về 409.
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *userdto.UserUpdateAccountInput) (models.User, error) {
	var zero models.User

	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = strings.TrimSpace(input.FullName)
	}
	if input.Email != "" {
		set["email"] = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return zero, common.NewError(common.ErrCodeBusinessState, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		return zero, err
	}
	return updated, nil
}

// UpdateAvatar thay avatar, trả về asset cũ để caller xóa khỏi kho media
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, asset media.Asset) (media.Asset, models.User, error) {
	var zeroAsset media.Asset
	var zero models.User

	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return zeroAsset, zero, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"avatar": asset},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, update)
	if err != nil {
		return zeroAsset, zero, err
	}
	return user.Avatar, updated, nil
}

// UpdateCoverImage thay ảnh bìa, trả về asset cũ (nil nếu chưa từng có)
func (s *UserService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, asset media.Asset) (*media.Asset, models.User, error) {
	var zero models.User

	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, zero, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"coverImage": asset},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, update)
	if err != nil {
		return nil, zero, err
	}
	return user.CoverImage, updated, nil
}

// WatchHistory trả về danh sách video đã xem theo đúng thứ tự xem,
// mỗi video kèm projection công khai của chủ kênh (join ở tầng ứng dụng).
func (s *UserService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]videomodels.VideoWithOwner, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]videomodels.VideoWithOwner, 0, len(user.WatchHistory))
	if len(user.WatchHistory) == 0 {
		return result, nil
	}

	videos, err := s.videoService.FindManyByIds(ctx, user.WatchHistory)
	if err != nil {
		return nil, err
	}
	videoByID := make(map[primitive.ObjectID]videomodels.Video, len(videos))
	ownerIDs := make([]primitive.ObjectID, 0, len(videos))
	for _, v := range videos {
		videoByID[v.ID] = v
		ownerIDs = append(ownerIDs, v.Owner)
	}

	owners, err := s.BaseServiceMongoImpl.FindManyByIds(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	ownerByID := make(map[primitive.ObjectID]models.PublicProfile, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o.PublicProfile()
	}

	// Giữ thứ tự theo watchHistory, bỏ qua video đã bị xóa
	for _, videoID := range user.WatchHistory {
		video, ok := videoByID[videoID]
		if !ok {
			continue
		}
		result = append(result, videomodels.VideoWithOwner{
			Video: video,
			Owner: ownerByID[video.Owner],
		})
	}
	return result, nil
}
