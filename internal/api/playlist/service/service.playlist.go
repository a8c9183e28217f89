// Package playlistsvc - service playlist: tạo, liệt kê theo người dùng,
// xem chi tiết, thêm/gỡ video, cập nhật và xóa playlist.
// Mutation có chủ sở hữu lọc theo {_id, owner} trong một lệnh atomic,
// không khớp trả về NotFound.
package playlistsvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	models "vidtube/internal/api/playlist/models"
	videomodels "vidtube/internal/api/video/models"
	videosvc "vidtube/internal/api/video/service"
	"vidtube/internal/common"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoService *videosvc.VideoService
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService(playlists *mongo.Collection, videoService *videosvc.VideoService) *PlaylistService {
	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlists),
		videoService:         videoService,
	}
}

// Create tạo playlist mới cho owner
func (s *PlaylistService) Create(ctx context.Context, ownerID primitive.ObjectID, name, description string) (models.Playlist, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, models.Playlist{
		Owner:       ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Videos:      []primitive.ObjectID{},
	})
}

// ListByUser trả về playlist của một người dùng kèm videoCount và
// totalViews, mới nhất trước. Số liệu tính ở tầng ứng dụng từ một lần
// fetch batch các video còn tồn tại.
func (s *PlaylistService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.PlaylistSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	playlists, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"owner": userID}, opts)
	if err != nil {
		return nil, err
	}

	// Gom toàn bộ video id của mọi playlist vào một lần fetch
	seen := map[primitive.ObjectID]bool{}
	var allIDs []primitive.ObjectID
	for _, p := range playlists {
		for _, id := range p.Videos {
			if !seen[id] {
				seen[id] = true
				allIDs = append(allIDs, id)
			}
		}
	}

	viewsByID := map[primitive.ObjectID]int64{}
	if len(allIDs) > 0 {
		videos, err := s.videoService.FindManyByIds(ctx, allIDs)
		if err != nil {
			return nil, err
		}
		for _, v := range videos {
			viewsByID[v.ID] = v.Views
		}
	}

	result := make([]models.PlaylistSummary, 0, len(playlists))
	for _, p := range playlists {
		summary := models.PlaylistSummary{Playlist: p}
		for _, id := range p.Videos {
			if views, ok := viewsByID[id]; ok {
				summary.VideoCount++
				summary.TotalViews += views
			}
		}
		result = append(result, summary)
	}
	return result, nil
}

// GetByID trả về playlist kèm các video đã join chủ kênh.
// Video đã bị xóa khỏi hệ thống được bỏ qua, thứ tự trong playlist giữ nguyên.
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID) (models.PlaylistDetail, error) {
	var zero models.PlaylistDetail

	playlist, err := s.BaseServiceMongoImpl.FindOneById(ctx, playlistID)
	if err != nil {
		return zero, err
	}

	detail := models.PlaylistDetail{
		Playlist: playlist,
		Videos:   []videomodels.VideoWithOwner{},
	}
	if len(playlist.Videos) == 0 {
		return detail, nil
	}

	videos, err := s.videoService.FindManyByIds(ctx, playlist.Videos)
	if err != nil {
		return zero, err
	}
	byID := make(map[primitive.ObjectID]videomodels.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]videomodels.Video, 0, len(playlist.Videos))
	for _, id := range playlist.Videos {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	joined, err := s.videoService.JoinOwners(ctx, ordered)
	if err != nil {
		return zero, err
	}
	detail.Videos = joined
	return detail, nil
}

// AddVideo thêm video vào playlist của owner bằng $addToSet, thêm trùng
// không tạo bản ghi kép. Video phải tồn tại.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, ownerID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.videoService.FindOneById(ctx, videoID); err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, basesvc.OwnerScoped(playlistID, ownerID), update, nil)
}

// RemoveVideo gỡ video khỏi playlist của owner bằng $pull. Filter yêu cầu
// video đang nằm trong playlist, không có thì trả NotFound luôn.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, ownerID primitive.ObjectID) (models.Playlist, error) {
	filter := bson.M{"_id": playlistID, "owner": ownerID, "videos": videoID}
	update := &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, update, nil)
}

// Update cập nhật name/description của playlist thuộc owner
func (s *PlaylistService) Update(ctx context.Context, playlistID, ownerID primitive.ObjectID, name, description string) (models.Playlist, error) {
	var zero models.Playlist

	set := map[string]interface{}{}
	if strings.TrimSpace(name) != "" {
		set["name"] = strings.TrimSpace(name)
	}
	if strings.TrimSpace(description) != "" {
		set["description"] = strings.TrimSpace(description)
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, basesvc.OwnerScoped(playlistID, ownerID), &basesvc.UpdateData{Set: set}, nil)
}

// Delete xóa playlist của owner. Playlist chỉ giữ tham chiếu nên không
// có cascade.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, ownerID primitive.ObjectID) (models.Playlist, error) {
	return s.BaseServiceMongoImpl.FindOneAndDelete(ctx, basesvc.OwnerScoped(playlistID, ownerID), nil)
}
