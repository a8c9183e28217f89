// Package videosvc - service video: đăng, xem, liệt kê, cập nhật, xóa
// và bật/tắt publish. Mọi mutation có chủ sở hữu đều lọc theo
// {_id, owner} trong một lệnh atomic; không khớp trả về NotFound,
// không phân biệt video không tồn tại hay thuộc người khác.
package videosvc

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	usermodels "vidtube/internal/api/user/models"
	videodto "vidtube/internal/api/video/dto"
	models "vidtube/internal/api/video/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/media"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
	userService  *basesvc.BaseServiceMongoImpl[usermodels.User]
	comments     *mongo.Collection
	likes        *mongo.Collection
	cascadeRules []basesvc.CascadeRule
	resolver     basesvc.CollectionResolver
}

// NewVideoService tạo mới VideoService.
// Rules cascade đọc từ struct tag của model Video.
func NewVideoService(videos, users, comments, likes *mongo.Collection) *VideoService {
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videos),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](users),
		comments:             comments,
		likes:                likes,
		cascadeRules:         basesvc.ParseCascadeTag(reflect.TypeOf(models.Video{})),
		resolver: basesvc.CollectionResolver{
			global.MongoDB_ColNames.Comments: comments,
			global.MongoDB_ColNames.Likes:    likes,
		},
	}
}

// Publish tạo video mới, mặc định ở trạng thái published
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, input *videodto.VideoPublishInput, videoFile, thumbnail media.Asset) (models.Video, error) {
	video := models.Video{
		Owner:           owner,
		VideoFile:       videoFile,
		Thumbnail:       thumbnail,
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		DurationSeconds: input.DurationSeconds,
		IsPublished:     true,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, video)
}

// GetByID trả về video kèm chủ kênh, tăng views atomic và ghi video vào
// watchHistory của người xem ($addToSet nên không trùng lặp).
// Video chưa publish chỉ chủ sở hữu xem được, người khác nhận NotFound.
func (s *VideoService) GetByID(ctx context.Context, videoID, viewerID primitive.ObjectID) (models.VideoWithOwner, error) {
	var zero models.VideoWithOwner

	filter := bson.M{
		"_id": videoID,
		"$or": []bson.M{
			{"isPublished": true},
			{"owner": viewerID},
		},
	}
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}
	video, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, update, nil)
	if err != nil {
		return zero, err
	}

	// Ghi lịch sử xem, lỗi ở đây không làm fail request
	historyUpdate := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	}
	if _, err := s.userService.UpdateById(ctx, viewerID, historyUpdate); err != nil && !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	owner, err := s.userService.FindOneById(ctx, video.Owner)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	return models.VideoWithOwner{Video: video, Owner: owner.PublicProfile()}, nil
}

// List liệt kê video đã publish, mới nhất trước, có phân trang.
// ownerID lọc theo kênh, query tìm trên title (không phân biệt hoa thường),
// extra là filter bổ sung client gửi qua query string (đã được handler
// validate và normalize).
func (s *VideoService) List(ctx context.Context, page, limit int64, ownerID primitive.ObjectID, query string, extra map[string]interface{}) (*ListResult, error) {
	filter := listFilter(ownerID, query, extra)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	paged, err := s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	items, err := s.JoinOwners(ctx, paged.Items)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Page:      paged.Page,
		Limit:     paged.Limit,
		ItemCount: paged.ItemCount,
		Total:     paged.Total,
		TotalPage: paged.TotalPage,
		Items:     items,
	}, nil
}

// listFilter gộp filter bổ sung của client vào điều kiện chuẩn.
// Điều kiện chuẩn gán sau nên client không ghi đè được isPublished,
// owner hay title.
func listFilter(ownerID primitive.ObjectID, query string, extra map[string]interface{}) bson.M {
	filter := bson.M{}
	for field, value := range extra {
		filter[field] = value
	}

	filter["isPublished"] = true
	if !ownerID.IsZero() {
		filter["owner"] = ownerID
	}
	if query != "" {
		filter["title"] = bson.M{"$regex": query, "$options": "i"}
	}
	return filter
}

// ListResult là trang video kèm chủ kênh đã join
type ListResult struct {
	Page      int64                   `json:"page"`
	Limit     int64                   `json:"limit"`
	ItemCount int64                   `json:"itemCount"`
	Total     int64                   `json:"total"`
	TotalPage int64                   `json:"totalPage"`
	Items     []models.VideoWithOwner `json:"items"`
}

// JoinOwners join projection chủ kênh vào danh sách video bằng một lần
// fetch batch theo $in
func (s *VideoService) JoinOwners(ctx context.Context, videos []models.Video) ([]models.VideoWithOwner, error) {
	result := make([]models.VideoWithOwner, 0, len(videos))
	if len(videos) == 0 {
		return result, nil
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(videos))
	seen := map[primitive.ObjectID]bool{}
	for _, v := range videos {
		if !seen[v.Owner] {
			seen[v.Owner] = true
			ownerIDs = append(ownerIDs, v.Owner)
		}
	}

	owners, err := s.userService.FindManyByIds(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	ownerByID := make(map[primitive.ObjectID]usermodels.PublicProfile, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o.PublicProfile()
	}

	for _, v := range videos {
		result = append(result, models.VideoWithOwner{Video: v, Owner: ownerByID[v.Owner]})
	}
	return result, nil
}

// Update cập nhật title/description/thumbnail của video thuộc owner.
// Trả về video sau cập nhật và thumbnail cũ (khác rỗng khi bị thay)
// để caller xóa object cũ khỏi kho media.
func (s *VideoService) Update(ctx context.Context, videoID, owner primitive.ObjectID, input *videodto.VideoUpdateInput, newThumbnail *media.Asset) (models.Video, media.Asset, error) {
	var zero models.Video
	var oldThumbnail media.Asset

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = strings.TrimSpace(input.Title)
	}
	if input.Description != "" {
		set["description"] = strings.TrimSpace(input.Description)
	}
	if newThumbnail != nil {
		set["thumbnail"] = *newThumbnail
	}
	if len(set) == 0 {
		return zero, oldThumbnail, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	// ReturnDocument Before để biết thumbnail cũ mà vẫn giữ mutation atomic.
	// FindOneAndUpdate gắn updatedAt vào chính map set, nên sau lời gọi
	// set chứa đủ dữ liệu để dựng lại document sau update mà không cần
	// đọc thêm một lần nữa.
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	previous, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, basesvc.OwnerScoped(videoID, owner), &basesvc.UpdateData{Set: set}, opts)
	if err != nil {
		return zero, oldThumbnail, err
	}
	if newThumbnail != nil {
		oldThumbnail = previous.Thumbnail
	}

	return patchedVideo(previous, set), oldThumbnail, nil
}

// patchedVideo dựng document video sau update từ bản Before và map $set
// đã gửi đi, tránh một lần đọc lại có thể trả về NotFound khi video vừa
// bị xóa ngay sau update thành công.
func patchedVideo(previous models.Video, set map[string]interface{}) models.Video {
	updated := previous
	if title, ok := set["title"].(string); ok {
		updated.Title = title
	}
	if description, ok := set["description"].(string); ok {
		updated.Description = description
	}
	if thumbnail, ok := set["thumbnail"].(media.Asset); ok {
		updated.Thumbnail = thumbnail
	}
	if updatedAt, ok := set["updatedAt"].(int64); ok {
		updated.UpdatedAt = updatedAt
	}
	return updated
}

// Delete xóa video thuộc owner trong một lệnh find-and-delete, sau đó
// cascade: like trên các comment của video, rồi comment và like của
// video theo rules từ struct tag. Trả về video đã xóa để caller dọn media.
func (s *VideoService) Delete(ctx context.Context, videoID, owner primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	deleted, err := s.BaseServiceMongoImpl.FindOneAndDelete(ctx, basesvc.OwnerScoped(videoID, owner), nil)
	if err != nil {
		return zero, err
	}

	// Like trên comment tham chiếu qua comment id nên phải gom id trước
	// khi comment bị xóa
	commentIDs, err := s.commentIDsOfVideo(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if len(commentIDs) > 0 {
		if _, err := s.likes.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": commentIDs}}); err != nil {
			return zero, common.ConvertMongoError(err)
		}
	}

	if _, err := basesvc.CascadeDelete(ctx, s.resolver, s.cascadeRules, []primitive.ObjectID{videoID}); err != nil {
		return zero, err
	}
	return deleted, nil
}

// commentIDsOfVideo trả về id các comment thuộc video
func (s *VideoService) commentIDsOfVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := s.comments.Find(ctx, bson.M{"video": videoID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// TogglePublish đảo trạng thái publish của video thuộc owner.
// Update lọc thêm theo trạng thái vừa đọc, toggle đua nhau chỉ có một
// bên thắng, bên thua nhận NotFound.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, owner primitive.ObjectID) (models.Video, error) {
	var zero models.Video

	current, err := s.BaseServiceMongoImpl.FindOne(ctx, basesvc.OwnerScoped(videoID, owner), nil)
	if err != nil {
		return zero, err
	}

	filter := bson.M{"_id": videoID, "owner": owner, "isPublished": current.IsPublished}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !current.IsPublished},
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, update, nil)
}
