// Package likesvc - service like: toggle like video/comment/tweet và
// danh sách video đã like.
//
// Toggle chạy atomic: FindOneAndDelete trên đúng cặp (target, likedBy);
// xóa được nghĩa là trạng thái mới là inactive. Không có record thì
// InsertOne; hai toggle đua nhau cùng insert sẽ có một bên dính lỗi
// duplicate key từ unique index và được giải bằng một lần retry delete.
package likesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	commentmodels "vidtube/internal/api/comment/models"
	models "vidtube/internal/api/like/models"
	tweetmodels "vidtube/internal/api/tweet/models"
	videomodels "vidtube/internal/api/video/models"
	videosvc "vidtube/internal/api/video/service"
	"vidtube/internal/common"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến like
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
	videoService   *videosvc.VideoService
	commentService *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	tweetService   *basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
}

// NewLikeService tạo mới LikeService
func NewLikeService(likes, comments, tweets *mongo.Collection, videoService *videosvc.VideoService) *LikeService {
	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likes),
		videoService:         videoService,
		commentService:       basesvc.NewBaseServiceMongo[commentmodels.Comment](comments),
		tweetService:         basesvc.NewBaseServiceMongo[tweetmodels.Tweet](tweets),
	}
}

// ToggleVideoLike toggle like trên video. Video phải tồn tại (NotFound)
// và đã publish (Forbidden).
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID, userID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	video, err := s.videoService.FindOneById(ctx, videoID)
	if err != nil {
		return zero, err
	}
	if !video.IsPublished {
		return zero, common.ErrForbidden
	}

	active, err := s.toggle(ctx,
		bson.M{"video": videoID, "likedBy": userID},
		models.Like{Video: videoID, LikedBy: userID},
	)
	if err != nil {
		return zero, err
	}
	return models.ToggleResult{Active: active}, nil
}

// ToggleCommentLike toggle like trên comment. Comment phải tồn tại.
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	if _, err := s.commentService.FindOneById(ctx, commentID); err != nil {
		return zero, err
	}

	active, err := s.toggle(ctx,
		bson.M{"comment": commentID, "likedBy": userID},
		models.Like{Comment: commentID, LikedBy: userID},
	)
	if err != nil {
		return zero, err
	}
	return models.ToggleResult{Active: active}, nil
}

// ToggleTweetLike toggle like trên tweet. Tweet phải tồn tại.
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID, userID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	if _, err := s.tweetService.FindOneById(ctx, tweetID); err != nil {
		return zero, err
	}

	active, err := s.toggle(ctx,
		bson.M{"tweet": tweetID, "likedBy": userID},
		models.Like{Tweet: tweetID, LikedBy: userID},
	)
	if err != nil {
		return zero, err
	}
	return models.ToggleResult{Active: active}, nil
}

// toggle đảo trạng thái của join record khớp pairFilter.
// Trả về true nếu record vừa được tạo (trạng thái active), false nếu
// record vừa bị xóa.
func (s *LikeService) toggle(ctx context.Context, pairFilter bson.M, doc models.Like) (bool, error) {
	return basesvc.ToggleJoin[models.Like](ctx, s.BaseServiceMongoImpl, pairFilter, doc)
}

// LikedVideos trả về các video người dùng đã like, kèm chủ kênh,
// like mới nhất trước
func (s *LikeService) LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]videomodels.VideoWithOwner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	likes, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{
		"likedBy": userID,
		"video":   bson.M{"$exists": true},
	}, opts)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]primitive.ObjectID, 0, len(likes))
	for _, l := range likes {
		videoIDs = append(videoIDs, l.Video)
	}
	if len(videoIDs) == 0 {
		return []videomodels.VideoWithOwner{}, nil
	}

	videos, err := s.videoService.FindManyByIds(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	// Giữ thứ tự theo thời điểm like, bỏ qua video đã bị xóa
	videoByID := make(map[primitive.ObjectID]videomodels.Video, len(videos))
	for _, v := range videos {
		videoByID[v.ID] = v
	}
	ordered := make([]videomodels.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := videoByID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	return s.videoService.JoinOwners(ctx, ordered)
}
