// Package dashboardsvc - service dashboard: số liệu tổng hợp kênh và
// danh sách video quản trị của chính chủ kênh.
// Mọi số liệu tính ở tầng ứng dụng bằng count và fetch batch theo $in.
package dashboardsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	models "vidtube/internal/api/dashboard/models"
	videomodels "vidtube/internal/api/video/models"
	"vidtube/internal/common"
)

// DashboardService là cấu trúc chứa các phương thức liên quan đến dashboard
type DashboardService struct {
	videoService  *basesvc.BaseServiceMongoImpl[videomodels.Video]
	likes         *mongo.Collection
	subscriptions *mongo.Collection
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService(videos, likes, subscriptions *mongo.Collection) *DashboardService {
	return &DashboardService{
		videoService:  basesvc.NewBaseServiceMongo[videomodels.Video](videos),
		likes:         likes,
		subscriptions: subscriptions,
	}
}

// Stats trả về số liệu tổng hợp kênh của chính owner: số người theo dõi,
// số video, tổng lượt xem và tổng like trên các video của kênh
func (s *DashboardService) Stats(ctx context.Context, ownerID primitive.ObjectID) (models.ChannelStats, error) {
	var zero models.ChannelStats

	subscriberCount, err := s.subscriptions.CountDocuments(ctx, bson.M{"channel": ownerID})
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	videos, err := s.ownedVideos(ctx, ownerID)
	if err != nil {
		return zero, err
	}

	stats := models.ChannelStats{
		TotalSubscribers: subscriberCount,
		TotalVideos:      int64(len(videos)),
	}
	videoIDs := make([]primitive.ObjectID, 0, len(videos))
	for _, v := range videos {
		stats.TotalViews += v.Views
		videoIDs = append(videoIDs, v.ID)
	}

	if len(videoIDs) > 0 {
		likeCount, err := s.likes.CountDocuments(ctx, bson.M{"video": bson.M{"$in": videoIDs}})
		if err != nil {
			return zero, common.ConvertMongoError(err)
		}
		stats.TotalLikes = likeCount
	}
	return stats, nil
}

// Videos trả về toàn bộ video của kênh (kể cả draft) kèm số like,
// mới nhất trước
func (s *DashboardService) Videos(ctx context.Context, ownerID primitive.ObjectID) ([]models.VideoWithLikes, error) {
	videos, err := s.ownedVideos(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]models.VideoWithLikes, 0, len(videos))
	if len(videos) == 0 {
		return result, nil
	}

	videoIDs := make([]primitive.ObjectID, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}
	likeCounts, err := s.likeCountsFor(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	for _, v := range videos {
		result = append(result, models.VideoWithLikes{Video: v, LikeCount: likeCounts[v.ID]})
	}
	return result, nil
}

// ownedVideos trả về toàn bộ video thuộc owner, mới nhất trước
func (s *DashboardService) ownedVideos(ctx context.Context, ownerID primitive.ObjectID) ([]videomodels.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return s.videoService.Find(ctx, bson.M{"owner": ownerID}, opts)
}

// likeCountsFor đếm like theo video id bằng một truy vấn $in duy nhất
func (s *DashboardService) likeCountsFor(ctx context.Context, videoIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64, len(videoIDs))

	cursor, err := s.likes.Find(ctx,
		bson.M{"video": bson.M{"$in": videoIDs}},
		options.Find().SetProjection(bson.M{"video": 1}),
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Video primitive.ObjectID `bson:"video"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for _, d := range docs {
		counts[d.Video]++
	}
	return counts, nil
}
