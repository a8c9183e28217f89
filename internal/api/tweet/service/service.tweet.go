// Package tweetsvc - service tweet: tạo, liệt kê theo người đăng,
// cập nhật và xóa tweet.
package tweetsvc

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	models "vidtube/internal/api/tweet/models"
	usermodels "vidtube/internal/api/user/models"
	"vidtube/internal/global"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	userService  *basesvc.BaseServiceMongoImpl[usermodels.User]
	cascadeRules []basesvc.CascadeRule
	resolver     basesvc.CollectionResolver
}

// NewTweetService tạo mới TweetService.
// Rules cascade đọc từ struct tag của model Tweet.
func NewTweetService(tweets, users, likes *mongo.Collection) *TweetService {
	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweets),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](users),
		cascadeRules:         basesvc.ParseCascadeTag(reflect.TypeOf(models.Tweet{})),
		resolver: basesvc.CollectionResolver{
			global.MongoDB_ColNames.Likes: likes,
		},
	}
}

// Create tạo tweet mới cho owner
func (s *TweetService) Create(ctx context.Context, ownerID primitive.ObjectID, content string) (models.Tweet, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, models.Tweet{
		Owner:   ownerID,
		Content: strings.TrimSpace(content),
	})
}

// ListByUser trả về tweet của một người dùng kèm profile công khai,
// mới nhất trước. User phải tồn tại.
func (s *TweetService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TweetWithOwner, error) {
	owner, err := s.userService.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	tweets, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"owner": userID}, opts)
	if err != nil {
		return nil, err
	}

	profile := owner.PublicProfile()
	result := make([]models.TweetWithOwner, 0, len(tweets))
	for _, t := range tweets {
		result = append(result, models.TweetWithOwner{Tweet: t, Owner: profile})
	}
	return result, nil
}

// Update cập nhật nội dung tweet. Chỉ owner sửa được; không khớp
// (không tồn tại hoặc của người khác) đều trả NotFound.
func (s *TweetService) Update(ctx context.Context, tweetID, ownerID primitive.ObjectID, content string) (models.Tweet, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"content": strings.TrimSpace(content)},
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, basesvc.OwnerScoped(tweetID, ownerID), update, nil)
}

// Delete xóa tweet của owner rồi dọn các like trỏ tới tweet đó
func (s *TweetService) Delete(ctx context.Context, tweetID, ownerID primitive.ObjectID) (models.Tweet, error) {
	var zero models.Tweet

	deleted, err := s.BaseServiceMongoImpl.FindOneAndDelete(ctx, basesvc.OwnerScoped(tweetID, ownerID), nil)
	if err != nil {
		return zero, err
	}

	if _, err := basesvc.CascadeDelete(ctx, s.resolver, s.cascadeRules, []primitive.ObjectID{deleted.ID}); err != nil {
		return zero, err
	}
	return deleted, nil
}
