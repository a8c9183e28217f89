// Package subscriptionsvc - service subscription: toggle theo dõi kênh,
// danh sách subscriber của kênh và danh sách kênh đã theo dõi.
package subscriptionsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	models "vidtube/internal/api/subscription/models"
	usermodels "vidtube/internal/api/user/models"
	"vidtube/internal/common"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến subscription
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
	userService *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService(subscriptions, users *mongo.Collection) *SubscriptionService {
	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subscriptions),
		userService:          basesvc.NewBaseServiceMongo[usermodels.User](users),
	}
}

// Toggle đảo trạng thái theo dõi của subscriber với channel.
// Không cho tự theo dõi chính mình; channel phải là user tồn tại.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID, subscriberID primitive.ObjectID) (models.ToggleResult, error) {
	var zero models.ToggleResult

	if channelID == subscriberID {
		return zero, common.NewError(
			common.ErrCodeValidation,
			"Không thể tự theo dõi kênh của chính mình",
			common.StatusBadRequest,
			nil,
		)
	}
	if _, err := s.userService.FindOneById(ctx, channelID); err != nil {
		return zero, err
	}

	pairFilter := bson.M{"subscriber": subscriberID, "channel": channelID}
	active, err := basesvc.ToggleJoin[models.Subscription](ctx, s.BaseServiceMongoImpl, pairFilter, models.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
	})
	if err != nil {
		return zero, err
	}
	return models.ToggleResult{Active: active}, nil
}

// ChannelSubscribers trả về profile công khai của những người theo dõi kênh
func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channelID primitive.ObjectID) ([]usermodels.PublicProfile, error) {
	if _, err := s.userService.FindOneById(ctx, channelID); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	subs, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"channel": channelID}, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.Subscriber)
	}
	return s.profilesInOrder(ctx, ids)
}

// SubscribedChannels trả về profile công khai của các kênh mà subscriber
// đang theo dõi. Chỉ chính subscriber được xem danh sách của mình.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID, callerID primitive.ObjectID) ([]usermodels.PublicProfile, error) {
	if subscriberID != callerID {
		return nil, common.ErrForbidden
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	subs, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{"subscriber": subscriberID}, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.Channel)
	}
	return s.profilesInOrder(ctx, ids)
}

// profilesInOrder lấy profile công khai theo danh sách id, giữ nguyên
// thứ tự và bỏ qua user đã bị xóa
func (s *SubscriptionService) profilesInOrder(ctx context.Context, ids []primitive.ObjectID) ([]usermodels.PublicProfile, error) {
	if len(ids) == 0 {
		return []usermodels.PublicProfile{}, nil
	}

	users, err := s.userService.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]usermodels.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	profiles := make([]usermodels.PublicProfile, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			profiles = append(profiles, u.PublicProfile())
		}
	}
	return profiles, nil
}
