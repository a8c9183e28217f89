// Package models - model subscription thuộc domain subscription.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription là join record: subscriber theo dõi channel.
// Unique compound index trên (subscriber, channel) chặn theo dõi trùng
// ở tầng storage, toggle đua nhau được giải bằng lỗi duplicate key.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"single:1;compound:subscriber_channel_unique"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"single:1;compound:subscriber_channel_unique"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToggleResult là kết quả của một thao tác toggle subscription
type ToggleResult struct {
	Active bool `json:"active"`
}
