// Package models - model tweet thuộc domain tweet.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/user/models"
)

// Tweet là bài đăng ngắn của người dùng.
// Xóa tweet kéo theo xóa các like của tweet đó.
type Tweet struct {
	_Relationships struct{} `relationship:"collection:likes,field:tweet,cascade:true"`

	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// TweetWithOwner là tweet kèm projection công khai của người đăng
type TweetWithOwner struct {
	Tweet
	Owner usermodels.PublicProfile `json:"owner"`
}
