// Package models - model like thuộc domain like.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like là join record giữa người dùng và đúng một target:
// video, comment hoặc tweet. Target không set sẽ vắng mặt trong
// document (omitempty), nhờ đó partial unique index trên từng cặp
// (target, likedBy) đảm bảo mỗi người chỉ like một target một lần
// ở tầng storage — toggle đua nhau được phân thắng bại bằng lỗi
// duplicate key thay vì đọc trước khi ghi.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Video     primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"compound:like_video_unique,partial:video"`
	Comment   primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty" index:"compound:like_comment_unique,partial:comment"`
	Tweet     primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty" index:"compound:like_tweet_unique,partial:tweet"`
	LikedBy   primitive.ObjectID `json:"likedBy" bson:"likedBy" index:"single:1;compound:like_video_unique;compound:like_comment_unique;compound:like_tweet_unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToggleResult là kết quả của một thao tác toggle
type ToggleResult struct {
	Active bool `json:"active"`
}
