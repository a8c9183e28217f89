// Package models - model bình luận thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/user/models"
)

// Comment đại diện cho một bình luận trên video.
// Xóa comment kéo theo xóa các like của comment đó.
type Comment struct {
	_Relationships struct{} `relationship:"collection:likes,field:comment,cascade:true"`

	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"single:1"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CommentWithMeta là comment kèm chủ sở hữu và số like, join ở tầng ứng dụng
type CommentWithMeta struct {
	Comment
	Owner     usermodels.PublicProfile `json:"owner"`
	LikeCount int64                    `json:"likeCount"`
}
