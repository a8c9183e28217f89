// Package models - model video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/user/models"
	"vidtube/internal/media"
)

// Video đại diện cho một video đã upload.
// Xóa video kéo theo xóa like và comment của video đó (cascade:true);
// like trên các comment bị xóa do service xử lý riêng vì tham chiếu
// qua comment id chứ không qua video id.
type Video struct {
	_Relationships struct{} `relationship:"collection:likes,field:video,cascade:true|collection:comments,field:video,cascade:true"`

	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Owner           primitive.ObjectID `json:"owner" bson:"owner" index:"single:1"`
	VideoFile       media.Asset        `json:"videoFile" bson:"videoFile"`
	Thumbnail       media.Asset        `json:"thumbnail" bson:"thumbnail"`
	Title           string             `json:"title" bson:"title" index:"text"`
	Description     string             `json:"description" bson:"description"`
	DurationSeconds float64            `json:"durationSeconds" bson:"durationSeconds"`
	Views           int64              `json:"views" bson:"views"`
	IsPublished     bool               `json:"isPublished" bson:"isPublished" index:"single:1"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoWithOwner là video kèm projection công khai của chủ kênh,
// join ở tầng ứng dụng.
type VideoWithOwner struct {
	Video
	Owner usermodels.PublicProfile `json:"owner"`
}
