// Package models - model playlist thuộc domain playlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	videomodels "vidtube/internal/api/video/models"
)

// Playlist là danh sách video do người dùng tự quản lý.
// Videos lưu theo kiểu set: thêm bằng $addToSet, gỡ bằng $pull.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single:1"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistSummary là playlist kèm số liệu dẫn xuất cho màn danh sách
type PlaylistSummary struct {
	Playlist
	VideoCount int64 `json:"videoCount"`
	TotalViews int64 `json:"totalViews"`
}

// PlaylistDetail là playlist kèm các video đã join chủ kênh
type PlaylistDetail struct {
	Playlist
	Videos []videomodels.VideoWithOwner `json:"videos"`
}
