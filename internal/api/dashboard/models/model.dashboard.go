// Package models - các kiểu dữ liệu trả về của domain dashboard.
package models

import (
	videomodels "vidtube/internal/api/video/models"
)

// ChannelStats là số liệu tổng hợp kênh của người gọi
type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
}

// VideoWithLikes là video của kênh kèm số like, dùng cho màn quản trị
type VideoWithLikes struct {
	videomodels.Video
	LikeCount int64 `json:"likeCount"`
}
