// Package models - model người dùng (User) thuộc domain user.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/media"
)

// User định nghĩa mô hình người dùng / channel.
// Password và RefreshToken không bao giờ được serialize ra JSON.
// WatchHistory là danh sách video đã xem, không trùng lặp, theo thứ tự xem.
type User struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserName     string               `json:"userName" bson:"userName" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName"`
	Avatar       media.Asset          `json:"avatar" bson:"avatar"`
	CoverImage   *media.Asset         `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Password     string               `json:"-" bson:"password"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory []primitive.ObjectID `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}

// PublicProfile là thông tin công khai của một user, dùng khi join
// owner/subscriber vào các response khác.
type PublicProfile struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	UserName string             `json:"userName" bson:"userName"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   media.Asset        `json:"avatar" bson:"avatar"`
}

// PublicProfile trả về projection công khai của user
func (u User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		UserName: u.UserName,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}
