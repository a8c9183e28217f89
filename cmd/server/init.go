package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"vidtube/config"
	commentmodels "vidtube/internal/api/comment/models"
	likemodels "vidtube/internal/api/like/models"
	playlistmodels "vidtube/internal/api/playlist/models"
	subscriptionmodels "vidtube/internal/api/subscription/models"
	tweetmodels "vidtube/internal/api/tweet/models"
	usermodels "vidtube/internal/api/user/models"
	videomodels "vidtube/internal/api/video/models"
	"vidtube/internal/database"
	"vidtube/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames gán tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ env
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối database, đảm bảo collection và index tồn tại
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo index cho các collection theo struct tag của model.
	// Index tạo thiếu là lỗi chết người: unique index trên likes và
	// subscriptions là thứ giữ bất biến mỗi cặp chỉ có một join record,
	// thiếu nó toggle không còn an toàn khi đua nhau.
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	indexedModels := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Users, usermodels.User{}},
		{global.MongoDB_ColNames.Videos, videomodels.Video{}},
		{global.MongoDB_ColNames.Comments, commentmodels.Comment{}},
		{global.MongoDB_ColNames.Likes, likemodels.Like{}},
		{global.MongoDB_ColNames.Tweets, tweetmodels.Tweet{}},
		{global.MongoDB_ColNames.Subscriptions, subscriptionmodels.Subscription{}},
		{global.MongoDB_ColNames.Playlists, playlistmodels.Playlist{}},
	}
	for _, m := range indexedModels {
		if err := database.CreateIndexes(context.TODO(), db.Collection(m.collection), m.model); err != nil {
			logrus.Fatalf("Failed to create indexes for collection %s: %v", m.collection, err)
		}
	}
	logrus.Info("Ensured collection indexes")
}
