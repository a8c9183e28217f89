package main

import (
	"go.mongodb.org/mongo-driver/mongo"

	basehdl "vidtube/internal/api/base/handler"
	commenthdl "vidtube/internal/api/comment/handler"
	commentrouter "vidtube/internal/api/comment/router"
	commentsvc "vidtube/internal/api/comment/service"
	dashboardhdl "vidtube/internal/api/dashboard/handler"
	dashboardrouter "vidtube/internal/api/dashboard/router"
	dashboardsvc "vidtube/internal/api/dashboard/service"
	likehdl "vidtube/internal/api/like/handler"
	likerouter "vidtube/internal/api/like/router"
	likesvc "vidtube/internal/api/like/service"
	"vidtube/internal/api/middleware"
	playlisthdl "vidtube/internal/api/playlist/handler"
	playlistrouter "vidtube/internal/api/playlist/router"
	playlistsvc "vidtube/internal/api/playlist/service"
	apirouter "vidtube/internal/api/router"
	subscriptionhdl "vidtube/internal/api/subscription/handler"
	subscriptionrouter "vidtube/internal/api/subscription/router"
	subscriptionsvc "vidtube/internal/api/subscription/service"
	tweethdl "vidtube/internal/api/tweet/handler"
	tweetrouter "vidtube/internal/api/tweet/router"
	tweetsvc "vidtube/internal/api/tweet/service"
	userhdl "vidtube/internal/api/user/handler"
	userrouter "vidtube/internal/api/user/router"
	usersvc "vidtube/internal/api/user/service"
	videohdl "vidtube/internal/api/video/handler"
	videorouter "vidtube/internal/api/video/router"
	videosvc "vidtube/internal/api/video/service"
	"vidtube/internal/global"
	"vidtube/internal/media"

	"github.com/gofiber/fiber/v3"
)

// InitRegistry đăng ký các collection vào registry, dựng service và handler
// với collection handle tường minh, rồi trả về danh sách hàm đăng ký route
// của từng domain.
func InitRegistry() ([]apirouter.RegisterFunc, error) {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	names := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Videos,
		global.MongoDB_ColNames.Comments,
		global.MongoDB_ColNames.Likes,
		global.MongoDB_ColNames.Tweets,
		global.MongoDB_ColNames.Subscriptions,
		global.MongoDB_ColNames.Playlists,
	}
	for _, name := range names {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			return nil, err
		}
	}

	col := func(name string) (*mongo.Collection, error) {
		return global.RegistryCollections.MustGet(name)
	}

	users, err := col(global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, err
	}
	videos, err := col(global.MongoDB_ColNames.Videos)
	if err != nil {
		return nil, err
	}
	comments, err := col(global.MongoDB_ColNames.Comments)
	if err != nil {
		return nil, err
	}
	likes, err := col(global.MongoDB_ColNames.Likes)
	if err != nil {
		return nil, err
	}
	tweets, err := col(global.MongoDB_ColNames.Tweets)
	if err != nil {
		return nil, err
	}
	subscriptions, err := col(global.MongoDB_ColNames.Subscriptions)
	if err != nil {
		return nil, err
	}
	playlists, err := col(global.MongoDB_ColNames.Playlists)
	if err != nil {
		return nil, err
	}

	storage, err := media.NewStorage(global.ServerConfig)
	if err != nil {
		return nil, err
	}

	// Services: collection handle truyền tường minh qua constructor
	userService := usersvc.NewUserService(users, videos)
	videoService := videosvc.NewVideoService(videos, users, comments, likes)
	commentService := commentsvc.NewCommentService(comments, videos, users, likes)
	likeService := likesvc.NewLikeService(likes, comments, tweets, videoService)
	subscriptionService := subscriptionsvc.NewSubscriptionService(subscriptions, users)
	tweetService := tweetsvc.NewTweetService(tweets, users, likes)
	playlistService := playlistsvc.NewPlaylistService(playlists, videoService)
	dashboardService := dashboardsvc.NewDashboardService(videos, likes, subscriptions)

	// Handlers
	userHandler := userhdl.NewUserHandler(userService, storage)
	videoHandler := videohdl.NewVideoHandler(videoService, storage)
	commentHandler := commenthdl.NewCommentHandler(commentService)
	likeHandler := likehdl.NewLikeHandler(likeService)
	subscriptionHandler := subscriptionhdl.NewSubscriptionHandler(subscriptionService)
	tweetHandler := tweethdl.NewTweetHandler(tweetService)
	playlistHandler := playlisthdl.NewPlaylistHandler(playlistService)
	dashboardHandler := dashboardhdl.NewDashboardHandler(dashboardService)
	systemHandler := basehdl.NewSystemHandler()

	auth := middleware.AuthMiddleware(global.ServerConfig, users)

	regs := []apirouter.RegisterFunc{
		newSystemRegister(systemHandler),
		userrouter.NewRegister(userHandler, auth),
		videorouter.NewRegister(videoHandler, auth),
		commentrouter.NewRegister(commentHandler, auth),
		likerouter.NewRegister(likeHandler, auth),
		subscriptionrouter.NewRegister(subscriptionHandler, auth),
		tweetrouter.NewRegister(tweetHandler, auth),
		playlistrouter.NewRegister(playlistHandler, auth),
		dashboardrouter.NewRegister(dashboardHandler, auth),
	}
	return regs, nil
}

// newSystemRegister đăng ký route health check trên v1, không cần auth
func newSystemRegister(h *basehdl.SystemHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterRouteWithMiddleware(v1, "/system", "GET", "/health", nil, h.HandleHealth)
		return nil
	}
}
