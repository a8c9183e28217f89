// Package router đăng ký các route thuộc domain Like.
package router

import (
	"github.com/gofiber/fiber/v3"

	likehdl "vidtube/internal/api/like/handler"
	apirouter "vidtube/internal/api/router"
)

// NewRegister trả về hàm đăng ký route like lên v1
func NewRegister(h *likehdl.LikeHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/video/:videoId", mws, h.HandleToggleVideoLike)
		apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/comment/:commentId", mws, h.HandleToggleCommentLike)
		apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/tweet/:tweetId", mws, h.HandleToggleTweetLike)
		apirouter.RegisterRouteWithMiddleware(v1, "/likes", "GET", "/videos", mws, h.HandleLikedVideos)
		return nil
	}
}
