// Package router đăng ký các route thuộc domain Tweet.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "vidtube/internal/api/router"
	tweethdl "vidtube/internal/api/tweet/handler"
)

// NewRegister trả về hàm đăng ký route tweet lên v1
func NewRegister(h *tweethdl.TweetHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "POST", "/", mws, h.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "GET", "/user/:userId", mws, h.HandleListByUser)
		apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "PATCH", "/:id", mws, h.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "DELETE", "/:id", mws, h.HandleDelete)
		return nil
	}
}
