// Package router đăng ký các route thuộc domain Comment.
package router

import (
	"github.com/gofiber/fiber/v3"

	commenthdl "vidtube/internal/api/comment/handler"
	apirouter "vidtube/internal/api/router"
)

// NewRegister trả về hàm đăng ký route comment lên v1.
// Danh sách comment theo video nằm dưới /videos/:videoId/comments.
func NewRegister(h *commenthdl.CommentHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/:videoId/comments", mws, h.HandleListByVideo)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/:videoId/comments", mws, h.HandleAdd)
		apirouter.RegisterRouteWithMiddleware(v1, "/comments", "PATCH", "/:id", mws, h.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/:id", mws, h.HandleDelete)
		return nil
	}
}
