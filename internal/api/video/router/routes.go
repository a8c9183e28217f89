// Package router đăng ký các route thuộc domain Video.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "vidtube/internal/api/router"
	videohdl "vidtube/internal/api/video/handler"
)

// NewRegister trả về hàm đăng ký route video lên v1.
// Mọi route video đều yêu cầu đăng nhập.
func NewRegister(h *videohdl.VideoHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", mws, h.HandlePublish)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/", mws, h.HandleList)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/:id", mws, h.HandleGetByID)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id", mws, h.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:id", mws, h.HandleDelete)
		apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id/toggle-publish", mws, h.HandleTogglePublish)
		return nil
	}
}
