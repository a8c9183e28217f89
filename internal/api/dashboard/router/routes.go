// Package router đăng ký các route thuộc domain Dashboard.
package router

import (
	"github.com/gofiber/fiber/v3"

	dashboardhdl "vidtube/internal/api/dashboard/handler"
	apirouter "vidtube/internal/api/router"
)

// NewRegister trả về hàm đăng ký route dashboard lên v1
func NewRegister(h *dashboardhdl.DashboardHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", mws, h.HandleStats)
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", mws, h.HandleVideos)
		return nil
	}
}
