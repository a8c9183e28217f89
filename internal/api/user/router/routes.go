// Package router đăng ký các route thuộc domain User.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "vidtube/internal/api/router"
	userhdl "vidtube/internal/api/user/handler"
)

// NewRegister trả về hàm đăng ký route user lên v1.
// Register/login/refresh-token là route công khai, còn lại yêu cầu đăng nhập.
func NewRegister(h *userhdl.UserHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		public := []fiber.Handler{}
		authed := []fiber.Handler{auth}

		// Route công khai phải đăng ký TRƯỚC nhóm authed: .Use() của Fiber
		// áp theo prefix path, route khớp trước sẽ kết thúc chain trước khi
		// auth middleware kịp chạy.
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/register", public, h.HandleRegister)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/login", public, h.HandleLogin)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/refresh-token", public, h.HandleRefreshToken)

		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", authed, h.HandleLogout)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/change-password", authed, h.HandleChangePassword)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/me", authed, h.HandleGetCurrentUser)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me", authed, h.HandleUpdateAccount)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me/avatar", authed, h.HandleUpdateAvatar)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me/cover", authed, h.HandleUpdateCoverImage)
		apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/me/watch-history", authed, h.HandleWatchHistory)
		return nil
	}
}
