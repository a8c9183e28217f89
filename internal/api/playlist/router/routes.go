// Package router đăng ký các route thuộc domain Playlist.
package router

import (
	"github.com/gofiber/fiber/v3"

	playlisthdl "vidtube/internal/api/playlist/handler"
	apirouter "vidtube/internal/api/router"
)

// NewRegister trả về hàm đăng ký route playlist lên v1
func NewRegister(h *playlisthdl.PlaylistHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "POST", "/", mws, h.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/user/:userId", mws, h.HandleListByUser)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "GET", "/:id", mws, h.HandleGetByID)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:id", mws, h.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:id", mws, h.HandleDelete)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:id/videos/:videoId", mws, h.HandleAddVideo)
		apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:id/videos/:videoId", mws, h.HandleRemoveVideo)
		return nil
	}
}
