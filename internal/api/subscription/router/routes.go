// Package router đăng ký các route thuộc domain Subscription.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "vidtube/internal/api/router"
	subscriptionhdl "vidtube/internal/api/subscription/handler"
)

// NewRegister trả về hàm đăng ký route subscription lên v1
func NewRegister(h *subscriptionhdl.SubscriptionHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/toggle/:channelId", mws, h.HandleToggle)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/channel/:channelId/subscribers", mws, h.HandleChannelSubscribers)
		apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/user/:subscriberId/channels", mws, h.HandleSubscribedChannels)
		return nil
	}
}
