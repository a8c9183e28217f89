// Package subscriptionhdl xử lý các request liên quan đến subscription.
package subscriptionhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	subscriptionsvc "vidtube/internal/api/subscription/service"
)

// SubscriptionHandler xử lý các request liên quan đến Subscription
type SubscriptionHandler struct {
	subscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *subscriptionsvc.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// HandleToggle toggle theo dõi kênh
func (h *SubscriptionHandler) HandleToggle(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	channelID, err := basehdl.ParseObjectID(c, "channelId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	result, err := h.subscriptionService.Toggle(c.Context(), channelID, userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, result)
	return nil
}

// HandleChannelSubscribers trả về danh sách người theo dõi của kênh
func (h *SubscriptionHandler) HandleChannelSubscribers(c fiber.Ctx) error {
	channelID, err := basehdl.ParseObjectID(c, "channelId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	subscribers, err := h.subscriptionService.ChannelSubscribers(c.Context(), channelID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, subscribers)
	return nil
}

// HandleSubscribedChannels trả về danh sách kênh người dùng đang theo dõi
func (h *SubscriptionHandler) HandleSubscribedChannels(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	subscriberID, err := basehdl.ParseObjectID(c, "subscriberId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	channels, err := h.subscriptionService.SubscribedChannels(c.Context(), subscriberID, userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, channels)
	return nil
}
