// Package tweethdl xử lý các request liên quan đến tweet.
package tweethdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	tweetdto "vidtube/internal/api/tweet/dto"
	models "vidtube/internal/api/tweet/models"
	tweetsvc "vidtube/internal/api/tweet/service"
)

// TweetHandler xử lý các request liên quan đến Tweet
type TweetHandler struct {
	*basehdl.BaseHandler[models.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput]
	tweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler(tweetService *tweetsvc.TweetService) *TweetHandler {
	return &TweetHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput](tweetService.BaseServiceMongoImpl),
		tweetService: tweetService,
	}
}

// HandleCreate tạo tweet mới
func (h *TweetHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input tweetdto.TweetCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweet, err := h.tweetService.Create(c.Context(), userID, input.Content)
	h.HandleResponse(c, tweet, err)
	return nil
}

// HandleListByUser trả về tweet của một người dùng, mới nhất trước
func (h *TweetHandler) HandleListByUser(c fiber.Ctx) error {
	userID, err := basehdl.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweets, err := h.tweetService.ListByUser(c.Context(), userID)
	h.HandleResponse(c, tweets, err)
	return nil
}

// HandleUpdate cập nhật nội dung tweet của người gọi
func (h *TweetHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	tweetID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input tweetdto.TweetUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweet, err := h.tweetService.Update(c.Context(), tweetID, userID, input.Content)
	h.HandleResponse(c, tweet, err)
	return nil
}

// HandleDelete xóa tweet của người gọi cùng các like của nó
func (h *TweetHandler) HandleDelete(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	tweetID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	_, err = h.tweetService.Delete(c.Context(), tweetID, userID)
	h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
	return nil
}
