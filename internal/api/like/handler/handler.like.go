// Package likehdl xử lý các request liên quan đến like.
package likehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	likesvc "vidtube/internal/api/like/service"
)

// LikeHandler xử lý các request liên quan đến Like
type LikeHandler struct {
	likeService *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler(likeService *likesvc.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// HandleToggleVideoLike toggle like trên video
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "videoId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	result, err := h.likeService.ToggleVideoLike(c.Context(), videoID, userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, result)
	return nil
}

// HandleToggleCommentLike toggle like trên comment
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	commentID, err := basehdl.ParseObjectID(c, "commentId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	result, err := h.likeService.ToggleCommentLike(c.Context(), commentID, userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, result)
	return nil
}

// HandleToggleTweetLike toggle like trên tweet
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	tweetID, err := basehdl.ParseObjectID(c, "tweetId")
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	result, err := h.likeService.ToggleTweetLike(c.Context(), tweetID, userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, result)
	return nil
}

// HandleLikedVideos trả về danh sách video người gọi đã like
func (h *LikeHandler) HandleLikedVideos(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	videos, err := h.likeService.LikedVideos(c.Context(), userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, videos)
	return nil
}
