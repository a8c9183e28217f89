// Package commenthdl xử lý các request liên quan đến bình luận.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	commentdto "vidtube/internal/api/comment/dto"
	models "vidtube/internal/api/comment/models"
	commentsvc "vidtube/internal/api/comment/service"
)

// CommentHandler xử lý các request liên quan đến Comment
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler(commentService *commentsvc.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](commentService.BaseServiceMongoImpl),
		commentService: commentService,
	}
}

// HandleListByVideo trả về trang bình luận của video đã publish,
// mới nhất trước. Query: page (mặc định 1), limit (mặc định 10, tối đa 50).
func (h *CommentHandler) HandleListByVideo(c fiber.Ctx) error {
	videoID, err := basehdl.ParseObjectID(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c, 10, 50)
	result, err := h.commentService.ListByVideo(c.Context(), videoID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAdd thêm bình luận vào video
func (h *CommentHandler) HandleAdd(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input commentdto.CommentCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	comment, err := h.commentService.Add(c.Context(), videoID, userID, input.Content)
	h.HandleResponse(c, comment, err)
	return nil
}

// HandleUpdate sửa bình luận của người gọi
func (h *CommentHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	commentID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input commentdto.CommentUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	comment, err := h.commentService.Update(c.Context(), commentID, userID, input.Content)
	h.HandleResponse(c, comment, err)
	return nil
}

// HandleDelete xóa bình luận của người gọi cùng các like của nó
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	commentID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.commentService.Delete(c.Context(), commentID, userID)
	h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
	return nil
}
