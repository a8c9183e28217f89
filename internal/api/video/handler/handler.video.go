// Package videohdl xử lý các request liên quan đến video.
package videohdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vidtube/internal/api/base/handler"
	videodto "vidtube/internal/api/video/dto"
	models "vidtube/internal/api/video/models"
	videosvc "vidtube/internal/api/video/service"
	"vidtube/internal/common"
	"vidtube/internal/logger"
	"vidtube/internal/media"
)

// VideoHandler xử lý các request liên quan đến Video
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
	storage      *media.Storage
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler(videoService *videosvc.VideoService, storage *media.Storage) *VideoHandler {
	return &VideoHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput](videoService.BaseServiceMongoImpl),
		videoService: videoService,
		storage:      storage,
	}
}

// HandlePublish đăng video mới: multipart gồm videoFile, thumbnail,
// title, description, durationSeconds
func (h *VideoHandler) HandlePublish(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := videodto.VideoPublishInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	if raw := c.FormValue("durationSeconds"); raw != "" {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil || duration < 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "durationSeconds không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		input.DurationSeconds = duration
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoPath, err := basehdl.SaveTempUpload(c, "videoFile")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoAsset, err := h.storage.Store(c.Context(), videoPath, media.KindVideo)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	thumbPath, err := basehdl.SaveTempUpload(c, "thumbnail")
	if err != nil {
		// Video đã lên kho nhưng request fail, dọn lại object
		h.removeAsset(c, *videoAsset, media.KindVideo)
		h.HandleResponse(c, nil, err)
		return nil
	}
	thumbAsset, err := h.storage.Store(c.Context(), thumbPath, media.KindImage)
	if err != nil {
		h.removeAsset(c, *videoAsset, media.KindVideo)
		h.HandleResponse(c, nil, err)
		return nil
	}

	video, err := h.videoService.Publish(c.Context(), userID, &input, *videoAsset, *thumbAsset)
	if err != nil {
		h.removeAsset(c, *videoAsset, media.KindVideo)
		h.removeAsset(c, *thumbAsset, media.KindImage)
	}
	h.HandleResponse(c, video, err)
	return nil
}

// HandleGetByID trả về video kèm chủ kênh, tăng views và ghi lịch sử xem
func (h *VideoHandler) HandleGetByID(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.videoService.GetByID(c.Context(), videoID, userID)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleList liệt kê video đã publish có phân trang.
// Query: page, limit, owner (lọc theo kênh), query (tìm theo title),
// filter (JSON, điều kiện bổ sung như {"views":{"$gte":100}}).
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	page, limit := h.ParsePagination(c, 10, 50)

	var ownerID primitive.ObjectID
	if ownerHex := c.Query("owner"); ownerHex != "" {
		if !primitive.IsValidObjectID(ownerHex) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "owner không đúng định dạng ObjectID", common.StatusBadRequest, nil))
			return nil
		}
		ownerID, _ = primitive.ObjectIDFromHex(ownerHex)
	}

	extra, err := h.ProcessFilter(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.videoService.List(c.Context(), page, limit, ownerID, c.Query("query"), extra)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUpdate cập nhật title/description/thumbnail của video thuộc
// người gọi. Thumbnail mới thay thế và xóa object cũ.
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := videodto.VideoUpdateInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var newThumbnail *media.Asset
	thumbPath, err := basehdl.SaveOptionalTempUpload(c, "thumbnail")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if thumbPath != "" {
		newThumbnail, err = h.storage.Store(c.Context(), thumbPath, media.KindImage)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	video, oldThumbnail, err := h.videoService.Update(c.Context(), videoID, userID, &input, newThumbnail)
	if err != nil {
		if newThumbnail != nil {
			h.removeAsset(c, *newThumbnail, media.KindImage)
		}
		h.HandleResponse(c, nil, err)
		return nil
	}
	if oldThumbnail.Key != "" {
		h.removeAsset(c, oldThumbnail, media.KindImage)
	}
	h.HandleResponse(c, video, nil)
	return nil
}

// HandleDelete xóa video thuộc người gọi, cascade like/comment và dọn
// media objects
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	deleted, err := h.videoService.Delete(c.Context(), videoID, userID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.removeAsset(c, deleted.VideoFile, media.KindVideo)
	h.removeAsset(c, deleted.Thumbnail, media.KindImage)
	h.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	return nil
}

// HandleTogglePublish đảo trạng thái publish của video thuộc người gọi
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	video, err := h.videoService.TogglePublish(c.Context(), videoID, userID)
	h.HandleResponse(c, video, err)
	return nil
}

// removeAsset xóa object khỏi kho media, lỗi chỉ ghi log vì record
// chính đã được xử lý xong
func (h *VideoHandler) removeAsset(c fiber.Ctx, asset media.Asset, kind media.Kind) {
	if asset.Key == "" {
		return
	}
	if err := h.storage.Delete(c.Context(), asset.Key, kind); err != nil {
		logger.WithRequest(c).Warnf("Không thể xóa media object %s: %v", asset.Key, err)
	}
}
