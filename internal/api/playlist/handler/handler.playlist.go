// Package playlisthdl xử lý các request liên quan đến playlist.
package playlisthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	playlistdto "vidtube/internal/api/playlist/dto"
	models "vidtube/internal/api/playlist/models"
	playlistsvc "vidtube/internal/api/playlist/service"
)

// PlaylistHandler xử lý các request liên quan đến Playlist
type PlaylistHandler struct {
	*basehdl.BaseHandler[models.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	playlistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler(playlistService *playlistsvc.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](playlistService.BaseServiceMongoImpl),
		playlistService: playlistService,
	}
}

// HandleCreate tạo playlist mới
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input playlistdto.PlaylistCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.Create(c.Context(), userID, input.Name, input.Description)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleListByUser trả về playlist của một người dùng kèm số liệu dẫn xuất
func (h *PlaylistHandler) HandleListByUser(c fiber.Ctx) error {
	userID, err := basehdl.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlists, err := h.playlistService.ListByUser(c.Context(), userID)
	h.HandleResponse(c, playlists, err)
	return nil
}

// HandleGetByID trả về playlist kèm các video đã join chủ kênh
func (h *PlaylistHandler) HandleGetByID(c fiber.Ctx) error {
	playlistID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	detail, err := h.playlistService.GetByID(c.Context(), playlistID)
	h.HandleResponse(c, detail, err)
	return nil
}

// HandleAddVideo thêm video vào playlist của người gọi
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	playlistID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, userID)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleRemoveVideo gỡ video khỏi playlist của người gọi
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	playlistID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := basehdl.ParseObjectID(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, userID)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleUpdate cập nhật name/description playlist của người gọi
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	playlistID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input playlistdto.PlaylistUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.Update(c.Context(), playlistID, userID, input.Name, input.Description)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleDelete xóa playlist của người gọi
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	playlistID, err := basehdl.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	_, err = h.playlistService.Delete(c.Context(), playlistID, userID)
	h.HandleResponse(c, fiber.Map{"deleted": err == nil}, err)
	return nil
}
