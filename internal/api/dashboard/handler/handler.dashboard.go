// Package dashboardhdl xử lý các request quản trị kênh.
package dashboardhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	dashboardsvc "vidtube/internal/api/dashboard/service"
)

// DashboardHandler xử lý các request liên quan đến Dashboard
type DashboardHandler struct {
	dashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo mới DashboardHandler
func NewDashboardHandler(dashboardService *dashboardsvc.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandleStats trả về số liệu tổng hợp kênh của người gọi
func (h *DashboardHandler) HandleStats(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	stats, err := h.dashboardService.Stats(c.Context(), userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, stats)
	return nil
}

// HandleVideos trả về danh sách video của kênh kèm số like
func (h *DashboardHandler) HandleVideos(c fiber.Ctx) error {
	userID, err := basehdl.GetUserID(c)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	videos, err := h.dashboardService.Videos(c.Context(), userID)
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	basehdl.HandleSuccess(c, videos)
	return nil
}
