package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động audit (đăng nhập, xóa video, toggle like...).
// UserID lấy từ Locals("user_id") do auth middleware gắn vào.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	userID := ""
	if v := c.Locals("user_id"); v != nil {
		if uid, ok := v.(string); ok {
			userID = uid
		}
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"user_id":    userID,
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogAuth ghi các thao tác authentication (login, logout, refresh)
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}
