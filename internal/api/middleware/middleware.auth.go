package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/config"
	"vidtube/internal/common"
	"vidtube/internal/logger"
	"vidtube/internal/utility"
)

// AuthUser là thông tin user tối thiểu gắn vào request context
type AuthUser struct {
	ID       interface{} `bson:"_id"`
	UserName string      `bson:"userName"`
	Email    string      `bson:"email"`
	FullName string      `bson:"fullName"`
}

// AuthMiddleware xác thực access token cho Fiber.
// Token đọc từ header Authorization (Bearer) hoặc cookie accessToken.
// User phải còn tồn tại trong database, thông tin được gắn vào
// Locals("user_id") và Locals("user").
func AuthMiddleware(cfg *config.Configuration, users *mongo.Collection) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Missing access token")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		userIDHex, err := utility.ParseToken(token, cfg.JwtSecret)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		userID := utility.String2ObjectID(userIDHex)
		if userID.IsZero() {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Token hợp lệ nhưng user đã bị xóa vẫn phải từ chối
		var user AuthUser
		err = users.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				HandleErrorResponse(c, common.ErrTokenInvalid)
				return nil
			}
			HandleErrorResponse(c, common.ConvertMongoError(err))
			return nil
		}

		c.Locals("user_id", userIDHex)
		c.Locals("user", user)
		return c.Next()
	}
}

// extractToken lấy token từ Authorization header hoặc cookie accessToken
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies("accessToken")
}
