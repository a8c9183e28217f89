// Package global giữ các biến dùng chung của tiến trình: cấu hình server,
// session MongoDB, validator và tên các collection. Các service KHÔNG đọc
// trực tiếp registry ở đây — collection handle được truyền tường minh qua
// constructor khi wiring ở cmd/server.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/config"
	"vidtube/internal/registry"
)

// Validate validator dùng chung, khởi tạo qua InitValidator.
var Validate *validator.Validate

// MongoDB_Session client MongoDB dùng chung, khởi tạo một lần ở startup.
var MongoDB_Session *mongo.Client

// ServerConfig cấu hình server đọc từ env.
var ServerConfig *config.Configuration

// ColNames tên các collection trong database.
type ColNames struct {
	Users         string
	Videos        string
	Comments      string
	Likes         string
	Tweets        string
	Subscriptions string
	Playlists     string
}

// MongoDB_ColNames tên collection, gán giá trị ở cmd/server/init.go.
var MongoDB_ColNames ColNames

// RegistryCollections registry các *mongo.Collection theo tên.
// Chỉ dùng ở giai đoạn wiring (cmd/server) để phát handle cho các service.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
